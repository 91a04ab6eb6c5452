package validators

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the hhmm and isodate tags to gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", hhmm); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", isoDate)
}

// IsHHMM accepts zero padded 24h times such as 09:00, and 24:00 as the
// end of a day.
func IsHHMM(s string) bool {
	if s == "24:00" {
		return true
	}
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// IsISODate accepts calendar dates such as 2024-01-10.
func IsISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func hhmm(fl validator.FieldLevel) bool {
	return IsHHMM(fl.Field().String())
}

func isoDate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}
