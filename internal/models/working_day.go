package models

import "time"

type WorkingDay struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:ux_working_days_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:ux_working_days_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Enabled   bool   `json:"enabled"`

	Breaks []WorkingBreak `gorm:"constraint:OnDelete:CASCADE;" json:"breaks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkingBreak struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	WorkingDayID uint   `gorm:"index" json:"working_day_id"`
	StartTime    string `gorm:"size:5" json:"start_time"`
	EndTime      string `gorm:"size:5" json:"end_time"`
}
