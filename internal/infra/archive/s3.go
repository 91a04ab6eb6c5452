package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ScheduleArchiver stores every saved weekly template as a JSON revision
// under schedules/<barber>/<timestamp>.json.
type ScheduleArchiver struct {
	client putObjectAPI
	bucket string
}

func NewS3Client(cfg S3Config) *s3.Client {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewScheduleArchiver(client putObjectAPI, bucket string) *ScheduleArchiver {
	return &ScheduleArchiver{client: client, bucket: bucket}
}

type revision struct {
	BarberID uint          `json:"barber_id"`
	SavedAt  time.Time     `json:"saved_at"`
	Days     []revisionDay `json:"days"`
}

type revisionDay struct {
	Weekday string          `json:"weekday"`
	Enabled bool            `json:"enabled"`
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Breaks  []revisionBreak `json:"breaks"`
}

type revisionBreak struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func ObjectKey(barberID uint, at time.Time) string {
	return fmt.Sprintf("schedules/%d/%s.json", barberID, at.UTC().Format("20060102T150405Z"))
}

func (a *ScheduleArchiver) Archive(ctx context.Context, barberID uint, cfg schedule.Config, at time.Time) error {
	rev := revision{BarberID: barberID, SavedAt: at.UTC(), Days: make([]revisionDay, 0, len(cfg.Days))}
	for _, d := range cfg.Days {
		day := revisionDay{
			Weekday: d.Weekday.String(),
			Enabled: d.Enabled,
			Start:   d.Start.String(),
			End:     d.End.String(),
			Breaks:  []revisionBreak{},
		}
		for _, b := range d.Breaks {
			day.Breaks = append(day.Breaks, revisionBreak{Start: b.Start.String(), End: b.End.String()})
		}
		rev.Days = append(rev.Days, day)
	}

	body, err := json.Marshal(rev)
	if err != nil {
		return fmt.Errorf("encode schedule revision: %w", err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ObjectKey(barberID, at)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload schedule revision: %w", err)
	}
	return nil
}
