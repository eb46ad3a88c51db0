package calculator

import "time"

type RecordStatsData struct {
	Type      string `json:"-" bson:"type"`
	Stats     interface{}
	Timestamp time.Time
}
