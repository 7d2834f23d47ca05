package db_models

import (
	"github.com/google/uuid"
)

// Location is one Kakao place, deduplicated by the Kakao place id so the
// same cafe searched twice maps to a single row.
type Location struct {
	BaseModel
	KakaoPlaceID      string `gorm:"uniqueIndex"`
	Name              string
	Address           string
	RoadAddress       string
	CategoryGroupCode string
	Phone             string
	Latitude          float64
	Longitude         float64
}

// ScheduleLocation pins a location onto a schedule at a point in time.
// ScheduleTime is kept in the canonical "YYYY-MM-DD HH:MM:SS" form the
// reconciler guarantees, so day grouping can parse it blindly.
type ScheduleLocation struct {
	BaseModel
	ScheduleID   uuid.UUID `gorm:"index"`
	LocationID   uuid.UUID
	ScheduleTime string `gorm:"type:char(19)"`
	Memo         string

	Location Location `gorm:"foreignKey:LocationID"`
}
