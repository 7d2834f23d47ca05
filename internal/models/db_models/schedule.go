package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Schedule is the trip header row. Status is a single char: "A" upcoming,
// "B" ongoing, "C" finished.
type Schedule struct {
	BaseModel
	UserID         uuid.UUID `gorm:"index"`
	Title          string
	Destination    string
	StartDate      time.Time
	EndDate        time.Time
	WithWho        string
	Transport      string
	Styles         pq.StringArray `gorm:"type:text[]"`
	TotalPeople    int
	TotalBudget    int64
	AlarmRatio     int
	TransportRatio int
	LodgingRatio   int
	FoodRatio      int
	Status         string `gorm:"type:char(1)"`

	Locations []ScheduleLocation
	Expenses  []ScheduleExpense
	Members   []ScheduleMember
}

type ScheduleMember struct {
	BaseModel
	ScheduleID uuid.UUID `gorm:"index"`
	AccountID  uuid.UUID
	Role       string

	Account Account `gorm:"foreignKey:AccountID"`
}
