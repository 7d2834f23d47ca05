package db_models

import (
	"github.com/google/uuid"
)

type ScheduleExpense struct {
	BaseModel
	ScheduleID  uuid.UUID `gorm:"index"`
	Amount      int64
	Category    string
	ExpenseTime string `gorm:"type:char(19)"`
	Memo        string
}
