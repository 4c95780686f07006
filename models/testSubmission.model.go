package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestSubmission is the append-only log used by the legacy submission
// path. It is independent of the progress ledger: rows accumulate per
// user and duplicates are not prevented at the data layer.
type TestSubmission struct {
	gorm.Model
	UserID  uint           `gorm:"not null;index" json:"userId"`
	Answers datatypes.JSON `gorm:"not null" json:"answers"`
}
