package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Required answer counts per stage submission
const (
	UserDetailsAnswerCount = 10
	AssessmentAnswerCount  = 20
)

// AnswerPair is a single submitted answer keyed by question number
type AnswerPair struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// Stage identifies one phase of the assessment sequence
type Stage string

const (
	StageUserDetails  Stage = "user-details"
	StagePretest      Stage = "pretest"
	StageIntervention Stage = "intervention"
	StagePosttest     Stage = "posttest"
	StageComplete     Stage = "complete"
)

// Progress tracks which stages a user has completed. Flags are monotonic:
// no handler ever resets one to false.
type Progress struct {
	UserDetailsCompleted  bool `gorm:"default:false" json:"userDetailsCompleted"`
	PretestCompleted      bool `gorm:"default:false" json:"pretestCompleted"`
	InterventionCompleted bool `gorm:"default:false" json:"interventionCompleted"`
	PosttestCompleted     bool `gorm:"default:false" json:"posttestCompleted"`
}

// NextStage returns the first incomplete stage in the fixed traversal
// order, or StageComplete once all four flags are set. This is the
// read-side navigation query the client uses to route the user.
func (p Progress) NextStage() Stage {
	switch {
	case !p.UserDetailsCompleted:
		return StageUserDetails
	case !p.PretestCompleted:
		return StagePretest
	case !p.InterventionCompleted:
		return StageIntervention
	case !p.PosttestCompleted:
		return StagePosttest
	default:
		return StageComplete
	}
}

// CanSubmit reports whether every stage before s is already complete.
// Resubmitting a completed stage stays allowed: its own flag is not part
// of the prerequisite chain, so answers can be overwritten in place.
func (p Progress) CanSubmit(s Stage) bool {
	switch s {
	case StageUserDetails:
		return true
	case StagePretest:
		return p.UserDetailsCompleted
	case StageIntervention:
		return p.UserDetailsCompleted && p.PretestCompleted
	case StagePosttest:
		return p.UserDetailsCompleted && p.PretestCompleted && p.InterventionCompleted
	default:
		return false
	}
}

type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'USER'" json:"role"`

	Progress Progress `gorm:"embedded" json:"progress"`

	// Parsed demographic profile. Reserved in the wire contract; the
	// current stages only ever store the raw answer pairs below.
	UserDetails datatypes.JSON `json:"userDetails"`

	UserDetailsAnswers datatypes.JSON `json:"userDetailsAnswers"`
	PretestAnswers     datatypes.JSON `json:"pretestAnswers"`
	PosttestAnswers    datatypes.JSON `json:"posttestAnswers"`

	PretestScore  int `gorm:"default:0" json:"pretestScore"`
	PosttestScore int `gorm:"default:0" json:"posttestScore"`
}
