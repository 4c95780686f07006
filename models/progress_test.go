package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStageOrdering(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     Stage
	}{
		{"fresh account", Progress{}, StageUserDetails},
		{"details done", Progress{UserDetailsCompleted: true}, StagePretest},
		{"pretest done", Progress{UserDetailsCompleted: true, PretestCompleted: true}, StageIntervention},
		{"intervention done", Progress{UserDetailsCompleted: true, PretestCompleted: true, InterventionCompleted: true}, StagePosttest},
		{"all done", Progress{UserDetailsCompleted: true, PretestCompleted: true, InterventionCompleted: true, PosttestCompleted: true}, StageComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.progress.NextStage())
		})
	}
}

func TestNextStagePicksFirstIncompleteStage(t *testing.T) {
	// Flags out of causal order: the earliest incomplete stage wins
	p := Progress{PosttestCompleted: true, InterventionCompleted: true}
	assert.Equal(t, StageUserDetails, p.NextStage())
}

func TestCanSubmitRequiresPrerequisiteChain(t *testing.T) {
	fresh := Progress{}
	assert.True(t, fresh.CanSubmit(StageUserDetails))
	assert.False(t, fresh.CanSubmit(StagePretest))
	assert.False(t, fresh.CanSubmit(StageIntervention))
	assert.False(t, fresh.CanSubmit(StagePosttest))

	done := Progress{UserDetailsCompleted: true, PretestCompleted: true, InterventionCompleted: true}
	assert.True(t, done.CanSubmit(StagePosttest))
}

func TestCanSubmitAllowsResubmissionOfCompletedStage(t *testing.T) {
	p := Progress{UserDetailsCompleted: true, PretestCompleted: true}
	assert.True(t, p.CanSubmit(StageUserDetails))
	assert.True(t, p.CanSubmit(StagePretest))
}

func TestCanSubmitRejectsUnknownStage(t *testing.T) {
	p := Progress{UserDetailsCompleted: true, PretestCompleted: true, InterventionCompleted: true, PosttestCompleted: true}
	assert.False(t, p.CanSubmit(StageComplete))
	assert.False(t, p.CanSubmit(Stage("bogus")))
}
