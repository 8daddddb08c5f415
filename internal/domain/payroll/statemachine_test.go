package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_LegalEdges(t *testing.T) {
	assert.True(t, CanTransition(CycleStatusDraft, CycleStatusPendingApproval))
	assert.True(t, CanTransition(CycleStatusPendingApproval, CycleStatusApproved))
	assert.True(t, CanTransition(CycleStatusPendingApproval, CycleStatusDraft)) // reject
	assert.True(t, CanTransition(CycleStatusApproved, CycleStatusProcessing))
	assert.True(t, CanTransition(CycleStatusProcessing, CycleStatusCompleted))
}

func TestCanTransition_IllegalEdges(t *testing.T) {
	assert.False(t, CanTransition(CycleStatusDraft, CycleStatusApproved))
	assert.False(t, CanTransition(CycleStatusDraft, CycleStatusCompleted))
	assert.False(t, CanTransition(CycleStatusApproved, CycleStatusDraft))
	assert.False(t, CanTransition(CycleStatusCompleted, CycleStatusDraft))
	assert.False(t, CanTransition(CycleStatusCompleted, CycleStatusProcessing))
	assert.False(t, CanTransition(CycleStatusFailed, CycleStatusDraft))
}

func TestIsLocked(t *testing.T) {
	assert.False(t, CycleStatusDraft.IsLocked())
	assert.False(t, CycleStatusPendingApproval.IsLocked())
	assert.True(t, CycleStatusApproved.IsLocked())
	assert.True(t, CycleStatusProcessing.IsLocked())
	assert.True(t, CycleStatusCompleted.IsLocked())
	assert.True(t, CycleStatusFailed.IsLocked())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, CycleStatusCompleted.IsTerminal())
	assert.True(t, CycleStatusFailed.IsTerminal())
	assert.False(t, CycleStatusDraft.IsTerminal())
	assert.False(t, CycleStatusProcessing.IsTerminal())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(CycleStatusDraft))
	assert.True(t, IsValidStatus(CycleStatusFailed))
	assert.False(t, IsValidStatus(CycleStatus("archived")))
}
