package payroll

// transitions is the cycle workflow: draft -> pending_approval -> approved ->
// processing -> completed, with reject returning a pending cycle to draft.
// The age-out sweep additionally force-completes any non-terminal cycle whose
// period lies strictly before the current month; SweepableStatuses lists the
// statuses that sweep may leave.
var transitions = map[CycleStatus][]CycleStatus{
	CycleStatusDraft:           {CycleStatusPendingApproval},
	CycleStatusPendingApproval: {CycleStatusApproved, CycleStatusDraft},
	CycleStatusApproved:        {CycleStatusProcessing},
	CycleStatusProcessing:      {CycleStatusCompleted},
	CycleStatusCompleted:       {},
	CycleStatusFailed:          {},
}

// SweepableStatuses are the states the age-out sweep moves to completed.
var SweepableStatuses = []CycleStatus{
	CycleStatusDraft,
	CycleStatusPendingApproval,
	CycleStatusApproved,
	CycleStatusProcessing,
}

// CanTransition reports whether from -> to is a legal workflow edge.
func CanTransition(from, to CycleStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known cycle status.
func IsValidStatus(s CycleStatus) bool {
	_, ok := transitions[s]
	return ok
}

// IsLocked reports whether payroll items of a cycle in this status are
// frozen. The orchestrator may only insert or replace items while the cycle
// is in draft or pending_approval.
func (s CycleStatus) IsLocked() bool {
	return s != CycleStatusDraft && s != CycleStatusPendingApproval
}

// IsTerminal reports whether the engine itself can move the cycle further.
func (s CycleStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}
