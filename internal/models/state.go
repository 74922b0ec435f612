package models

import (
	"errors"
	"strings"
)

// RequestState is the derived lifecycle state of a ledger row. It is never
// stored; it is computed from Status and the two approval columns.
type RequestState int

const (
	StateOutPending RequestState = iota
	StateOutApproved
	StateOutRejected
	StateInPending
	StateInApproved
	StateInRejected
)

func (s RequestState) String() string {
	switch s {
	case StateOutPending:
		return "OUT_PENDING"
	case StateOutApproved:
		return "OUT_APPROVED"
	case StateOutRejected:
		return "OUT_REJECTED"
	case StateInPending:
		return "IN_PENDING"
	case StateInApproved:
		return "IN_APPROVED"
	case StateInRejected:
		return "IN_REJECTED"
	}
	return "UNKNOWN"
}

// Transition gate failures. Services translate these to typed API errors.
var (
	ErrNotOutPhase    = errors.New("request is not in the OUT phase")
	ErrNotInPhase     = errors.New("request is not in the IN phase")
	ErrAlreadyDecided = errors.New("approval already decided")
	ErrNotExited      = errors.New("no exit time recorded for the request")
)

// Pending reports whether an approval cell is still undecided. Whitespace-only
// values count as pending.
func Pending(approval string) bool {
	return strings.TrimSpace(approval) == ""
}

// Decided reports whether an approval cell holds a terminal decision value.
func Decided(approval string) bool {
	switch strings.ToUpper(strings.TrimSpace(approval)) {
	case ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// InOutPhase reports whether the row's Status marks the OUT half of the
// lifecycle.
func (r RequestRecord) InOutPhase() bool {
	return strings.ToUpper(strings.TrimSpace(r.Status)) == StatusOut
}

// InInPhase reports whether the row's Status marks the IN half.
func (r RequestRecord) InInPhase() bool {
	return strings.ToUpper(strings.TrimSpace(r.Status)) == StatusIn
}

// State derives the logical state from the stored flag combination. A decided
// approval that is not literally APPROVED counts as rejected; the ledger has
// historically carried both REJECTED and NOT APPROVED spellings.
func (r RequestRecord) State() RequestState {
	if r.InInPhase() {
		if Pending(r.InApproval) {
			return StateInPending
		}
		if strings.ToUpper(strings.TrimSpace(r.InApproval)) == ApprovalApproved {
			return StateInApproved
		}
		return StateInRejected
	}
	if Pending(r.OutApproval) {
		return StateOutPending
	}
	if strings.ToUpper(strings.TrimSpace(r.OutApproval)) == ApprovalApproved {
		return StateOutApproved
	}
	return StateOutRejected
}

// RecordExit logs the guard-observed exit time. Valid only while the row is
// in the OUT phase; it does not change Status.
func (r *RequestRecord) RecordExit(t string) error {
	if !r.InOutPhase() {
		return ErrNotOutPhase
	}
	r.OutTime = t
	return nil
}

// DecideOut applies the warden's OUT-phase decision. A decision can be made
// at most once per phase.
func (r *RequestRecord) DecideOut(status, wardenName, remarks string) error {
	if !r.InOutPhase() {
		return ErrNotOutPhase
	}
	if !Pending(r.OutApproval) {
		return ErrAlreadyDecided
	}
	r.OutApproval = status
	r.WardenNameOut = wardenName
	r.WardenRemarksOut = remarks
	return nil
}

// SubmitReentry records the student's return date and flips the row into the
// IN phase. The student must have physically left: OutTime must be recorded.
func (r *RequestRecord) SubmitReentry(inDate string) error {
	if !r.InOutPhase() {
		return ErrNotOutPhase
	}
	if strings.TrimSpace(r.OutTime) == "" {
		return ErrNotExited
	}
	r.InDate = inDate
	r.Status = StatusIn
	return nil
}

// RecordEntry logs the guard-observed entry time. Valid only in the IN phase.
func (r *RequestRecord) RecordEntry(t string) error {
	if !r.InInPhase() {
		return ErrNotInPhase
	}
	r.InTime = t
	return nil
}

// DecideIn applies the warden's IN-phase decision, symmetric to DecideOut.
func (r *RequestRecord) DecideIn(status, wardenName, remarks string) error {
	if !r.InInPhase() {
		return ErrNotInPhase
	}
	if !Pending(r.InApproval) {
		return ErrAlreadyDecided
	}
	r.InApproval = status
	r.WardenNameIn = wardenName
	r.WardenRemarksIn = remarks
	return nil
}
