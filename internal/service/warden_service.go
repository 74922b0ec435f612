package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

type notifier interface {
	Send(to, body string) (string, error)
}

// DecisionRequest is the warden's approval payload. OutDate (or InDate for
// the IN phase) pins the decision to one lifecycle row of the student.
type DecisionRequest struct {
	StudentID      string `json:"StudentId" validate:"required"`
	OutDate        string `json:"OutDate"`
	InDate         string `json:"InDate"`
	ApprovalStatus string `json:"ApprovalStatus" validate:"required"`
	WardenName     string `json:"WardenName" validate:"required"`
	Remarks        string `json:"Remarks"`
}

// DecisionResult reports the persisted decision and whether the SMS went out.
// The decision is durable even when the notification is not.
type DecisionResult struct {
	Notified   bool
	MessageSID string
}

// WardenService drives the approval side: pending dashboards and phase
// decisions with SMS notification to the student's guardian contact.
type WardenService struct {
	ledger    ledgerRepository
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewWardenService constructs the warden service.
func NewWardenService(ledger ledgerRepository, notify notifier, validate *validator.Validate, logger *zap.Logger) *WardenService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WardenService{ledger: ledger, notifier: notify, validator: validate, logger: logger, now: time.Now}
}

// OutDashboard lists OUT-phase rows still awaiting a decision, for today or a
// future out date. Rows with unparseable dates are skipped. Past-due pending
// rows do not surface; the filter is inclusive of today only.
func (s *WardenService) OutDashboard(ctx context.Context) ([]models.RequestRecord, error) {
	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	today := s.today()
	pending := make([]models.RequestRecord, 0)
	for _, rec := range records {
		if rec.Width < models.MinRequestColumns {
			continue
		}
		outDate, err := rec.ParseOutDate()
		if err != nil {
			s.logger.Debug("skipping row with unparseable out date",
				zap.Int("row", rec.RowIndex), zap.String("out_date", rec.OutDate))
			continue
		}
		if outDate.Before(today) {
			continue
		}
		if rec.InOutPhase() && models.Pending(rec.OutApproval) {
			pending = append(pending, rec)
		}
	}
	return pending, nil
}

// InDashboard is the IN-phase counterpart of OutDashboard.
func (s *WardenService) InDashboard(ctx context.Context) ([]models.RequestRecord, error) {
	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	today := s.today()
	pending := make([]models.RequestRecord, 0)
	for _, rec := range records {
		if rec.Width <= models.ColInDate {
			continue
		}
		inDate, err := rec.ParseInDate()
		if err != nil {
			continue
		}
		if inDate.Before(today) {
			continue
		}
		if rec.InInPhase() && models.Pending(rec.InApproval) {
			pending = append(pending, rec)
		}
	}
	return pending, nil
}

// DecideOut persists the OUT-phase decision on the first row matching
// (StudentId, OutDate, Status=OUT) and notifies the student's contact. The
// three cell writes are sequential and not rolled back on a later failure.
func (s *WardenService) DecideOut(ctx context.Context, req DecisionRequest) (*DecisionResult, error) {
	if err := s.validator.Struct(req); err != nil || req.OutDate == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "StudentId, OutDate, ApprovalStatus, WardenName are required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for _, rec := range records {
		if rec.StudentID != req.StudentID || rec.OutDate != req.OutDate || !rec.InOutPhase() {
			continue
		}
		if err := rec.DecideOut(req.ApprovalStatus, req.WardenName, req.Remarks); err != nil {
			return nil, appErrors.Clone(appErrors.ErrAlreadyDecided, "")
		}
		writes := []struct {
			col   int
			value string
		}{
			{models.ColOutApproval, req.ApprovalStatus},
			{models.ColWardenNameOut, req.WardenName},
			{models.ColWardenRemarksOut, req.Remarks},
		}
		for _, w := range writes {
			if err := s.ledger.UpdateCell(ctx, rec.RowIndex, w.col, w.value); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to persist approval decision")
			}
		}
		return s.notify(rec, req), nil
	}

	return nil, appErrors.Clone(appErrors.ErrNotFound, "Matching request not found")
}

// DecideIn persists the IN-phase decision, symmetric to DecideOut, matching
// on (StudentId, InDate, Status=IN).
func (s *WardenService) DecideIn(ctx context.Context, req DecisionRequest) (*DecisionResult, error) {
	if err := s.validator.Struct(req); err != nil || req.InDate == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "StudentId, InDate, ApprovalStatus, WardenName are required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for _, rec := range records {
		if rec.StudentID != req.StudentID || rec.InDate != req.InDate || !rec.InInPhase() {
			continue
		}
		if err := rec.DecideIn(req.ApprovalStatus, req.WardenName, req.Remarks); err != nil {
			return nil, appErrors.Clone(appErrors.ErrAlreadyDecided, "")
		}
		writes := []struct {
			col   int
			value string
		}{
			{models.ColInApproval, req.ApprovalStatus},
			{models.ColWardenNameIn, req.WardenName},
			{models.ColWardenRemarksIn, req.Remarks},
		}
		for _, w := range writes {
			if err := s.ledger.UpdateCell(ctx, rec.RowIndex, w.col, w.value); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to persist approval decision")
			}
		}
		return s.notify(rec, req), nil
	}

	return nil, appErrors.Clone(appErrors.ErrNotFound, "Matching request not found")
}

// notify dispatches the decision SMS. Delivery failure does not undo the
// decision; the result records it so the handler can surface it separately.
func (s *WardenService) notify(rec models.RequestRecord, req DecisionRequest) *DecisionResult {
	if s.notifier == nil {
		return &DecisionResult{Notified: false}
	}
	body := fmt.Sprintf("Your ward's request has been %s by Warden %s. Remarks: %s",
		req.ApprovalStatus, req.WardenName, req.Remarks)
	sid, err := s.notifier.Send(rec.MobileNumber, body)
	if err != nil {
		s.logger.Warn("decision persisted but SMS dispatch failed",
			zap.String("student_id", rec.StudentID), zap.Error(err))
		return &DecisionResult{Notified: false}
	}
	return &DecisionResult{Notified: true, MessageSID: sid}
}

// today returns the clock's calendar date at midnight UTC. Ledger dates parse
// to midnight UTC, so both sides of the dashboard comparison must share that
// location or a date equal to today reads as past on servers west of UTC.
func (s *WardenService) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
