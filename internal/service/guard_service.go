package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

// GateUpdateRequest is the guard's passage-logging payload. Time is the
// wall-clock reading at the moment the guard presses the button.
type GateUpdateRequest struct {
	StudentID string `json:"StudentId" validate:"required"`
	Status    string `json:"Status"`
	Time      string `json:"Time" validate:"required"`
}

// GuardService serves the gate: decided-request logs, per-student lookup,
// and recording of physical exit/entry times.
type GuardService struct {
	ledger    ledgerRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGuardService constructs the guard service.
func NewGuardService(ledger ledgerRepository, validate *validator.Validate, logger *zap.Logger) *GuardService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuardService{ledger: ledger, validator: validate, logger: logger}
}

// OutLog lists OUT-phase rows whose OUT approval has been decided either way.
// These are the requests the gate may act on.
func (s *GuardService) OutLog(ctx context.Context) ([]models.RequestRecord, error) {
	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	decided := make([]models.RequestRecord, 0)
	for _, rec := range records {
		if rec.Width <= models.ColOutApproval {
			continue
		}
		if rec.InOutPhase() && models.Decided(rec.OutApproval) {
			decided = append(decided, rec)
		}
	}
	return decided, nil
}

// InLog is the IN-phase counterpart of OutLog.
func (s *GuardService) InLog(ctx context.Context) ([]models.RequestRecord, error) {
	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	decided := make([]models.RequestRecord, 0)
	for _, rec := range records {
		if rec.Width <= models.ColInApproval {
			continue
		}
		if rec.InInPhase() && models.Decided(rec.InApproval) {
			decided = append(decided, rec)
		}
	}
	return decided, nil
}

// Search returns the first decided request row for the given student. The
// predicate keys on the WardenNameOut column, where the ledger historically
// records the decision marker.
func (s *GuardService) Search(ctx context.Context, studentID string) (*models.RequestRecord, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "StudentId is required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for i := range records {
		rec := records[i]
		if rec.StudentID != studentID || rec.Width <= models.ColWardenNameOut {
			continue
		}
		marker := strings.TrimSpace(rec.WardenNameOut)
		if marker == models.DecisionApproved || marker == models.DecisionNotApproved {
			return &rec, nil
		}
	}

	return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found or request not approved")
}

// RecordExit stamps the exit time on the student's first OUT-phase row and
// writes the whole row back. Status is not changed by the gate.
func (s *GuardService) RecordExit(ctx context.Context, req GateUpdateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "StudentId and Time are required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for _, rec := range records {
		if rec.StudentID != req.StudentID {
			continue
		}
		if err := rec.RecordExit(req.Time); err != nil {
			continue
		}
		if err := s.ledger.UpdateRow(ctx, rec.RowIndex, rec.EncodeRow()); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to record exit time")
		}
		s.logger.Info("exit recorded",
			zap.String("student_id", req.StudentID), zap.String("time", req.Time))
		return nil
	}

	return appErrors.Clone(appErrors.ErrNotFound, "Matching request not found")
}

// RecordEntry stamps the entry time on the student's first IN-phase row.
func (s *GuardService) RecordEntry(ctx context.Context, req GateUpdateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "StudentId and Time are required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for _, rec := range records {
		if rec.StudentID != req.StudentID {
			continue
		}
		if err := rec.RecordEntry(req.Time); err != nil {
			continue
		}
		if err := s.ledger.UpdateRow(ctx, rec.RowIndex, rec.EncodeRow()); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to record entry time")
		}
		s.logger.Info("entry recorded",
			zap.String("student_id", req.StudentID), zap.String("time", req.Time))
		return nil
	}

	return appErrors.Clone(appErrors.ErrNotFound, "Matching request not found")
}
