package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

type ledgerRepository interface {
	Snapshot(ctx context.Context) ([]models.RequestRecord, error)
	Append(ctx context.Context, row []string) error
	UpdateCell(ctx context.Context, rowIndex, col int, value string) error
	UpdateRow(ctx context.Context, rowIndex int, row []string) error
}

// SubmitOutRequest is the student's leave-request payload. The shape mirrors
// the submitting client: the student snapshot and the leave details arrive
// nested.
type SubmitOutRequest struct {
	StudentDetails models.StudentRecord `json:"studentDetails"`
	LeaveRequest   struct {
		Reason  string `json:"reason"`
		OutDate string `json:"outDate"`
	} `json:"leaveRequest"`
}

// SubmitInRequest is the student's return-declaration payload.
type SubmitInRequest struct {
	StudentDetails models.StudentRecord `json:"studentDetails"`
	LeaveRequest   struct {
		InDate string `json:"inDate"`
	} `json:"leaveRequest"`
}

// RequestService owns the student-facing ledger paths: submitting the OUT
// request, declaring re-entry, and listing a student's request history.
//
// The duplicate check on submission is read-then-append with no store-side
// token: two near-simultaneous submissions for the same student and date can
// both pass the check. Known weakness, kept as-is.
type RequestService struct {
	ledger    ledgerRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRequestService constructs the request service.
func NewRequestService(ledger ledgerRepository, validate *validator.Validate, logger *zap.Logger) *RequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{ledger: ledger, validator: validate, logger: logger}
}

// SubmitOut appends a new OUT-phase row after checking for a duplicate
// (StudentId, OutDate) submission.
func (s *RequestService) SubmitOut(ctx context.Context, req SubmitOutRequest) error {
	studentID := req.StudentDetails.StudentID
	reason := req.LeaveRequest.Reason
	outDate := req.LeaveRequest.OutDate
	if studentID == "" || reason == "" || outDate == "" {
		return appErrors.Clone(appErrors.ErrValidation, "All fields (StudentId, Reason, OutDate) are required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for _, rec := range records {
		if rec.StudentID == studentID && rec.OutDate == outDate {
			return appErrors.Clone(appErrors.ErrConflict, "Request with the same StudentId and OutDate already exists")
		}
	}

	record := models.RequestRecord{
		StudentID:    req.StudentDetails.StudentID,
		FaceID:       req.StudentDetails.FaceID,
		Name:         req.StudentDetails.Name,
		MobileNumber: req.StudentDetails.MobileNumber,
		Gender:       req.StudentDetails.Gender,
		HostelName:   req.StudentDetails.HostelName,
		RoomNo:       req.StudentDetails.RoomNo,
		Batch:        req.StudentDetails.Batch,
		Course:       req.StudentDetails.Course,
		NEETJEE:      req.StudentDetails.NEETJEE,
		Reason:       reason,
		OutDate:      outDate,
		Status:       models.StatusOut,
	}

	// New rows carry only the submission columns; lifecycle columns fill in
	// as the request progresses.
	row := record.EncodeRow()[:models.ColStatus+1]
	if err := s.ledger.Append(ctx, row); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to append outing request")
	}

	s.logger.Info("outing request submitted",
		zap.String("student_id", studentID),
		zap.String("out_date", outDate),
		zap.String("correlation_id", uuid.NewString()),
	)
	return nil
}

// SubmitIn locates the student's active OUT-phase row and flips it into the
// IN phase. The row qualifies only once the guard has recorded an exit time.
// The two cell writes are sequential; if the second fails the first stays
// applied.
func (s *RequestService) SubmitIn(ctx context.Context, req SubmitInRequest) error {
	studentID := req.StudentDetails.StudentID
	inDate := req.LeaveRequest.InDate
	if studentID == "" || inDate == "" {
		return appErrors.Clone(appErrors.ErrValidation, "StudentId and InDate are required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	for _, rec := range records {
		if rec.StudentID != studentID {
			continue
		}
		if err := rec.SubmitReentry(inDate); err != nil {
			continue
		}
		if err := s.ledger.UpdateCell(ctx, rec.RowIndex, models.ColInDate, inDate); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to record in date")
		}
		if err := s.ledger.UpdateCell(ctx, rec.RowIndex, models.ColStatus, models.StatusIn); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to update request status")
		}
		s.logger.Info("re-entry submitted",
			zap.String("student_id", studentID),
			zap.String("in_date", inDate),
			zap.Int("row", rec.RowIndex),
		)
		return nil
	}

	return appErrors.Clone(appErrors.ErrNotFound, "No existing entry found with the given StudentId and OutDate")
}

// RequestsFor lists the student's ledger rows in table order. Rows too short
// to carry the request columns are skipped. An empty result is the distinct
// no-requests outcome, not an upstream failure.
func (s *RequestService) RequestsFor(ctx context.Context, studentID string) ([]models.RequestSummary, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "StudentId is required")
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	summaries := make([]models.RequestSummary, 0)
	for _, rec := range records {
		if rec.Width < models.MinRequestColumns {
			continue
		}
		if rec.StudentID == studentID {
			summaries = append(summaries, rec.Summary())
		}
	}

	if len(summaries) == 0 {
		return nil, appErrors.ErrNoRequests
	}
	return summaries, nil
}
