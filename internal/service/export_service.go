package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
	"github.com/hosteldesk/outpass-api/pkg/export"
)

// ExportFormat names a supported register export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered register ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders the outing register as a downloadable file.
type ExportService struct {
	ledger ledgerRepository
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(ledger ledgerRepository, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{ledger: ledger, csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// Register renders the full outing register in the requested format.
func (s *ExportService) Register(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	switch format {
	case ExportFormatCSV, ExportFormatPDF:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	records, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read request ledger")
	}

	dataset := buildRegisterDataset(records)

	var payload []byte
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, "Outing Register")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render register export")
	}

	timestamp := s.now().UTC().Format("20060102_150405")
	file := &ExportFile{
		Filename:    fmt.Sprintf("outing_register_%s.%s", timestamp, format),
		ContentType: contentTypeFor(format),
		Payload:     payload,
	}

	s.logger.Info("register exported",
		zap.String("format", string(format)),
		zap.Int("rows", len(dataset.Rows)),
	)
	return file, nil
}

func contentTypeFor(format ExportFormat) string {
	if format == ExportFormatPDF {
		return "application/pdf"
	}
	return "text/csv"
}

func buildRegisterDataset(records []models.RequestRecord) export.Dataset {
	headers := []string{
		"Student ID", "Name", "Hostel", "Room", "Reason", "Out Date", "Status",
		"Out Approval", "Out Warden", "Out Time", "In Date", "In Approval", "In Warden", "In Time",
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.StudentID,
			rec.Name,
			rec.HostelName,
			rec.RoomNo,
			rec.Reason,
			rec.OutDate,
			rec.Status,
			strings.TrimSpace(rec.OutApproval),
			rec.WardenNameOut,
			rec.OutTime,
			rec.InDate,
			strings.TrimSpace(rec.InApproval),
			rec.WardenNameIn,
			rec.InTime,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
