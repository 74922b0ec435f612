package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hosteldesk/outpass-api/internal/models"
)

// ErrRowNotFound marks a lookup that matched no row. Services translate it to
// the API-level not-found error.
var ErrRowNotFound = errors.New("row not found")

// valuesAPI is the tabular-store port: ranged read, append, ranged update.
// The Google Sheets client implements it.
type valuesAPI interface {
	Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	Append(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
	Update(ctx context.Context, spreadsheetID, writeRange string, rows [][]string) error
}

// DirectoryRepository reads the student directory sheet. The directory is
// never written by this system.
type DirectoryRepository struct {
	store   valuesAPI
	sheetID string
	tab     string
}

// NewDirectoryRepository constructs a DirectoryRepository.
func NewDirectoryRepository(store valuesAPI, sheetID, tab string) *DirectoryRepository {
	return &DirectoryRepository{store: store, sheetID: sheetID, tab: tab}
}

// Snapshot reads the full directory, skipping the header row.
func (r *DirectoryRepository) Snapshot(ctx context.Context) ([]models.StudentRecord, error) {
	readRange := fmt.Sprintf("%s!A%d:V", r.tab, models.HeaderOffset)
	rows, err := r.store.Get(ctx, r.sheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("directory snapshot: %w", err)
	}
	students := make([]models.StudentRecord, 0, len(rows))
	for _, row := range rows {
		students = append(students, models.DecodeStudentRow(row))
	}
	return students, nil
}

// FindByID returns the first directory row matching the student id.
func (r *DirectoryRepository) FindByID(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	students, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].StudentID == studentID {
			return &students[i], nil
		}
	}
	return nil, ErrRowNotFound
}
