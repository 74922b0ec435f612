package repository

import (
	"context"
	"fmt"

	"github.com/hosteldesk/outpass-api/internal/models"
)

// LedgerRepository persists outing-request rows in the ledger sheet. All
// reads are full snapshots; all writes address absolute sheet rows derived
// from the snapshot index plus the header offset.
type LedgerRepository struct {
	store   valuesAPI
	sheetID string
	tab     string
}

// NewLedgerRepository constructs a LedgerRepository.
func NewLedgerRepository(store valuesAPI, sheetID, tab string) *LedgerRepository {
	return &LedgerRepository{store: store, sheetID: sheetID, tab: tab}
}

// Snapshot reads the full ledger in table order. Record row indices are
// 0-based positions within this snapshot.
func (r *LedgerRepository) Snapshot(ctx context.Context) ([]models.RequestRecord, error) {
	readRange := fmt.Sprintf("%s!A%d:V", r.tab, models.HeaderOffset)
	rows, err := r.store.Get(ctx, r.sheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("ledger snapshot: %w", err)
	}
	records := make([]models.RequestRecord, 0, len(rows))
	for i, row := range rows {
		records = append(records, models.DecodeRequestRow(i, row))
	}
	return records, nil
}

// Append writes a new row after the last ledger row.
func (r *LedgerRepository) Append(ctx context.Context, row []string) error {
	writeRange := fmt.Sprintf("%s!A:V", r.tab)
	if err := r.store.Append(ctx, r.sheetID, writeRange, [][]string{row}); err != nil {
		return fmt.Errorf("ledger append: %w", err)
	}
	return nil
}

// UpdateCell writes a single cell of the row at the given snapshot index.
func (r *LedgerRepository) UpdateCell(ctx context.Context, rowIndex, col int, value string) error {
	writeRange := fmt.Sprintf("%s!%s%d", r.tab, models.ColumnLetter(col), rowIndex+models.HeaderOffset)
	if err := r.store.Update(ctx, r.sheetID, writeRange, [][]string{{value}}); err != nil {
		return fmt.Errorf("ledger update cell: %w", err)
	}
	return nil
}

// UpdateRow writes the full row back at the given snapshot index.
func (r *LedgerRepository) UpdateRow(ctx context.Context, rowIndex int, row []string) error {
	sheetRow := rowIndex + models.HeaderOffset
	writeRange := fmt.Sprintf("%s!A%d:V%d", r.tab, sheetRow, sheetRow)
	if err := r.store.Update(ctx, r.sheetID, writeRange, [][]string{row}); err != nil {
		return fmt.Errorf("ledger update row: %w", err)
	}
	return nil
}
