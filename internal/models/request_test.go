package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequestRowShortRow(t *testing.T) {
	rec := DecodeRequestRow(3, []string{"S001", "F1", "Asha"})

	assert.Equal(t, 3, rec.RowIndex)
	assert.Equal(t, 3, rec.Width)
	assert.Equal(t, "S001", rec.StudentID)
	assert.Equal(t, "Asha", rec.Name)
	assert.Equal(t, "", rec.OutDate)
	assert.Equal(t, "", rec.InTime)
}

func TestDecodeRequestRowFullRow(t *testing.T) {
	row := make([]string, LedgerWidth)
	row[ColStudentID] = "S002"
	row[ColOutDate] = "05-09-2026"
	row[ColStatus] = StatusOut
	row[ColOutApproval] = ApprovalApproved
	row[ColInTime] = "18:30"

	rec := DecodeRequestRow(0, row)
	assert.Equal(t, LedgerWidth, rec.Width)
	assert.Equal(t, "05-09-2026", rec.OutDate)
	assert.Equal(t, ApprovalApproved, rec.OutApproval)
	assert.Equal(t, "18:30", rec.InTime)
}

func TestEncodeRowRoundTrip(t *testing.T) {
	row := make([]string, LedgerWidth)
	for i := range row {
		row[i] = string(rune('a' + i))
	}

	rec := DecodeRequestRow(0, row)
	assert.Equal(t, row, rec.EncodeRow())
}

func TestPadRowNeverTruncates(t *testing.T) {
	row := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b", "c"}, PadRow(row, 2))
	assert.Equal(t, []string{"a", "b", "c", "", ""}, PadRow(row, 5))
}

func TestSetCellExtendsRow(t *testing.T) {
	row := []string{"S001"}
	row = SetCell(row, ColStatus, StatusOut)

	assert.Len(t, row, ColStatus+1)
	assert.Equal(t, "S001", row[ColStudentID])
	assert.Equal(t, StatusOut, row[ColStatus])
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(ColStudentID))
	assert.Equal(t, "L", ColumnLetter(ColOutDate))
	assert.Equal(t, "N", ColumnLetter(ColOutApproval))
	assert.Equal(t, "R", ColumnLetter(ColInDate))
	assert.Equal(t, "V", ColumnLetter(ColInTime))
}

func TestParseOutDate(t *testing.T) {
	rec := RequestRecord{OutDate: "28-08-2026"}
	parsed, err := rec.ParseOutDate()
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 8, int(parsed.Month()))
	assert.Equal(t, 28, parsed.Day())

	rec.OutDate = "2026-08-28"
	_, err = rec.ParseOutDate()
	assert.Error(t, err)
}

func TestSummaryAppliesPendingDefaults(t *testing.T) {
	rec := RequestRecord{RowIndex: 4, OutDate: "01-09-2026"}
	summary := rec.Summary()

	assert.Equal(t, 5, summary.RequestID)
	assert.Equal(t, "No reason provided", summary.Reason)
	assert.Equal(t, "01-09-2026", summary.OutDate)
	assert.Equal(t, "PENDING", summary.InDate)
	assert.Equal(t, "PENDING", summary.OutApproval)
	assert.Equal(t, "PENDING", summary.InApproval)
}

func TestSummaryKeepsStoredValues(t *testing.T) {
	rec := RequestRecord{
		RowIndex:    0,
		Reason:      "family function",
		OutDate:     "01-09-2026",
		InDate:      "03-09-2026",
		OutApproval: ApprovalApproved,
		InApproval:  ApprovalRejected,
	}
	summary := rec.Summary()

	assert.Equal(t, "family function", summary.Reason)
	assert.Equal(t, ApprovalApproved, summary.OutApproval)
	assert.Equal(t, ApprovalRejected, summary.InApproval)
}
