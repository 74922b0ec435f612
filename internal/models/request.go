package models

import (
	"time"
)

// DateLayout is the ledger's date format (dd-mm-yyyy).
const DateLayout = "02-01-2006"

// Ledger column positions, fixed by the request ledger spreadsheet
// (columns A..V). These offsets must not shift: every range written back to
// the sheet is derived from them.
const (
	ColStudentID = iota
	ColFaceID
	ColName
	ColMobileNumber
	ColGender
	ColHostelName
	ColRoomNo
	ColBatch
	ColCourse
	ColNEETJEE
	ColReason
	ColOutDate
	ColStatus
	ColOutApproval
	ColWardenNameOut
	ColWardenRemarksOut
	ColOutTime
	ColInDate
	ColInApproval
	ColWardenNameIn
	ColWardenRemarksIn
	ColInTime

	LedgerWidth = 22
)

// MinRequestColumns is the minimum row length for a ledger row to be listed
// on the per-student request view. Shorter rows are skipped, not errors.
const MinRequestColumns = 12

// HeaderOffset converts a 0-based snapshot index to the absolute 1-based row
// number in the backing sheet (one header row, data starts at row 2).
const HeaderOffset = 2

// Lifecycle phase markers stored in the Status column.
const (
	StatusOut = "OUT"
	StatusIn  = "IN"
)

// Terminal approval values written by warden decisions.
const (
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// Decision markers the guard search matches against the WardenNameOut column.
// The ledger historically records the decision there as well, so the search
// predicate keys on it.
const (
	DecisionApproved    = "APPROVED"
	DecisionNotApproved = "NOT APPROVED"
)

// RequestRecord is one ledger row: a denormalised student snapshot plus the
// two-phase outing lifecycle fields.
type RequestRecord struct {
	RowIndex int `json:"-"`
	// Width is the raw column count of the source row. Several dashboard
	// predicates gate on minimum row width rather than decoded emptiness.
	Width int `json:"-"`

	StudentID        string `json:"StudentId"`
	FaceID           string `json:"FaceId"`
	Name             string `json:"Name"`
	MobileNumber     string `json:"MobileNumber"`
	Gender           string `json:"Gender"`
	HostelName       string `json:"HostelName"`
	RoomNo           string `json:"RoomNo"`
	Batch            string `json:"Batch"`
	Course           string `json:"Course"`
	NEETJEE          string `json:"NEET_JEE"`
	Reason           string `json:"Reason"`
	OutDate          string `json:"OutDate"`
	Status           string `json:"Status"`
	OutApproval      string `json:"Warden_OutApproval"`
	WardenNameOut    string `json:"WardenNameOut"`
	WardenRemarksOut string `json:"WardenRemarksOut"`
	OutTime          string `json:"OutTime"`
	InDate           string `json:"InDate"`
	InApproval       string `json:"Warden_InApproval"`
	WardenNameIn     string `json:"WardenNameIn"`
	WardenRemarksIn  string `json:"WardenRemarksIn"`
	InTime           string `json:"InTime"`
}

// DecodeRequestRow maps a positional ledger row to a RequestRecord. It is a
// total function: any column index beyond the row's length decodes to "".
func DecodeRequestRow(index int, row []string) RequestRecord {
	return RequestRecord{
		RowIndex:         index,
		Width:            len(row),
		StudentID:        cell(row, ColStudentID),
		FaceID:           cell(row, ColFaceID),
		Name:             cell(row, ColName),
		MobileNumber:     cell(row, ColMobileNumber),
		Gender:           cell(row, ColGender),
		HostelName:       cell(row, ColHostelName),
		RoomNo:           cell(row, ColRoomNo),
		Batch:            cell(row, ColBatch),
		Course:           cell(row, ColCourse),
		NEETJEE:          cell(row, ColNEETJEE),
		Reason:           cell(row, ColReason),
		OutDate:          cell(row, ColOutDate),
		Status:           cell(row, ColStatus),
		OutApproval:      cell(row, ColOutApproval),
		WardenNameOut:    cell(row, ColWardenNameOut),
		WardenRemarksOut: cell(row, ColWardenRemarksOut),
		OutTime:          cell(row, ColOutTime),
		InDate:           cell(row, ColInDate),
		InApproval:       cell(row, ColInApproval),
		WardenNameIn:     cell(row, ColWardenNameIn),
		WardenRemarksIn:  cell(row, ColWardenRemarksIn),
		InTime:           cell(row, ColInTime),
	}
}

// EncodeRow renders the record as a full-width positional row.
func (r RequestRecord) EncodeRow() []string {
	row := make([]string, LedgerWidth)
	row[ColStudentID] = r.StudentID
	row[ColFaceID] = r.FaceID
	row[ColName] = r.Name
	row[ColMobileNumber] = r.MobileNumber
	row[ColGender] = r.Gender
	row[ColHostelName] = r.HostelName
	row[ColRoomNo] = r.RoomNo
	row[ColBatch] = r.Batch
	row[ColCourse] = r.Course
	row[ColNEETJEE] = r.NEETJEE
	row[ColReason] = r.Reason
	row[ColOutDate] = r.OutDate
	row[ColStatus] = r.Status
	row[ColOutApproval] = r.OutApproval
	row[ColWardenNameOut] = r.WardenNameOut
	row[ColWardenRemarksOut] = r.WardenRemarksOut
	row[ColOutTime] = r.OutTime
	row[ColInDate] = r.InDate
	row[ColInApproval] = r.InApproval
	row[ColWardenNameIn] = r.WardenNameIn
	row[ColWardenRemarksIn] = r.WardenRemarksIn
	row[ColInTime] = r.InTime
	return row
}

// PadRow extends row with empty cells until it is at least width long. It
// never truncates.
func PadRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

// SetCell pads row so that col is addressable, then sets it. Partial update:
// existing cells are preserved.
func SetCell(row []string, col int, value string) []string {
	row = PadRow(row, col+1)
	row[col] = value
	return row
}

// ColumnLetter converts a 0-based column index to its sheet letter (A..V).
func ColumnLetter(col int) string {
	return string(rune('A' + col))
}

// ParseOutDate parses the OutDate column in the ledger date format.
func (r RequestRecord) ParseOutDate() (time.Time, error) {
	return time.Parse(DateLayout, r.OutDate)
}

// ParseInDate parses the InDate column in the ledger date format.
func (r RequestRecord) ParseInDate() (time.Time, error) {
	return time.Parse(DateLayout, r.InDate)
}

// RequestSummary is the per-student request view. Empty lifecycle fields are
// presented as pending rather than blank.
type RequestSummary struct {
	RequestID   int    `json:"RequestId"`
	Reason      string `json:"Reason"`
	OutDate     string `json:"OutDate"`
	InDate      string `json:"InDate"`
	OutApproval string `json:"Warden_OutApproval"`
	InApproval  string `json:"Warden_InApproval"`
}

const (
	pendingValue  = "PENDING"
	noReasonValue = "No reason provided"
)

// Summary converts a ledger record to its student-facing view. RequestID is
// the 1-based row position.
func (r RequestRecord) Summary() RequestSummary {
	return RequestSummary{
		RequestID:   r.RowIndex + 1,
		Reason:      orDefault(r.Reason, noReasonValue),
		OutDate:     orDefault(r.OutDate, pendingValue),
		InDate:      orDefault(r.InDate, pendingValue),
		OutApproval: orDefault(r.OutApproval, pendingValue),
		InApproval:  orDefault(r.InApproval, pendingValue),
	}
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
