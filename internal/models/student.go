package models

// Directory column positions, fixed by the student directory spreadsheet
// (columns A..J). The directory is read-only from this system's viewpoint.
const (
	DirColStudentID = iota
	DirColFaceID
	DirColName
	DirColMobileNumber
	DirColGender
	DirColHostelName
	DirColRoomNo
	DirColBatch
	DirColCourse
	DirColNEETJEE

	DirectoryWidth = 10
)

// StudentRecord is one row of the student directory.
type StudentRecord struct {
	StudentID    string `json:"StudentId"`
	FaceID       string `json:"FaceId"`
	Name         string `json:"Name"`
	MobileNumber string `json:"MobileNumber"`
	Gender       string `json:"Gender"`
	HostelName   string `json:"HostelName"`
	RoomNo       string `json:"RoomNo"`
	Batch        string `json:"Batch"`
	Course       string `json:"Course"`
	NEETJEE      string `json:"NEET_JEE"`
}

// DecodeStudentRow maps a positional directory row to a StudentRecord. It is
// total: indices beyond the row's length decode to "".
func DecodeStudentRow(row []string) StudentRecord {
	return StudentRecord{
		StudentID:    cell(row, DirColStudentID),
		FaceID:       cell(row, DirColFaceID),
		Name:         cell(row, DirColName),
		MobileNumber: cell(row, DirColMobileNumber),
		Gender:       cell(row, DirColGender),
		HostelName:   cell(row, DirColHostelName),
		RoomNo:       cell(row, DirColRoomNo),
		Batch:        cell(row, DirColBatch),
		Course:       cell(row, DirColCourse),
		NEETJEE:      cell(row, DirColNEETJEE),
	}
}
