package dto

// MarkAttendanceRequest marks a cohort of students present for the
// current session.
type MarkAttendanceRequest struct {
	PresentStudentUIDs []string `json:"presentStudentUids" binding:"required"`
	TeacherName        string   `json:"teacherName"`
}

// MarkAttendanceResponse reports how many ledger appends were applied.
type MarkAttendanceResponse struct {
	Message string `json:"message" example:"Attendance marked successfully."`
	Marked  int    `json:"marked" example:"17"`
}
