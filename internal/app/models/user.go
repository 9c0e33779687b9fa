package models

import "time"

// Role is the privilege level attached to a subject.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// RoleRecord maps an authenticated subject to its role. Looked up fresh
// on every privileged request so revocation takes effect immediately.
type RoleRecord struct {
	SubjectID string    `json:"subjectId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
