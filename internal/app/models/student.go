package models

import "time"

// AttendanceEntry is one row of a student's attendance ledger. Entries
// are immutable once appended.
type AttendanceEntry struct {
	Date        time.Time `json:"date"`
	TeacherName string    `json:"teacherName"`
}

// FeeStatus tracks the fee ledger of a student. Paid transitions
// false -> true exactly once per settled order, and paid=true implies
// PaymentID and OrderID are both set and were verified against the
// gateway signature.
type FeeStatus struct {
	// Amount is in minor currency units (paise).
	Amount      int64      `json:"amount"`
	Paid        bool       `json:"paid"`
	PaymentID   *string    `json:"paymentId,omitempty"`
	OrderID     *string    `json:"orderId,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

// StudentRecord is the per-student document held by the record store.
// The attendance sequence is append-only and chronological by insertion.
type StudentRecord struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Class      string            `json:"class"`
	CreatedAt  time.Time         `json:"createdAt"`
	Attendance []AttendanceEntry `json:"attendance"`
	Fees       FeeStatus         `json:"fees"`
}
