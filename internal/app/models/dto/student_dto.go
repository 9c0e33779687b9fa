package dto

// FinalizeSignupRequest completes registration for a subject that just
// authenticated with the identity provider for the first time.
type FinalizeSignupRequest struct {
	UID   string `json:"uid" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Class string `json:"class" binding:"required"`
	Role  string `json:"role" binding:"omitempty,oneof=student teacher"`
}

// CheckProfileResponse reports whether a complete profile exists for
// the queried subject.
type CheckProfileResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}
