package request

// SendMailRequest forwards a staff-written note to a guest. Type picks the
// reservation or order template variant.
type SendMailRequest struct {
	Type    string `json:"type" binding:"required,oneof=reservation order"`
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}
