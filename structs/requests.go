package structs

// Account requests

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type VerifyEmailRequest struct {
	Email            string `json:"email" binding:"required,email"`
	ConfirmationCode string `json:"confirmationCode" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// Streak keeping requests

// SubmitProgressRequest is the body for logging today's study time.
type SubmitProgressRequest struct {
	Progress float64 `json:"progress" binding:"required,min=0.1,max=24"`
	Activity string  `json:"activity" binding:"required,min=3,max=150"`
	Subject  string  `json:"subject" binding:"required,min=1,max=50"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"omitempty,min=1,max=50"`
	AvatarURL   string `json:"avatarUrl" binding:"omitempty,url"`
}

// RespondNotificationRequest carries the user's reply to a notification.
type RespondNotificationRequest struct {
	Response string `json:"response" binding:"required,min=1,max=300"`
}
