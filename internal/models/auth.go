package models

// UserRole values accepted by the registration endpoint
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// NotificationType values accepted by the registration endpoint
const (
	NotificationEmail = "Email"
	NotificationSms   = "Sms"
	NotificationPush  = "Push"
)

// LoginRequest is the credential payload for POST /api/Authentication/Login
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse is the normalized result of a login attempt. The backend
// answers either a JSON object carrying a token field or the raw token text;
// both shapes are folded into this struct.
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token,omitempty"`
	User    *UserInfo `json:"user,omitempty"`
	Message string    `json:"message,omitempty"`
}

// RegisterRequest is the payload for POST /api/Authentication/Register
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName        string `json:"firstName" validate:"required,min=1,max=100"`
	LastName         string `json:"lastName" validate:"required,min=1,max=100"`
	Role             string `json:"role" validate:"required,user_role"`
	Phone            string `json:"phone" validate:"required,min=7,max=20"`
	NotificationType string `json:"notificationType" validate:"required,notification_type"`
}
