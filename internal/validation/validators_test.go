package validation

import (
	"testing"

	"github.com/propdesk/propdesk/internal/models"
)

func TestValidateUserRole(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"Admin", false},
		{"User", false},
		{"admin", true},
		{"", true},
		{"Owner", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateUserRole(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUserRole(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotificationType(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"Email", false},
		{"Sms", false},
		{"Push", false},
		{"email", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateNotificationType(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotificationType(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:            "ana@example.com",
		Password:         "password-1",
		ConfirmPassword:  "password-1",
		FirstName:        "Ana",
		LastName:         "Ruiz",
		Role:             models.RoleUser,
		Phone:            "3005551234",
		NotificationType: models.NotificationEmail,
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantErr bool
	}{
		{"valid", func(r *models.RegisterRequest) {}, false},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, true},
		{"short password", func(r *models.RegisterRequest) { r.Password, r.ConfirmPassword = "short", "short" }, true},
		{"password mismatch", func(r *models.RegisterRequest) { r.ConfirmPassword = "different-1" }, true},
		{"bad role", func(r *models.RegisterRequest) { r.Role = "SuperAdmin" }, true},
		{"bad notification type", func(r *models.RegisterRequest) { r.NotificationType = "Fax" }, true},
		{"missing phone", func(r *models.RegisterRequest) { r.Phone = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)
			err := Validate.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
		want   string
	}{
		{"missing field", func(r *models.RegisterRequest) { r.FirstName = "" }, "FirstName is required"},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "nope" }, "Email must be a valid email address"},
		{"password mismatch", func(r *models.RegisterRequest) { r.ConfirmPassword = "different-1" }, "passwords do not match"},
		{"bad role", func(r *models.RegisterRequest) { r.Role = "SuperAdmin" }, "role must be 'Admin' or 'User'"},
		{"bad notification type", func(r *models.RegisterRequest) { r.NotificationType = "Fax" }, "notificationType must be 'Email', 'Sms', or 'Push'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)
			err := Validate.Struct(req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if got := Describe(err); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("non-validator error", func(t *testing.T) {
		if got := Describe(nil); got != "invalid request" {
			t.Errorf("Describe(nil) = %q, want generic message", got)
		}
	})
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"strips control characters", "he\x00llo\x07", "hello"},
		{"keeps newline and tab", "a\n\tb", "a\n\tb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
