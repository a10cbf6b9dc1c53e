package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/propdesk/propdesk/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("user_role", validateUserRole); err != nil {
		panic(fmt.Sprintf("failed to register user_role validator: %v", err))
	}
	if err := Validate.RegisterValidation("notification_type", validateNotificationType); err != nil {
		panic(fmt.Sprintf("failed to register notification_type validator: %v", err))
	}
}

// validateUserRole validates that a string is a valid role enum value
func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleAdmin, models.RoleUser:
		return true
	default:
		return false
	}
}

// validateNotificationType validates that a string is a valid notification channel
func validateNotificationType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.NotificationEmail, models.NotificationSms, models.NotificationPush:
		return true
	default:
		return false
	}
}

// ValidateUserRole validates a role string value
func ValidateUserRole(value string) error {
	switch value {
	case models.RoleAdmin, models.RoleUser:
		return nil
	default:
		return fmt.Errorf("invalid role: %s (must be 'Admin' or 'User')", value)
	}
}

// ValidateNotificationType validates a notification channel string value
func ValidateNotificationType(value string) error {
	switch value {
	case models.NotificationEmail, models.NotificationSms, models.NotificationPush:
		return nil
	default:
		return fmt.Errorf("invalid notificationType: %s (must be 'Email', 'Sms', or 'Push')", value)
	}
}

// Describe turns a validator error into a short form-facing message naming
// the first offending field.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "eqfield":
			return "passwords do not match"
		case "user_role":
			return "role must be 'Admin' or 'User'"
		case "notification_type":
			return "notificationType must be 'Email', 'Sms', or 'Push'"
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return "invalid request"
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}
