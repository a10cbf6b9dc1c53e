package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/spf13/cobra"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var userName, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the real-estate API",
		Long:  "Authenticate against the remote API and persist the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if userName == "" {
				userName, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptLine("Password: ")
				if err != nil {
					return err
				}
			}

			sess, err := e.gateway.Login(cmd.Context(), models.LoginRequest{
				UserName: userName,
				Password: password,
			})
			if err != nil {
				return err
			}

			name := strings.TrimSpace(sess.User.FirstName + " " + sess.User.LastName)
			if name == "" {
				name = sess.User.UserName
			}
			fmt.Printf("Logged in as %s\n", name)
			if sess.User.Role != "" {
				fmt.Printf("Role: %s\n", sess.User.Role)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&userName, "username", "u", "", "Account user name or email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	return cmd
}

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.gateway.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Long:  "Create an account on the remote API; log in separately afterwards",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if req.ConfirmPassword == "" {
				req.ConfirmPassword = req.Password
			}
			if err := e.gateway.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Printf("Registered %s. Run 'propdesk login' to sign in.\n", req.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm-password", "", "Password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Role, "role", models.RoleUser, "Account role (Admin or User)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.NotificationType, "notification-type", models.NotificationEmail, "Notification channel (Email, Sms, or Push)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's user",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if !e.gateway.IsAuthenticated(cmd.Context()) {
				fmt.Println("Not logged in")
				return nil
			}

			info := e.gateway.UserInfo(cmd.Context())
			if info == nil {
				fmt.Println("Logged in (no user details stored)")
				return nil
			}
			fmt.Printf("User ID:    %s\n", info.UserID)
			fmt.Printf("Name:       %s %s\n", info.FirstName, info.LastName)
			fmt.Printf("Email:      %s\n", info.Email)
			fmt.Printf("User name:  %s\n", info.UserName)
			if info.Role != "" {
				fmt.Printf("Role:       %s\n", info.Role)
			}
			return nil
		},
	}
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
