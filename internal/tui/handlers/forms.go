package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jotapp/jot/internal/tui/state"
)

// NewLoginForm creates the sign-in form
func NewLoginForm(fm *state.LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password cannot be empty")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("New here?").
				Affirmative("Create an account").
				Negative("Sign in").
				Value(&fm.Register),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewRegisterForm creates the account creation form
func NewRegisterForm(fm *state.RegisterFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(func(s string) error {
					return ozzo.Validate(s, ozzo.Required, is.Email)
				}),
			huh.NewInput().
				Title("Password").
				Description("At least 8 characters").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(func(s string) error {
					if len(s) < 8 {
						return fmt.Errorf("password must be at least 8 characters")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Confirm).
				Validate(func(s string) error {
					if s != fm.Password {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewComposeForm creates the free-form capture form
func NewComposeForm(fm *state.ComposeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What's on your mind?").
				Description("Plain text becomes a thought, todo, or habit.").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("text cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewPasswordForm creates the change-password form
func NewPasswordForm(fm *state.PasswordFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Current).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("current password cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("New Password").
				Description("At least 8 characters").
				EchoMode(huh.EchoModePassword).
				Value(&fm.New).
				Validate(func(s string) error {
					if len(s) < 8 {
						return fmt.Errorf("password must be at least 8 characters")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm New Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Confirm).
				Validate(func(s string) error {
					if s != fm.New {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmationForm creates a yes/no form for destructive actions
func NewConfirmationForm(fm *state.ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Message).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
