// Package validation checks form input before it leaves the client. A
// validation failure is shown inline and no network call is made.
package validation

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jotapp/jot/internal/constants"
	"github.com/jotapp/jot/internal/models"
)

// instantOrDate accepts an RFC 3339 instant or a bare YYYY-MM-DD date, the
// two shapes the backend stores.
var instantOrDate = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return validation.NewError("validation_date", "must be YYYY-MM-DD or an RFC 3339 timestamp")
})

type LoginInput struct {
	Email    string
	Password string
}

func (i LoginInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email),
		validation.Field(&i.Password, validation.Required),
	)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

func (i RegisterInput) Validate() error {
	if err := validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Email, validation.Required, is.Email),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&i.Confirm, validation.Required),
	); err != nil {
		return err
	}
	return matchPasswords(i.Password, i.Confirm)
}

type ChangePasswordInput struct {
	Current string
	New     string
	Confirm string
}

func (i ChangePasswordInput) Validate() error {
	if err := validation.ValidateStruct(&i,
		validation.Field(&i.Current, validation.Required),
		validation.Field(&i.New, validation.Required, validation.Length(8, 0)),
		validation.Field(&i.Confirm, validation.Required),
	); err != nil {
		return err
	}
	return matchPasswords(i.New, i.Confirm)
}

func matchPasswords(password, confirm string) error {
	if password != confirm {
		return validation.Errors{
			"Confirm": validation.NewError("validation_match", "passwords do not match"),
		}
	}
	return nil
}

type TodoInput struct {
	Title   string
	DueDate string
}

func (i TodoInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&i.DueDate, instantOrDate),
	)
}

type HabitInput struct {
	Title     string
	Frequency string
	StartDate string
}

func (i HabitInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&i.Frequency, validation.Required, validation.In(
			string(models.FrequencyDaily),
			string(models.FrequencyWeekly),
			string(models.FrequencyMonthly),
		)),
		validation.Field(&i.StartDate, validation.Date(constants.DateFormat)),
	)
}

type ComposeInput struct {
	Text string
}

func (i ComposeInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Text, validation.Required, validation.Length(1, 4000)),
	)
}
