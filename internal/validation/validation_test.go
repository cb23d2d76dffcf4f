package validation

import "testing"

func TestLoginInput(t *testing.T) {
	tests := []struct {
		name    string
		input   LoginInput
		wantErr bool
	}{
		{"valid", LoginInput{Email: "ada@example.com", Password: "secret"}, false},
		{"missing email", LoginInput{Password: "secret"}, true},
		{"bad email", LoginInput{Email: "not-an-email", Password: "secret"}, true},
		{"missing password", LoginInput{Email: "ada@example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.input.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterInput(t *testing.T) {
	valid := RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "longenough", Confirm: "longenough"}

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr bool
	}{
		{"valid", func(*RegisterInput) {}, false},
		{"short password", func(i *RegisterInput) { i.Password, i.Confirm = "short", "short" }, true},
		{"mismatched confirmation", func(i *RegisterInput) { i.Confirm = "different11" }, true},
		{"missing name", func(i *RegisterInput) { i.Name = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			if err := input.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChangePasswordInput(t *testing.T) {
	valid := ChangePasswordInput{Current: "oldpassword", New: "newpassword", Confirm: "newpassword"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	mismatch := valid
	mismatch.Confirm = "somethingelse"
	if err := mismatch.Validate(); err == nil {
		t.Error("mismatched confirmation accepted")
	}
}

func TestTodoInput(t *testing.T) {
	tests := []struct {
		name    string
		input   TodoInput
		wantErr bool
	}{
		{"title only", TodoInput{Title: "buy milk"}, false},
		{"with instant due date", TodoInput{Title: "buy milk", DueDate: "2025-06-16T09:00:00Z"}, false},
		{"with date-only due date", TodoInput{Title: "buy milk", DueDate: "2025-06-16"}, false},
		{"empty title", TodoInput{}, true},
		{"bad due date", TodoInput{Title: "buy milk", DueDate: "tomorrow-ish"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.input.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHabitInput(t *testing.T) {
	tests := []struct {
		name    string
		input   HabitInput
		wantErr bool
	}{
		{"valid daily", HabitInput{Title: "run", Frequency: "daily", StartDate: "2025-06-16"}, false},
		{"unknown frequency", HabitInput{Title: "run", Frequency: "fortnightly"}, true},
		{"missing title", HabitInput{Frequency: "daily"}, true},
		{"bad start date", HabitInput{Title: "run", Frequency: "weekly", StartDate: "16/06/2025"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.input.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
