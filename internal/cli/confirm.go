package cli

import "github.com/charmbracelet/huh"

// Confirm gates destructive commands behind an explicit prompt.
func Confirm(message string) (bool, error) {
	confirmed := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed),
	)).Run()
	return confirmed, err
}
