package ui

import (
	"github.com/charmbracelet/huh"
)

// ReadInput prompts for a single line of text using huh. The initial
// value is shown for editing, so reruns keep existing settings.
func ReadInput(title, placeholder, initial string, validate func(string) error) (string, error) {
	value := initial

	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input))
	if err := form.Run(); err != nil {
		return "", err
	}

	return value, nil
}

// ReadConfirm prompts for a yes/no decision using huh
func ReadConfirm(title string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
