package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

func selectOption(message string, options []string, defaultOption string) (string, error) {
	// Validate the default value exists in options
	defaultExists := false
	for _, opt := range options {
		if opt == defaultOption {
			defaultExists = true
			break
		}
	}
	if !defaultExists && defaultOption != "" {
		return "", fmt.Errorf("default option %q not in option list", defaultOption)
	}

	var selected string

	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: defaultOption, // Defaults to empty if none is provided
	}

	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return selected, nil
}

func confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}

	return answer, nil
}
