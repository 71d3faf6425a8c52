//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"

	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// ErrNoScriptedAnswer is returned when a prompt is asked more often than answers were scripted.
var ErrNoScriptedAnswer = errors.New("no scripted answer left")

// ScriptedPromptRepository implements repositories.PromptRepository with queued answers.
type ScriptedPromptRepository struct {
	// --- answers, consumed in order ---
	Selections    []string
	Inputs        []string
	Passwords     []string
	Confirmations []bool

	// --- spy ---
	Questions []string
	Options   [][]repositories.PromptOption
	Infos     []string
	Warnings  []string
}

var _ repositories.PromptRepository = (*ScriptedPromptRepository)(nil)

func (p *ScriptedPromptRepository) Select(
	message string,
	options []repositories.PromptOption,
	_ int,
) (string, error) {
	p.Questions = append(p.Questions, message)
	p.Options = append(p.Options, options)
	if len(p.Selections) == 0 {
		return "", ErrNoScriptedAnswer
	}
	answer := p.Selections[0]
	p.Selections = p.Selections[1:]
	return answer, nil
}

func (p *ScriptedPromptRepository) Input(message string, validate func(string) error) (string, error) {
	p.Questions = append(p.Questions, message)
	if len(p.Inputs) == 0 {
		return "", ErrNoScriptedAnswer
	}
	answer := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *ScriptedPromptRepository) Password(message string) (string, error) {
	p.Questions = append(p.Questions, message)
	if len(p.Passwords) == 0 {
		return "", ErrNoScriptedAnswer
	}
	answer := p.Passwords[0]
	p.Passwords = p.Passwords[1:]
	return answer, nil
}

func (p *ScriptedPromptRepository) Confirm(message string, _ bool) (bool, error) {
	p.Questions = append(p.Questions, message)
	if len(p.Confirmations) == 0 {
		return false, ErrNoScriptedAnswer
	}
	answer := p.Confirmations[0]
	p.Confirmations = p.Confirmations[1:]
	return answer, nil
}

func (p *ScriptedPromptRepository) Info(message string) { p.Infos = append(p.Infos, message) }

func (p *ScriptedPromptRepository) Warn(message string) { p.Warnings = append(p.Warnings, message) }
