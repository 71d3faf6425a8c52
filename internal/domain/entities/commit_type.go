package entities

import "strings"

// CommitType is a conventional-commit prefix.
type CommitType struct {
	Value       string
	Description string
}

// CommitTypes returns the prefixes offered when committing, in display order.
func CommitTypes() []CommitType {
	return []CommitType{
		{Value: "feat", Description: "a new feature"},
		{Value: "fix", Description: "a bug fix"},
		{Value: "docs", Description: "documentation only changes"},
		{Value: "style", Description: "formatting, missing semicolons, white-space"},
		{Value: "refactor", Description: "a change that neither fixes a bug nor adds a feature"},
		{Value: "test", Description: "adding or correcting tests"},
		{Value: "chore", Description: "build process or auxiliary tools"},
	}
}

// FormatCommitMessage joins commitType and message as "<type>: <message>".
func FormatCommitMessage(commitType, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", &EmptyCommitMessageError{}
	}
	return commitType + ": " + message, nil
}
