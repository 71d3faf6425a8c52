package repositories

// PromptOption is one entry of a selection prompt.
type PromptOption struct {
	Label string
	Value string
}

// PromptRepository gathers answers from the operator.
type PromptRepository interface {
	Select(message string, options []PromptOption, defaultIndex int) (string, error)
	Input(message string, validate func(string) error) (string, error)
	Password(message string) (string, error)
	Confirm(message string, defaultYes bool) (bool, error)
	Info(message string)
	Warn(message string)
}
