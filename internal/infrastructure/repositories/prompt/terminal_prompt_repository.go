package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rios0rios0/xx-cli/internal/domain/repositories"
)

// AccessibleEnvVar forces plain line prompts even on a terminal.
const AccessibleEnvVar = "ACCESSIBLE"

var (
	// ErrInputClosed is returned when the input ends before an answer was given.
	ErrInputClosed = errors.New("input closed before an answer was given")
	// ErrPromptAborted is returned when the operator cancels a prompt.
	ErrPromptAborted = errors.New("prompt aborted")
)

type styleSet struct {
	warning lipgloss.Style
	info    lipgloss.Style
}

func newStyleSet() styleSet {
	return styleSet{
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// TerminalPromptRepository implements repositories.PromptRepository with huh forms.
// In accessible mode every question is a plain numbered or line prompt, which is
// also what runs when stdin is not a terminal.
type TerminalPromptRepository struct {
	in         io.Reader
	lines      *lineReader
	out        io.Writer
	accessible bool
	hidden     bool
	styles     styleSet
}

// NewTerminalPromptRepository creates a prompter bound to the process stdin and stdout.
func NewTerminalPromptRepository() *TerminalPromptRepository {
	tty := isTerminal(os.Stdin)
	return newTerminalPromptRepository(os.Stdin, os.Stdout, os.Getenv(AccessibleEnvVar) != "" || !tty)
}

// NewTerminalPromptRepositoryWithIO creates an accessible prompter reading answers
// from in and writing prompts to out.
func NewTerminalPromptRepositoryWithIO(in io.Reader, out io.Writer) *TerminalPromptRepository {
	return newTerminalPromptRepository(in, out, true)
}

func newTerminalPromptRepository(in io.Reader, out io.Writer, accessible bool) *TerminalPromptRepository {
	it := &TerminalPromptRepository{
		in:         in,
		out:        out,
		accessible: accessible,
		hidden:     isTerminal(in),
		styles:     newStyleSet(),
	}
	if !it.hidden {
		it.lines = newLineReader(in)
	}
	return it
}

func (it *TerminalPromptRepository) Select(
	message string,
	options []repositories.PromptOption,
	defaultIndex int,
) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to choose from for %q", message)
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		huhOptions = append(huhOptions, huh.NewOption(option.Label, option.Value))
	}
	value := options[defaultIndex].Value
	field := huh.NewSelect[string]().
		Title(message).
		Options(huhOptions...).
		Value(&value)

	if err := it.run(field); err != nil {
		return "", err
	}
	return value, nil
}

func (it *TerminalPromptRepository) Input(message string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().Title(message).Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := it.run(field); err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if validate != nil {
		if err := validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

// Password reads a secret without echo when the input is a terminal.
func (it *TerminalPromptRepository) Password(message string) (string, error) {
	var value string
	field := huh.NewInput().Title(message).Value(&value)
	if it.hidden {
		field = field.EchoMode(huh.EchoModePassword)
	}

	if err := it.run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (it *TerminalPromptRepository) Confirm(message string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().Title(message).Value(&value)

	if err := it.run(field); err != nil {
		return false, err
	}
	return value, nil
}

func (it *TerminalPromptRepository) Info(message string) {
	fmt.Fprintln(it.out, it.styles.info.Render(message))
}

func (it *TerminalPromptRepository) Warn(message string) {
	fmt.Fprintln(it.out, it.styles.warning.Render(message))
}

func (it *TerminalPromptRepository) run(field huh.Field) error {
	input := it.in
	if it.lines != nil {
		it.lines.reset()
		input = it.lines
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(it.accessible).
		WithShowHelp(!it.accessible).
		WithTheme(huh.ThemeCharm()).
		WithInput(input).
		WithOutput(it.out)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrPromptAborted
		}
		return fmt.Errorf("failed to run prompt: %w", err)
	}
	if it.lines != nil && it.lines.closedEmpty() {
		return ErrInputClosed
	}
	return nil
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// lineReader hands out at most one line per Read so that each accessible
// prompt consumes only its own answer from a shared, non-terminal input.
type lineReader struct {
	reader  *bufio.Reader
	pending []byte
	partial bool
	eof     bool
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(in)}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.reader.ReadBytes('\n')
		if len(line) == 0 {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			return 0, err
		}
		l.pending = line
		l.partial = line[len(line)-1] != '\n'
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

func (l *lineReader) reset() {
	l.partial = false
	l.eof = false
}

// closedEmpty reports whether the input ended before the current prompt got a
// valid answer. A last line without a trailing newline still counts as an answer.
func (l *lineReader) closedEmpty() bool { return l.eof && !l.partial }
