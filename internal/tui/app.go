// internal/tui/app.go
//
// The interactive editor for venn. It uses bubbletea, which follows The Elm
// Architecture: the App model holds all state, Update reacts to messages,
// View renders the state to a string.
//
// The editor shows a column of fields (name + values per field). Every
// keystroke re-parses the edited field; when all fields parse, the full
// pairwise comparison is recomputed and rendered below. Invalid fields are
// highlighted and withhold comparison entirely until fixed.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgold/venn/internal/compare"
	"github.com/pgold/venn/internal/config"
	"github.com/pgold/venn/internal/logging"
	"github.com/pgold/venn/internal/parse"
	"github.com/pgold/venn/internal/value"
)

const maxFields = 16

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogger attaches a file logger. A nil logger is fine; lines are dropped.
func WithLogger(logger *logging.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// field is one editable list: its name, its raw values text, and the latest
// parse outcome for that text.
type field struct {
	name   textinput.Model
	values textinput.Model

	parsed   []value.Value
	parseErr error
}

// App is the main application model. In bubbletea, this holds ALL state.
type App struct {
	config config.Config
	logger *logging.Logger

	fields []*field
	// focus is a linear cursor over inputs: field i owns slots 2i (name)
	// and 2i+1 (values).
	focus int

	results []compare.PairResult

	width  int
	height int

	styles styles
}

type styles struct {
	header lipgloss.Style
	label  lipgloss.Style
	accent lipgloss.Style
	errMsg lipgloss.Style
	faint  lipgloss.Style
	box    lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	accent := lipgloss.Color(theme.Accent)
	errCol := lipgloss.Color(theme.Error)
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC")),
		accent: lipgloss.NewStyle().Bold(true).Foreground(accent),
		errMsg: lipgloss.NewStyle().Foreground(errCol),
		faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),
	}
}

// NewApp builds the editor with the configured number of empty fields.
func NewApp(cfg config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		styles: newStyles(cfg.Theme),
	}
	for _, opt := range opts {
		opt(a)
	}
	for i := 0; i < cfg.InitialFields; i++ {
		a.fields = append(a.fields, a.newField(i))
	}
	a.setFocus(1) // start in the first values input
	a.recompute()
	return a
}

func (a *App) newField(i int) *field {
	name := textinput.New()
	name.Placeholder = a.displayName(i)
	name.Prompt = "name: "
	name.CharLimit = 64

	values := textinput.New()
	values.Placeholder = `[1, 2, 3] or 1, 2, 3`
	values.Prompt = "values: "

	return &field{name: name, values: values}
}

// displayName labels the i-th field, falling back to the configured prefix
// when the user typed no name.
func (a *App) displayName(i int) string {
	return fmt.Sprintf("%s %d", a.config.NamePrefix, i+1)
}

func (a *App) fieldName(i int) string {
	if name := a.fields[i].name.Value(); name != "" {
		return name
	}
	return a.displayName(i)
}

func (a *App) logInfo(format string, args ...any) {
	a.logger.Printf("INFO "+format, args...)
}

func (a *App) Init() tea.Cmd {
	a.logInfo("editor started with %d fields", len(a.fields))
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, f := range a.fields {
			f.name.Width = max(16, msg.Width/3)
			f.values.Width = max(24, msg.Width-20)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "enter", "down":
			a.setFocus(a.focus + 1)
			return a, nil
		case "shift+tab", "up":
			a.setFocus(a.focus - 1)
			return a, nil
		case "ctrl+a":
			return a, a.addField()
		case "ctrl+d":
			a.removeFocusedField()
			return a, nil
		}
	}

	// Everything else goes to the focused input; edits re-validate.
	f := a.fields[a.focus/2]
	var cmd tea.Cmd
	if a.focus%2 == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		before := f.values.Value()
		f.values, cmd = f.values.Update(msg)
		if f.values.Value() != before {
			a.reparse(f)
		}
	}
	a.recompute()
	return a, cmd
}

// setFocus moves the linear input cursor, wrapping at both ends, and keeps
// exactly one textinput focused.
func (a *App) setFocus(slot int) {
	total := len(a.fields) * 2
	slot = ((slot % total) + total) % total
	a.focus = slot
	for i, f := range a.fields {
		f.name.Blur()
		f.values.Blur()
		if slot/2 == i {
			if slot%2 == 0 {
				f.name.Focus()
			} else {
				f.values.Focus()
			}
		}
	}
}

// addField appends a new empty field after the current ones and moves focus
// to its values input.
func (a *App) addField() tea.Cmd {
	if len(a.fields) >= maxFields {
		return nil
	}
	a.fields = append(a.fields, a.newField(len(a.fields)))
	a.setFocus(len(a.fields)*2 - 1)
	a.recompute()
	a.logInfo("field added, %d total", len(a.fields))
	return textinput.Blink
}

// removeFocusedField drops the field under the cursor. The last remaining
// field is never removed.
func (a *App) removeFocusedField() {
	if len(a.fields) <= 1 {
		return
	}
	idx := a.focus / 2
	a.fields = append(a.fields[:idx], a.fields[idx+1:]...)
	for i, f := range a.fields {
		f.name.Placeholder = a.displayName(i)
	}
	a.setFocus(min(a.focus, len(a.fields)*2-1))
	a.recompute()
	a.logInfo("field removed, %d total", len(a.fields))
}

// reparse re-validates one field's raw text.
func (a *App) reparse(f *field) {
	f.parsed, f.parseErr = parse.Parse(f.values.Value())
	if f.parseErr != nil {
		a.logInfo("parse failure: %v", f.parseErr)
	}
}

// recompute rebuilds the comparison from scratch. Comparison is
// all-or-nothing: one invalid field withholds every pair result.
func (a *App) recompute() {
	a.results = nil
	if a.anyInvalid() {
		return
	}
	seqs := make([]compare.NamedSequence, len(a.fields))
	for i, f := range a.fields {
		seqs[i] = compare.NamedSequence{Name: a.fieldName(i), Values: f.parsed}
	}
	a.results = compare.Compare(seqs)
}

func (a *App) anyInvalid() bool {
	for _, f := range a.fields {
		if f.parseErr != nil {
			return true
		}
	}
	return false
}
