// Package dialog is the interactive terminal front end. The basic mode
// lists the predefined scripts; the advanced mode edits each setting.
package dialog

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"my-reboot/internal/options"
	"my-reboot/internal/script"
	"my-reboot/internal/text"
)

// Mode selects the dialog shown first.
type Mode int

const (
	Basic Mode = iota
	Advanced
)

// Outcome is what the user confirmed: either the index of a predefined
// script or, from the advanced mode, a set of options.
type Outcome struct {
	Predefined int
	Options    *script.Options
}

type row int

const (
	rowOS row = iota
	rowDisplay
	rowSwitch
	rowAction
)

// radio is a group of mutually exclusive choices. The last choice stands
// for "unset".
type radio struct {
	title    string
	labels   []string
	selected int
}

func newRadio[O options.Option](title string, values []O, label func(O) string, none string, current *O) radio {
	r := radio{title: title}
	for i, v := range values {
		r.labels = append(r.labels, label(v))
		if current != nil && *current == v {
			r.selected = i
		}
	}
	r.labels = append(r.labels, none)
	if current == nil {
		r.selected = len(values)
	}
	return r
}

func (r *radio) move(delta int) {
	r.selected = (r.selected + delta + len(r.labels)) % len(r.labels)
}

// value maps the selection back to values, nil for the unset choice.
func radioValue[O any](r radio, values []O) *O {
	if r.selected >= len(values) {
		return nil
	}
	v := values[r.selected]
	return &v
}

type styles struct {
	title    lipgloss.Style
	focused  lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true),
		focused:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		selected: r.NewStyle().Foreground(lipgloss.Color("2")),
		help:     r.NewStyle().Faint(true),
	}
}

// Model is the bubbletea model of both modes.
type Model struct {
	mode   Mode
	labels []string
	cursor int

	os            radio
	display       radio
	action        radio
	canSwitch     bool
	switchDisplay bool
	row           row

	outcome *Outcome
	styles  styles
}

// New returns a dialog starting in mode. labels are the predefined script
// labels; initial fills the advanced mode. The switch option is only
// offered when canSwitch is set.
func New(mode Mode, labels []string, initial script.Options, canSwitch bool, renderer *lipgloss.Renderer) Model {
	return Model{
		mode:   mode,
		labels: labels,
		os: newRadio(text.Capitalize(text.OSOnNextBootDescription), options.OperatingSystems(),
			options.OperatingSystem.String, text.OSUndefined, initial.NextBootOperatingSystem),
		display: newRadio(text.Capitalize(text.DisplayOnNextWindowsBootDescription), options.Displays(),
			options.Display.String, text.DisplayUndefined, initial.NextWindowsBootDisplay),
		action: newRadio(text.DialogActionTitle, options.RebootActions(),
			options.RebootAction.String, text.DialogKeepUsing, initial.RebootAction),
		canSwitch:     canSwitch,
		switchDisplay: canSwitch && initial.SwitchDisplay,
		styles:        newStyles(renderer),
	}
}

// Outcome returns the confirmed outcome, or false when the dialog was
// canceled or is still open.
func (m Model) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

// Mode returns the mode currently shown.
func (m Model) Mode() Mode {
	return m.mode
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "x":
		if m.mode == Basic {
			m.mode = Advanced
		} else {
			m.mode = Basic
		}
		return m, nil
	}

	if m.mode == Basic {
		return m.updateBasic(key)
	}
	return m.updateAdvanced(key)
}

func (m Model) updateBasic(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.labels)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.labels) == 0 {
			return m, nil
		}
		m.outcome = &Outcome{Predefined: m.cursor}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) rows() []row {
	if m.canSwitch {
		return []row{rowOS, rowDisplay, rowSwitch, rowAction}
	}
	return []row{rowOS, rowDisplay, rowAction}
}

func (m Model) updateAdvanced(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	index := 0
	for i, r := range rows {
		if r == m.row {
			index = i
		}
	}

	switch key.String() {
	case "up", "k":
		if index > 0 {
			m.row = rows[index-1]
		}
	case "down", "j", "tab":
		if index < len(rows)-1 {
			m.row = rows[index+1]
		}
	case "left", "h":
		m.moveChoice(-1)
	case "right", "l", " ":
		m.moveChoice(1)
	case "enter":
		m.outcome = &Outcome{Options: m.options()}
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) moveChoice(delta int) {
	switch m.row {
	case rowOS:
		m.os.move(delta)
	case rowDisplay:
		m.display.move(delta)
	case rowSwitch:
		m.switchDisplay = !m.switchDisplay
	case rowAction:
		m.action.move(delta)
	}
}

func (m Model) options() *script.Options {
	return &script.Options{
		NextBootOperatingSystem: radioValue(m.os, options.OperatingSystems()),
		NextWindowsBootDisplay:  radioValue(m.display, options.Displays()),
		SwitchDisplay:           m.canSwitch && m.switchDisplay,
		RebootAction:            radioValue(m.action, options.RebootActions()),
	}
}

func (m Model) View() string {
	if m.mode == Basic {
		return m.viewBasic()
	}
	return m.viewAdvanced()
}

func (m Model) viewBasic() string {
	var b strings.Builder
	for i, label := range m.labels {
		if i == m.cursor {
			b.WriteString(m.styles.focused.Render("> "+label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}
	b.WriteString("\n" + m.styles.help.Render(text.DialogBasicHelp) + "\n")
	return b.String()
}

func (m Model) viewAdvanced() string {
	var b strings.Builder
	m.writeGroup(&b, m.os.title, m.choiceLine(rowOS, m.os))
	m.writeGroup(&b, m.display.title, m.choiceLine(rowDisplay, m.display))
	action := m.choiceLine(rowAction, m.action)
	if m.canSwitch {
		box := "[ ] "
		if m.switchDisplay {
			box = "[x] "
		}
		action = m.marker(rowSwitch) + box + text.DialogSwitchBefore + "\n" + action
	}
	m.writeGroup(&b, m.action.title, action)
	b.WriteString(m.styles.help.Render(text.DialogAdvancedHelp) + "\n")
	return b.String()
}

func (m Model) writeGroup(b *strings.Builder, title, body string) {
	b.WriteString(m.styles.title.Render(title) + "\n")
	b.WriteString(body + "\n\n")
}

func (m Model) marker(r row) string {
	if m.row == r {
		return m.styles.focused.Render(">") + " "
	}
	return "  "
}

func (m Model) choiceLine(r row, group radio) string {
	choices := make([]string, len(group.labels))
	for i, label := range group.labels {
		if i == group.selected {
			choices[i] = m.styles.selected.Render("(•) " + label)
		} else {
			choices[i] = "( ) " + label
		}
	}
	return m.marker(r) + strings.Join(choices, "  ")
}

// Run shows the dialog on in/out until the user confirms or cancels.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (Outcome, bool, error) {
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return Outcome{}, false, fmt.Errorf("running dialog: %w", err)
	}
	outcome, ok := final.(Model).Outcome()
	return outcome, ok, nil
}
