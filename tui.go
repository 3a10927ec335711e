// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/rostertree/commands"
)

const tuiHelp = `# Rostertree

Type a command and press **enter**. Output lands in the transcript on the
left, the records panel on the right follows the tree in key order.

| Command | Effect |
|---|---|
| ` + "`insert \"NAME\" KEY`" + ` | add a record, KEY is 8 digits |
| ` + "`remove KEY`" + ` | remove the record under KEY |
| ` + "`removeInorder N`" + ` | remove the N-th record in key order |
| ` + "`search KEY`" + ` | name stored under KEY |
| ` + "`search \"NAME\"`" + ` | every key stored under NAME |
| ` + "`printInorder`" + ` | names in key order |
| ` + "`printPreorder`" + ` | names in pre-order |
| ` + "`printPostorder`" + ` | names in post-order |
| ` + "`printLevelCount`" + ` | number of levels |

Press **?** on an empty prompt to close this panel.
`

// transcriptEntry is one command with the reply it produced
type transcriptEntry struct {
	command string
	output  string
}

// clipboardMsg reports the result of a copy
type clipboardMsg struct {
	err error
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input      textinput.Model
	transcript viewport.Model
	records    viewport.Model
	help       viewport.Model

	dispatcher *commands.Dispatcher
	entries    []transcriptEntry
	lastOutput string
	status     string
	showHelp   bool

	styles   *Styles
	renderer *glamour.TermRenderer

	width  int
	height int
}

// InitialModel creates the model over a dispatcher
func InitialModel(d *commands.Dispatcher) Model {
	ti := textinput.New()
	ti.Placeholder = `insert "Ada Lovelace" 18151210`
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	model := Model{
		input:      ti,
		transcript: viewport.New(0, 0),
		records:    viewport.New(0, 0),
		help:       viewport.New(0, 0),
		dispatcher: d,
		styles:     NewStyles(),
	}
	model.transcript.SetContent("No commands yet.")
	model.refreshRecords()
	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "ctrl+y":
			if m.lastOutput == "" {
				m.status = "nothing to copy"
				return m, nil
			}
			text := m.lastOutput
			return m, func() tea.Msg {
				return clipboardMsg{err: copyToClipboard(text)}
			}
		case "?":
			if m.input.Value() == "" {
				m.toggleHelp()
				return m, nil
			}
		case "pgup":
			m.transcript.LineUp(m.transcript.Height)
			return m, nil
		case "pgdown":
			m.transcript.LineDown(m.transcript.Height)
			return m, nil
		}

		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "copied last output to clipboard"
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// submit runs the prompt line through the dispatcher
func (m *Model) submit() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return
	}

	out := m.dispatcher.Execute(line)
	m.entries = append(m.entries, transcriptEntry{command: line, output: out})
	m.lastOutput = out
	m.status = ""
	m.input.Reset()

	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()
	m.refreshRecords()
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		return
	}
	if m.renderer == nil {
		style := "dark"
		if GetTerminalMode() == TerminalModeLight {
			style = "light"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(72),
		)
		if err != nil {
			m.help.SetContent(tuiHelp)
			return
		}
		m.renderer = r
	}
	if rendered, err := m.renderer.Render(tuiHelp); err == nil {
		m.help.SetContent(rendered)
	} else {
		m.help.SetContent(tuiHelp)
	}
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Command.Render("> " + e.command))
		b.WriteString("\n")
		switch e.output {
		case commands.Successful:
			b.WriteString(m.styles.SuccessMessage.Render(e.output))
		case commands.Unsuccessful:
			b.WriteString(m.styles.ErrorMessage.Render(e.output))
		default:
			b.WriteString(e.output)
		}
	}
	return b.String()
}

func (m *Model) refreshRecords() {
	tree := m.dispatcher.Tree()
	if tree.IsEmpty() {
		m.records.SetContent("(empty)")
		return
	}

	var b strings.Builder
	for _, r := range tree.InOrder() {
		fmt.Fprintf(&b, "%s  %s\n", r.Key, r.Name)
	}
	fmt.Fprintf(&b, "\n%d records, %d levels", tree.Count(), tree.LevelCount())
	m.records.SetContent(b.String())
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 4
	m.transcript.Width = leftWidth - 2
	m.transcript.Height = bodyHeight - 2
	m.records.Width = rightWidth - 2
	m.records.Height = bodyHeight + inputHeight
	m.help.Width = rightWidth - 2
	m.help.Height = bodyHeight + inputHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	bodyHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	transcriptBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 📜 Transcript "),
			m.transcript.View(),
		))

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.InputPrompt.Render("Command"),
			m.input.View(),
		))

	sideTitle, sideView := " 🌳 Records ", m.records.View()
	if m.showHelp {
		sideTitle, sideView = " 📖 Help ", m.help.View()
	}
	sideBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(bodyHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(sideTitle),
			sideView,
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, transcriptBox, inputBox),
		sideBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderFooter(),
	)
}

// renderFooter renders the key help line and the last status
func (m Model) renderFooter() string {
	keys := []string{"enter", "?", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run command", "toggle help", "copy output", "scroll", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer += "  " + m.styles.HelpDesc.Render(m.status)
	}
	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runTUI starts the Bubble Tea application
func runTUI(d *commands.Dispatcher) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(d),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
