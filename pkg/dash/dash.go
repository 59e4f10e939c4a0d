// Package dash is the interactive dashboard: phase bar, stat cards, live
// filters, and task detail, driven by the same filter engine as the static
// commands.
package dash

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/task"
	"tableflip.dev/cutover/pkg/timefmt"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeGoal
	modeDetail
	modeHelp
)

const allPhases = "All"

// phase item for the left list
type phaseItem struct {
	id    string
	label string
}

func (p phaseItem) Title() string       { return p.label }
func (p phaseItem) Description() string { return "" }
func (p phaseItem) FilterValue() string { return p.label }

// task item for the right list
type taskItem struct {
	t     task.Task
	today time.Time
}

func (it taskItem) Title() string {
	marker := " "
	if it.t.PastDue(it.today) {
		marker = "!"
	}
	desc := it.t.Description
	if desc == "" {
		desc = "(no desc)"
	}
	return fmt.Sprintf("%s %-10s %-4s %s", marker, it.t.ID, it.t.Status.Meta().Short, desc)
}
func (it taskItem) Description() string { return "" }
func (it taskItem) FilterValue() string { return it.t.ID + " " + it.t.Description }

// Model contains dashboard state. All derived views recompute from the
// immutable task list plus the current filter state.
type Model struct {
	tasks []task.Task
	today time.Time
	zone  timefmt.Zone

	mode  mode
	focus int // 0: phases, 1: tasks

	state plan.State
	res   plan.Result

	phaseList list.Model
	taskList  list.Model
	input     textinput.Model

	status string

	termWidth  int
	termHeight int
}

// New creates a dashboard over the loaded plan.
func New(tasks []task.Task, zone timefmt.Zone) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	phases := []list.Item{phaseItem{id: "", label: allPhases}}
	for _, p := range task.DefaultPhases() {
		phases = append(phases, phaseItem{id: p.ID, label: p.Label + " " + p.Focus})
	}
	phases = append(phases, phaseItem{id: task.OtherPhase, label: task.OtherPhase})

	l1 := list.New(phases, d, 30, 20)
	l1.Title = "Phases"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)
	l1.SetFilteringEnabled(false)

	l2 := list.New([]list.Item{}, d, 80, 20)
	l2.Title = "Tasks"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)
	l2.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 128
	ti.Prompt = ""

	m := Model{
		tasks:     tasks,
		today:     time.Now(),
		zone:      zone,
		phaseList: l1,
		taskList:  l2,
		input:     ti,
		focus:     1,
	}
	m.refresh()
	return m
}

func (m *Model) selectedPhase() string {
	sel := m.phaseList.SelectedItem()
	if sel == nil {
		return ""
	}
	p, _ := sel.(phaseItem)
	if p.label == allPhases {
		return ""
	}
	return p.id
}

func (m *Model) currentTask() *task.Task {
	sel := m.taskList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(taskItem)
	return &it.t
}

// refresh reruns the filter engine and rebuilds the task list items.
func (m *Model) refresh() {
	m.state.Phase = m.selectedPhase()
	m.res = plan.Apply(m.tasks, m.state, m.today)

	items := make([]list.Item, 0, len(m.res.Tasks))
	for _, t := range m.res.Tasks {
		items = append(items, taskItem{t: t, today: m.today})
	}
	m.taskList.SetItems(items)
	if m.res.GoalMissing {
		m.status = "ID not found: " + m.state.GoalID
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp, modeDetail:
			switch msg.String() {
			case "q", "esc", "enter", "?":
				m.mode = modeNormal
			}
		case modeSearch, modeGoal:
			switch msg.String() {
			case "enter":
				v := strings.TrimSpace(m.input.Value())
				if m.mode == modeSearch {
					m.state.Search = v
				} else {
					m.state.GoalID = v
					if v == "" {
						m.state.Mode = plan.ModeOff
					} else {
						m.state.Mode = plan.ModeGoal
					}
				}
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.refresh()
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "?":
				m.mode = modeHelp
			case "tab", "h", "left":
				m.focus = 1 - m.focus
			case "l", "right":
				m.focus = 1
			case "j", "down":
				if m.focus == 0 {
					m.phaseList.CursorDown()
					m.refresh()
				} else {
					m.taskList.CursorDown()
				}
			case "k", "up":
				if m.focus == 0 {
					m.phaseList.CursorUp()
					m.refresh()
				} else {
					m.taskList.CursorUp()
				}
			case "enter":
				if m.currentTask() != nil {
					m.mode = modeDetail
				}
			case "/":
				m.mode = modeSearch
				m.input.Placeholder = "Search"
				m.input.SetValue(m.state.Search)
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
			case "g":
				m.mode = modeGoal
				m.input.Placeholder = "Goal task id"
				m.input.SetValue(m.state.GoalID)
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
			case "d":
				m.state.HideDone = !m.state.HideDone
				m.refresh()
			case "s":
				m.state.Stat = nextStat(m.state.Stat)
				m.refresh()
			case "c":
				m.state = plan.State{}
				m.phaseList.Select(0)
				m.status = "Filters cleared"
				m.refresh()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

var statCycle = []plan.Stat{
	plan.StatNone, plan.StatPlanned, plan.StatWIP, plan.StatComplete, plan.StatPastDue, plan.StatImpact,
}

func nextStat(s plan.Stat) plan.Stat {
	for i, v := range statCycle {
		if v == s {
			return statCycle[(i+1)%len(statCycle)]
		}
	}
	return plan.StatNone
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 3
	if left < 24 {
		left = 24
	}
	if left > 44 {
		left = 44
	}
	right := m.termWidth - left - 4
	if right < 20 {
		right = 20
	}
	h := m.termHeight - 6
	if h < 5 {
		h = 5
	}
	m.phaseList.SetSize(left, h)
	m.taskList.SetSize(right, h)
}

func (m Model) statLine() string {
	s := plan.Tally(m.res.Base, m.today)
	parts := []string{
		fmt.Sprintf("Showing %d", s.Total),
		fmt.Sprintf("PLN %d", s.Planned),
		fmt.Sprintf("WIP %d", s.InProgress),
		fmt.Sprintf("DONE %d", s.Complete),
		fmt.Sprintf("PAST DUE %d", s.PastDue),
		fmt.Sprintf("US/CA %d", s.Impacted),
	}
	flags := make([]string, 0, 3)
	if m.state.HideDone {
		flags = append(flags, "hide-done")
	}
	if m.state.Stat != plan.StatNone {
		flags = append(flags, "stat:"+string(m.state.Stat))
	}
	if m.state.GoalID != "" {
		flags = append(flags, "goal:"+m.state.GoalID)
	}
	if m.state.Search != "" {
		flags = append(flags, "search:"+m.state.Search)
	}
	line := strings.Join(parts, "  │  ")
	if len(flags) > 0 {
		line += "   [" + strings.Join(flags, " ") + "]"
	}
	if m.status != "" {
		line += "   " + m.status
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(line)
}

func (m Model) detailView() string {
	t := m.currentTask()
	if t == nil {
		return ""
	}
	width := m.termWidth - 8
	if width < 40 {
		width = 40
	}

	lines := []string{
		fmt.Sprintf("%s  [%s] %s", t.ID, t.Status.Meta().Short, t.Status.Meta().Label),
		"",
		wordwrap.String(t.Description, width),
		"",
		fmt.Sprintf("Phase: %s    Workstream: %s    Application: %s", t.Phase, t.Workstream, t.Application),
		fmt.Sprintf("Responsible: %s    Executor: %s", t.Responsible, t.Executor),
		fmt.Sprintf("PING SME: %s    PING Support: %s    Infor SME: %s", t.PingSME, t.PingSupport, t.InforSME),
		fmt.Sprintf("Start: %s    End: %s", t.StartLabel(), t.EndLabel()),
		fmt.Sprintf("Est: %s → %s    Actual: %s → %s",
			timefmt.Format(t.EstStart, m.zone), timefmt.Format(t.EstEnd, m.zone),
			timefmt.Format(t.ActStart, m.zone), timefmt.Format(t.ActEnd, m.zone)),
	}
	if t.PastDue(m.today) {
		lines = append(lines, "", "PAST DUE")
	}
	if t.Notes != "" {
		lines = append(lines, "", wordwrap.String("Notes: "+t.Notes, width))
	}

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	return panel.Render(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	left := m.phaseList.View()
	right := m.taskList.View()
	gap := lipgloss.NewStyle().Padding(0, 1).Render

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	switch m.mode {
	case modeSearch:
		body += "\n\nSearch: " + m.input.View()
	case modeGoal:
		body += "\n\nGoal: " + m.input.View()
	case modeDetail:
		body += "\n\n" + m.detailView()
	case modeHelp:
		help := "Keys: ←/→ switch panes, ↑/↓ move, enter detail, / search, g goal, d hide done, s cycle stat filter, c clear, q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return body + "\n\n" + m.statLine()
}

// Run launches the dashboard.
func Run(tasks []task.Task, zone timefmt.Zone) error {
	p := tea.NewProgram(New(tasks, zone), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
