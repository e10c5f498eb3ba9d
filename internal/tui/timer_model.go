package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/timer"
)

// StopFunc ends the active session through the API and returns the
// closed session.
type StopFunc func() (*models.WorkSession, error)

// WorkTimerModel is the live timer view for the active work session.
// The display string arrives from the shared ticker; the model never
// computes elapsed time itself.
type WorkTimerModel struct {
	width  int
	height int

	session *models.WorkSession
	display string
	ticks   <-chan string
	stop    StopFunc

	stopping bool
	exiting  bool
	stopped  *models.WorkSession
	err      error
}

// tickDisplayMsg carries the next formatted elapsed time.
type tickDisplayMsg string

// stopResultMsg carries the outcome of the stop call.
type stopResultMsg struct {
	session *models.WorkSession
	err     error
}

// NewWorkTimerModel builds the timer view over a ticker subscription.
func NewWorkTimerModel(session *models.WorkSession, ticks <-chan string, stop StopFunc) WorkTimerModel {
	return WorkTimerModel{
		session: session,
		display: timer.Zero,
		ticks:   ticks,
		stop:    stop,
	}
}

func (m WorkTimerModel) Init() tea.Cmd {
	return m.listen()
}

// listen blocks on the shared ticker until the next display update.
func (m WorkTimerModel) listen() tea.Cmd {
	return func() tea.Msg {
		d, ok := <-m.ticks
		if !ok {
			return nil
		}
		return tickDisplayMsg(d)
	}
}

func (m WorkTimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickDisplayMsg:
		m.display = string(msg)
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, m.listen()

	case stopResultMsg:
		m.stopped = msg.session
		m.err = msg.err
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			if m.stopping {
				return m, nil
			}
			m.stopping = true
			stop := m.stop
			return m, func() tea.Msg {
				ws, err := stop()
				return stopResultMsg{session: ws, err: err}
			}
		case "ctrl+c", "esc", "q":
			// Leave the session running server-side.
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m WorkTimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("⏱  TRACKING WORK  ⏱")

	project := m.session.ProjectTitle
	if project == "" {
		project = fmt.Sprintf("project #%d", m.session.ProjectID)
	}
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(project)

	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 6).
		Render(m.display)
	clock = lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width).Render(clock)

	started := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("Started at %s", m.session.StartTime.Format("15:04:05")))

	status := ""
	if m.stopping {
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Align(lipgloss.Center).
			Width(m.width).
			Render("Stopping session...")
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("s stop session · esc/q leave it running · ctrl+c force quit")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", title, "", clock, "", started, status)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}
