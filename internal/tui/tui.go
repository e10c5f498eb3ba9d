package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/timer"
)

// RunLogin opens the interactive login form. Returns the session on
// success, nil when the user cancelled.
func RunLogin(ctx context.Context, login LoginFunc) (*models.Session, error) {
	p := tea.NewProgram(NewLoginModel(ctx, login))

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(LoginModel)
	if m.cancelled {
		return nil, nil
	}
	return m.session, nil
}

// RunWorkTimer opens the live timer for an active session. One ticker
// drives the view for the lifetime of the program and dies with it.
// Returns the closed session when the user stopped it, nil when they
// left it running.
func RunWorkTimer(ctx context.Context, session *models.WorkSession, stop StopFunc) (*models.WorkSession, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tk := timer.New()
	ticks := tk.Subscribe()
	go tk.Run(ctx)
	tk.SetActive(session)

	p := tea.NewProgram(NewWorkTimerModel(session, ticks, stop), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(WorkTimerModel)
	if m.err != nil {
		return nil, m.err
	}
	return m.stopped, nil
}
