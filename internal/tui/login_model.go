package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lancerhq/lancer/internal/models"
)

// LoginFunc performs the actual authentication; the form only collects
// credentials and shows the outcome.
type LoginFunc func(ctx context.Context, creds models.Credentials) (*models.Session, error)

const (
	fieldEmail = iota
	fieldPassword
)

// LoginModel is the interactive login form.
type LoginModel struct {
	width  int
	height int

	inputs  []textinput.Model
	focused int

	ctx       context.Context
	login     LoginFunc
	loggingIn bool
	errMsg    string

	session   *models.Session
	cancelled bool
}

// loginResultMsg carries the login outcome back into the update loop.
type loginResultMsg struct {
	session *models.Session
	err     error
}

// NewLoginModel builds the form with the email field focused.
func NewLoginModel(ctx context.Context, login LoginFunc) LoginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    > "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		inputs: []textinput.Model{email, password},
		ctx:    ctx,
		login:  login,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.loggingIn = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.session = msg.session
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.loggingIn {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			m.focused = (m.focused + 1) % len(m.inputs)
			for i := range m.inputs {
				if i == m.focused {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil

		case "enter":
			if m.focused == fieldEmail {
				m.focused = fieldPassword
				m.inputs[fieldEmail].Blur()
				m.inputs[fieldPassword].Focus()
				return m, nil
			}
			creds := models.Credentials{
				Email:    m.inputs[fieldEmail].Value(),
				Password: m.inputs[fieldPassword].Value(),
			}
			if creds.Email == "" || creds.Password == "" {
				m.errMsg = "Email and password are both required"
				return m, nil
			}
			m.loggingIn = true
			m.errMsg = ""
			ctx, login := m.ctx, m.login
			return m, func() tea.Msg {
				sess, err := login(ctx, creds)
				return loginResultMsg{session: sess, err: err}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m LoginModel) View() string {
	width := m.width
	if width == 0 {
		width = 60
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("Sign in to the marketplace")

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.inputs[fieldEmail].View(),
		m.inputs[fieldPassword].View(),
	)

	var footer string
	switch {
	case m.loggingIn:
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Render("Signing in...")
	case m.errMsg != "":
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("✗ " + m.errMsg)
	default:
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true).
			Render("enter submit · tab switch field · esc cancel")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", form, "", footer))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
}
