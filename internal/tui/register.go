package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/societyhub/societyhub/internal/session"
	"github.com/societyhub/societyhub/internal/validators"
	"github.com/societyhub/societyhub/models"
)

// registerModel is the signup form. Registration does not sign the user in:
// the new account waits for admin approval, so on success the UI returns to
// the login screen with a note saying exactly that.
type registerModel struct {
	ctx     context.Context
	session *session.Store

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel(ctx context.Context, sess *session.Store) registerModel {
	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 80
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40

	phone := textinput.New()
	phone.Placeholder = "phone, +91... (optional)"
	phone.CharLimit = 16
	phone.Width = 40

	password := textinput.New()
	password.Placeholder = "password, 8+ characters"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return registerModel{
		ctx:     ctx,
		session: sess,
		inputs:  []textinput.Model{name, email, phone, password},
	}
}

func (m registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	if result, ok := msg.(signupDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			form := validators.SignupForm{
				Name:     strings.TrimSpace(m.inputs[0].Value()),
				Email:    strings.TrimSpace(m.inputs[1].Value()),
				Phone:    strings.TrimSpace(m.inputs[2].Value()),
				Password: m.inputs[3].Value(),
			}
			if err := validators.ValidateStruct(form); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(form)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) View() string {
	labels := []string{"Name    ", "Email   ", "Phone   ", "Password"}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\nRegistering...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SOCIETYHUB │ REGISTER", strings.TrimRight(b.String(), "\n"),
		"enter: register │ tab: next field │ esc: back to sign in")
}

func (m registerModel) cmdSignup(form validators.SignupForm) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		err := sess.Signup(ctx, models.SignupRequest{
			Name:     form.Name,
			Email:    form.Email,
			Phone:    form.Phone,
			Password: form.Password,
		})
		return signupDoneMsg{err: err}
	}
}

func (m *registerModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
