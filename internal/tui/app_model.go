package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/societyhub/societyhub/internal/guard"
	"github.com/societyhub/societyhub/internal/service"
	"github.com/societyhub/societyhub/internal/session"
	"github.com/societyhub/societyhub/models"
)

type screen int

const (
	screenLoading screen = iota
	screenLogin
	screenRegister
	screenMenu
	screenList
	screenForm
	screenAccount
)

// appModel is the single Bubble Tea root. It owns screen routing; every
// navigation goes through the route guard, so what a user can open is
// decided in exactly one place.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *session.Store

	currentScreen screen
	login         loginModel
	register      registerModel
	menu          menuModel
	list          listModel
	form          formModel

	// formReturn remembers which list opened the current form, so a
	// successful submit can land back on it. false means the menu did.
	formReturn    resource
	hasFormReturn bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, sess *session.Store) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		session:       sess,
		currentScreen: screenLoading,
		login:         newLoginModel(ctx, sess),
		register:      newRegisterModel(ctx, sess),
	}
}

func (m appModel) principal() *models.Principal {
	p, ok := m.session.Principal()
	if !ok {
		return nil
	}
	return &p
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdRestore(), m.login.Init())
}

func (m appModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	sess := m.session
	return func() tea.Msg {
		return restoreDoneMsg{err: sess.Restore(ctx)}
	}
}

func (m appModel) cmdRefreshAll() tea.Cmd {
	ctx := m.ctx
	job := m.services.RefreshJob
	return func() tea.Msg {
		return refreshDoneMsg{err: job.RefreshAll(ctx)}
	}
}

func (m appModel) cmdRefreshResource(res resource) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		var err error
		switch res {
		case resFlats:
			err = services.Flats.Refresh(ctx)
		case resResidents:
			err = services.Residents.Refresh(ctx)
		case resRequests:
			err = services.AccessRequests.Refresh(ctx)
		case resComplaints:
			err = services.Complaints.Refresh(ctx)
		case resMaintenance:
			err = services.Maintenance.Refresh(ctx)
		case resNotices:
			err = services.Notices.Refresh(ctx)
		case resVisitors:
			err = services.Visitors.Refresh(ctx)
		}
		return refreshDoneMsg{err: err}
	}
}

// gotoPath maps a guard route onto a screen. List and form screens are not
// addressed here; they are opened from the menu, which has already passed
// its entry through the guard.
func (m appModel) gotoPath(path string) appModel {
	switch path {
	case guard.LoginPath:
		m.currentScreen = screenLogin
	case guard.SignupPath:
		m.currentScreen = screenRegister
	case guard.AccountPath:
		m.currentScreen = screenAccount
	default:
		// every dashboard variant lands on the role-scoped menu
		m.menu = newMenuModel(m.principal())
		m.currentScreen = screenMenu
	}
	return m
}

func (m appModel) openEntry(entry menuEntry) (appModel, tea.Cmd) {
	decision := guard.Evaluate(m.principal(), entry.path)
	if !decision.Allowed {
		return m.gotoPath(decision.RedirectTo), nil
	}

	switch entry.kind {
	case entryList:
		m.list = newListModel(m.ctx, m.services, m.principal(), entry.res)
		m.currentScreen = screenList
		return m, m.cmdRefreshResource(entry.res)
	case entryForm:
		m.form = newFormModel(m.ctx, m.services, entry.form)
		m.hasFormReturn = false
		m.currentScreen = screenForm
		return m, nil
	case entryAccount:
		m.currentScreen = screenAccount
	}
	return m, nil
}

// formForList maps the list's "new" key to the create form the current role
// may use on that resource.
func (m appModel) formForList() (formKind, bool) {
	admin := m.list.isAdmin()
	switch m.list.res {
	case resFlats:
		if admin {
			return formFlat, true
		}
	case resComplaints:
		if !admin {
			return formComplaint, true
		}
	case resNotices:
		if admin {
			return formNotice, true
		}
	case resMaintenance:
		if admin {
			return formMaintenance, true
		}
	case resVisitors:
		return formVisitor, true
	}
	return 0, false
}

func (m appModel) logout() (appModel, tea.Cmd) {
	m.session.Logout()
	m.login = newLoginModel(m.ctx, m.session)
	m.login.status = "Signed out."
	m.register = newRegisterModel(m.ctx, m.session)
	m.currentScreen = screenLogin
	return m, m.login.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restoreDoneMsg:
		if p := m.principal(); msg.err == nil && p != nil {
			next := m.gotoPath(guard.HomePath(p))
			return next, next.cmdRefreshAll()
		}
		m.currentScreen = screenLogin
		return m, nil

	case sessionExpiredMsg:
		// the session store has already been invalidated by the 401 hook
		m.login = newLoginModel(m.ctx, m.session)
		m.login.errMsg = "Session expired, please sign in again."
		m.currentScreen = screenLogin
		return m, m.login.Init()

	case loginDoneMsg:
		if msg.err != nil {
			m.login, _ = m.login.Update(msg)
			return m, nil
		}
		p := msg.principal
		next := m.gotoPath(guard.HomePath(&p))
		return next, next.cmdRefreshAll()

	case signupDoneMsg:
		if msg.err != nil {
			m.register, _ = m.register.Update(msg)
			return m, nil
		}
		m.login = newLoginModel(m.ctx, m.session)
		m.login.status = "Registered. Sign in once an admin approves your account."
		m.currentScreen = screenLogin
		return m, m.login.Init()

	case actionDoneMsg:
		if m.currentScreen == screenForm {
			if msg.err != nil {
				m.form, _ = m.form.Update(msg)
				return m, nil
			}
			if m.hasFormReturn {
				res := m.formReturn
				m.list = newListModel(m.ctx, m.services, m.principal(), res)
				m.list.status = msg.status
				m.currentScreen = screenList
				return m, m.cmdRefreshResource(res)
			}
			m.menu = newMenuModel(m.principal())
			m.menu.status = msg.status
			m.currentScreen = screenMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case refreshDoneMsg, copiedMsg, clearStatusMsg:
		if m.currentScreen == screenList {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	switch m.currentScreen {
	case screenLogin:
		if msg.String() == "esc" {
			m.currentScreen = screenRegister
			return m, m.register.Init()
		}
	case screenRegister:
		if msg.String() == "esc" {
			m.currentScreen = screenLogin
			return m, m.login.Init()
		}
	case screenMenu:
		switch msg.String() {
		case "enter":
			if entry, ok := m.menu.selected(); ok {
				return m.openEntry(entry)
			}
			return m, nil
		case "r":
			return m, m.cmdRefreshAll()
		case "L":
			return m.logout()
		}
	case screenList:
		switch msg.String() {
		case "esc":
			return m.gotoPath(guard.DashboardPath), nil
		case "r":
			return m, m.cmdRefreshResource(m.list.res)
		case "n":
			if kind, ok := m.formForList(); ok {
				m.formReturn = m.list.res
				m.hasFormReturn = true
				m.form = newFormModel(m.ctx, m.services, kind)
				m.currentScreen = screenForm
			}
			return m, nil
		case "L":
			return m.logout()
		}
	case screenForm:
		if msg.String() == "esc" {
			if m.hasFormReturn {
				m.list = newListModel(m.ctx, m.services, m.principal(), m.formReturn)
				m.currentScreen = screenList
			} else {
				m.currentScreen = screenMenu
			}
			return m, nil
		}
	case screenAccount:
		switch msg.String() {
		case "esc":
			return m.gotoPath(guard.DashboardPath), nil
		case "L":
			return m.logout()
		}
	}

	return m.forward(msg)
}

// forward hands a message to the model behind the current screen.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
	case screenRegister:
		m.register, cmd = m.register.Update(msg)
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenList:
		m.list, cmd = m.list.Update(msg)
	case screenForm:
		m.form, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	switch m.currentScreen {
	case screenLoading:
		return appStyle.Render("Restoring session...")
	case screenLogin:
		return m.login.View()
	case screenRegister:
		return m.register.View()
	case screenMenu:
		return m.menu.View()
	case screenList:
		return m.list.View()
	case screenForm:
		return m.form.View()
	case screenAccount:
		return accountModel{principal: m.principal()}.View()
	default:
		return ""
	}
}
