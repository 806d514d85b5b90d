package tui

import "github.com/societyhub/societyhub/models"

type restoreDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	principal models.Principal
	err       error
}

type signupDoneMsg struct {
	err error
}

// sessionExpiredMsg is injected from outside the program when the backend
// answers 401 on any call. The session store has already been invalidated by
// the time it arrives; the UI only has to land on the login screen.
type sessionExpiredMsg struct{}

type refreshDoneMsg struct {
	err error
}

type actionDoneMsg struct {
	status string
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
