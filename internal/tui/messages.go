package tui

import (
	"github.com/MKhiriev/go-backend-scope/models"
)

// Page names registered with the [Router].
const (
	pageMenu   = "menu"
	pageStatus = "status"
	pageSignIn = "signin"
	pageTables = "tables"
)

// NavigateTo asks the [Router] to switch to Page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignInResult is produced by the sign-in command.
type SignInResult struct {
	Session models.Session
	Err     error
}

// SignInNotice is delivered to the menu after a successful sign-in.
type SignInNotice struct {
	Email string
}

type healthResultMsg struct {
	health models.Health
	err    error
}

type signOutResultMsg struct {
	err error
}

type selectResultMsg struct {
	rows []models.Row
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
