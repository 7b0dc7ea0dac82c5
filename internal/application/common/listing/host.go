package listing

// Route names a screen the host can navigate to.
type Route string

const RouteLogin Route = "//Login/LoginPage"

type Navigator interface {
	GoTo(route Route)
}

// Alerter shows blocking dialogs. Confirm returns true when the user accepts.
type Alerter interface {
	Confirm(title, message string) bool
	Alert(title, message string)
}

// Host is the UI a controller drives: a GUI shell, a terminal, or a test double.
type Host interface {
	Navigator
	Alerter
}

// SessionClearer drops the stored credentials after a 401.
type SessionClearer interface {
	Clear() error
}
