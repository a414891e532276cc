package guard

import "staywise/models"

// Decision is what a protected view must do for a given session state.
type Decision int

const (
	// ShowPlaceholder blocks rendering while the session is still resolving.
	ShowPlaceholder Decision = iota
	// RedirectToLogin sends an unauthenticated user to the login view.
	RedirectToLogin
	// RenderContent allows the protected view to render.
	RenderContent
)

func (d Decision) String() string {
	switch d {
	case ShowPlaceholder:
		return "placeholder"
	case RedirectToLogin:
		return "redirect"
	case RenderContent:
		return "render"
	default:
		return "unknown"
	}
}

// Decide maps a session state to a guard decision. IsLoading is checked
// strictly before IsAuthenticated so protected content can never flash
// before authentication is confirmed.
func Decide(session models.Session) Decision {
	if session.IsLoading {
		return ShowPlaceholder
	}
	if !session.IsAuthenticated {
		return RedirectToLogin
	}
	return RenderContent
}
