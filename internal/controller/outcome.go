package controller

// Outcome tags how a controller invocation ended
type Outcome int

const (
	// OutcomeRendered means the page should be shown with the view data
	OutcomeRendered Outcome = iota
	// OutcomeFailed means the page should be shown with an error alert
	OutcomeFailed
	// OutcomeLogin means the user must be sent to the login view
	OutcomeLogin
	// OutcomeListing means the user must be sent to the listing view
	OutcomeListing
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRendered:
		return "rendered"
	case OutcomeFailed:
		return "failed"
	case OutcomeLogin:
		return "login"
	case OutcomeListing:
		return "listing"
	default:
		return "unknown"
	}
}
