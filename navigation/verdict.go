package navigation

// Action is the session-level outcome of classifying one navigation event.
// Actions drive side effects only; the browser surface is never told to
// block a navigation.
type Action int

const (
	// ActionAllow lets the navigation proceed with no session effect.
	ActionAllow Action = iota

	// ActionIgnore is a non-matching ServerRedirect; no session effect.
	ActionIgnore

	// ActionCancelSession resets any stored session.
	ActionCancelSession

	// ActionCompleteSession persists the session carried in the verdict.
	ActionCompleteSession
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionIgnore:
		return "ignore"
	case ActionCancelSession:
		return "cancel_session"
	case ActionCompleteSession:
		return "complete_session"
	}
	return "unknown"
}

// Verdict is the classification result for one event. UserID and
// AccessToken are set only for ActionCompleteSession.
type Verdict struct {
	Action      Action
	UserID      string
	AccessToken string
}

var (
	allowVerdict  = Verdict{Action: ActionAllow}
	ignoreVerdict = Verdict{Action: ActionIgnore}
	cancelVerdict = Verdict{Action: ActionCancelSession}
)

func completeVerdict(userID, accessToken string) Verdict {
	return Verdict{Action: ActionCompleteSession, UserID: userID, AccessToken: accessToken}
}
