package services

// OutcomeKind is the closed set of terminal states a command request
// can reach. Callers branch on it exhaustively; there is no fourth
// case.
type OutcomeKind int

const (
	KindSuccess OutcomeKind = iota
	KindRejected
	KindFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindRejected:
		return "rejected"
	default:
		return "failed"
	}
}

// Outcome is what the core hands back to the transport layer: a kind
// plus presentation-ready header and body text. Store-internal detail
// never appears here.
type Outcome struct {
	Kind   OutcomeKind
	Header string
	Body   string
}
