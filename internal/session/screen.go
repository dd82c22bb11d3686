package session

// Screen is the front end's current view
type Screen int

const (
	ScreenQuestion Screen = iota
	ScreenResult
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenQuestion:
		return "question"
	case ScreenResult:
		return "result"
	case ScreenHistory:
		return "history"
	default:
		return "unknown"
	}
}
