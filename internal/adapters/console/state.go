package console

// State はメニューループの状態です。
type State int

const (
	StateAwaitingChoice State = iota
	StateEnteringID
	StateEnteringName
	StateEnteringRate
	// StateEnteringCount は時給制と契約制のみで使われます。
	StateEnteringCount
	StateRecordCommitted
	StateShowingReport
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateEnteringID:
		return "entering_id"
	case StateEnteringName:
		return "entering_name"
	case StateEnteringRate:
		return "entering_rate"
	case StateEnteringCount:
		return "entering_count"
	case StateRecordCommitted:
		return "record_committed"
	case StateShowingReport:
		return "showing_report"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
