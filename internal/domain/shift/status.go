package shift

// Status is the lifecycle state of a shift. Status only moves forward;
// cancellation is modeled as deletion, not a status value.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

var StatusValues = []string{
	string(StatusPlanned),
	string(StatusInProgress),
	string(StatusDone),
}

// transitions is the single source of truth for allowed status moves.
var transitions = map[Status]Status{
	StatusPlanned:    StatusInProgress,
	StatusInProgress: StatusDone,
}

// CanTransitionTo reports whether a shift may move from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := transitions[s]
	return ok && allowed == next
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	_, ok := transitions[s]
	return !ok
}

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusDone:
		return true
	}
	return false
}
