package workflow

// Status is one of the seven ordered stages an order passes through.
type Status string

const (
	StatusAcceptance  Status = "acceptance"
	StatusCompletion  Status = "completion"
	StatusTranslating Status = "translating"
	StatusEditing     Status = "editing"
	StatusOffice      Status = "office"
	StatusReady       Status = "ready"
	StatusArchived    Status = "archived"
)

// InitialStatus is assigned by the backend at order creation.
const InitialStatus = StatusAcceptance

// statusRanks fixes the forward sequence. Ranks are 1-based and strictly
// increasing; archived is terminal.
var statusRanks = map[Status]int{
	StatusAcceptance:  1,
	StatusCompletion:  2,
	StatusTranslating: 3,
	StatusEditing:     4,
	StatusOffice:      5,
	StatusReady:       6,
	StatusArchived:    7,
}

// Stages lists all stages in rank order.
var Stages = []Status{
	StatusAcceptance,
	StatusCompletion,
	StatusTranslating,
	StatusEditing,
	StatusOffice,
	StatusReady,
	StatusArchived,
}

// Rank returns the 1-based position of a stage, or 0 for an unknown status.
func Rank(s Status) int {
	return statusRanks[s]
}

func IsValidStatus(s Status) bool {
	_, ok := statusRanks[s]
	return ok
}

func IsTerminal(s Status) bool {
	return s == StatusArchived
}

// CanTransition reports whether staff may move an order from current to
// target. Any forward jump is allowed; backward moves are limited to exactly
// one stage, so a fast-tracked order can skip ahead but an undo can never
// roll back deep into the workflow.
func CanTransition(current, target Status) bool {
	if !IsValidStatus(current) || !IsValidStatus(target) {
		return false
	}
	return Rank(target) >= Rank(current)-1
}
