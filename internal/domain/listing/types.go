package listing

type Status string

const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusDeletePending Status = "delete_pending"
	// StatusRemoved is terminal; a removed listing is physically deleted
	// from the store, so the status never appears in persisted records.
	StatusRemoved Status = "removed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDeletePending, StatusRemoved:
		return true
	default:
		return false
	}
}

// transitions is the moderation state machine. Rejecting a delete request
// is the self-edge on delete_pending back to approved; hard delete is an
// administrative override that skips the table entirely.
var transitions = map[Status][]Status{
	StatusPending:       {StatusApproved, StatusRejected},
	StatusApproved:      {StatusDeletePending},
	StatusDeletePending: {StatusRemoved, StatusApproved},
	StatusRejected:      {},
	StatusRemoved:       {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
