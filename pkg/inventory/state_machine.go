package inventory

// UnitStatus is the lifecycle status of a blood inventory unit.
type UnitStatus string

const (
	StatusPendingApproval UnitStatus = "PendingApproval"
	StatusAvailable       UnitStatus = "Available"
	StatusReserved        UnitStatus = "Reserved"
	StatusUsed            UnitStatus = "Used"
	StatusExpired         UnitStatus = "Expired"
)

// legalTransitions is the single source of truth for the unit lifecycle.
// Nothing ever returns to PendingApproval, and Used/Expired have no outgoing
// edges at all.
var legalTransitions = map[UnitStatus][]UnitStatus{
	StatusPendingApproval: {StatusAvailable, StatusExpired},
	StatusAvailable:       {StatusReserved, StatusUsed, StatusExpired},
	StatusReserved:        {StatusAvailable, StatusExpired},
	StatusUsed:            {},
	StatusExpired:         {},
}

// CanTransition reports whether moving a unit from one status to another is
// legal. Every transition in the service goes through this check.
func CanTransition(from, to UnitStatus) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(status UnitStatus) bool {
	return len(legalTransitions[status]) == 0
}
