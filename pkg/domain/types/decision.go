package types

// Decision represents the outcome of triage classification
type Decision string

const (
	DecisionEmergency    Decision = "emergency"
	DecisionNonEmergency Decision = "non_emergency"
	DecisionUnknown      Decision = "unknown"
)

// IsValid checks if the decision is valid
func (d Decision) IsValid() bool {
	switch d {
	case DecisionEmergency,
		DecisionNonEmergency,
		DecisionUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the decision
func (d Decision) String() string {
	return string(d)
}
