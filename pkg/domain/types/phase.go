package types

// Phase represents the state of a triage pipeline run. Each run moves
// from PhaseStart to exactly one terminal phase (PhaseDone or PhaseError).
type Phase string

const (
	PhaseStart      Phase = "start"
	PhaseClassified Phase = "classified"
	PhaseEmergency  Phase = "emergency"
	PhaseSpecialist Phase = "specialist"
	PhaseDone       Phase = "done"
	PhaseError      Phase = "error"
)

// Terminal reports whether the phase ends a pipeline run
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseError
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}
