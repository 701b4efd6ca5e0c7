package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/types"
)

func TestCategory(t *testing.T) {
	gt.Bool(t, types.CategoryEmergency.IsValid()).True()
	gt.Bool(t, types.CategoryNonEmergency.IsValid()).True()
	gt.Bool(t, types.Category("urgent").IsValid()).False()

	parsed, err := types.ParseCategory("emergency")
	gt.NoError(t, err).Required()
	gt.Value(t, parsed).Equal(types.CategoryEmergency)

	_, err = types.ParseCategory("urgent")
	gt.Value(t, err).NotNil()
}

func TestDecision(t *testing.T) {
	gt.Bool(t, types.DecisionEmergency.IsValid()).True()
	gt.Bool(t, types.DecisionUnknown.IsValid()).True()
	gt.Bool(t, types.Decision("maybe").IsValid()).False()
}

func TestPhaseTerminal(t *testing.T) {
	gt.Bool(t, types.PhaseDone.Terminal()).True()
	gt.Bool(t, types.PhaseError.Terminal()).True()
	gt.Bool(t, types.PhaseStart.Terminal()).False()
	gt.Bool(t, types.PhaseClassified.Terminal()).False()
	gt.Bool(t, types.PhaseEmergency.Terminal()).False()
	gt.Bool(t, types.PhaseSpecialist.Terminal()).False()
}
