package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/repository/memory"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
)

// oracleFunc adapts a function to genai.Service for testing
type oracleFunc func(ctx context.Context, prompt string) (string, error)

func (f oracleFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// stageOracle dispatches on the prompt stage so multi-stage runs can be
// scripted without counting calls
type stageOracle struct {
	classify   string
	extraction string
	specialist string

	classifyErr   error
	specialistErr error
}

func (o *stageOracle) Generate(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "ONLY respond with YES or NO"):
		return o.classify, o.classifyErr
	case strings.Contains(prompt, "patient_location"):
		return o.extraction, nil
	case strings.Contains(prompt, "recommended_specialty"):
		return o.specialist, o.specialistErr
	default:
		return "", errors.New("unexpected prompt")
	}
}

const validSpecialistJSON = `{
	"patient_name": "Asha",
	"call_id": "CALL_42",
	"chief_complaint": "Persistent headache",
	"reported_symptoms": ["headache", "light sensitivity"],
	"ai_analysis": "Symptoms consistent with tension headache",
	"recommended_specialty": "Neurology"
}`

func TestTriageRun(t *testing.T) {
	ctx := context.Background()

	t.Run("emergency decision takes only the emergency branch", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:   "YES",
			extraction: `{"call_id":"CALL_1","patient_name":"Asha","patient_location":"Sector 62"}`,
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "crushing chest pain radiating to my arm"})
		gt.NoError(t, err).Required()

		gt.Value(t, result.Decision).Equal(types.DecisionEmergency)
		gt.Value(t, result.Phase).Equal(types.PhaseDone)
		gt.Value(t, result.Emergency).NotNil()
		gt.Value(t, result.Specialist).Nil()

		gt.Value(t, result.Emergency.CallID).Equal("CALL_1")
		gt.Value(t, result.Emergency.PatientName).Equal("Asha")
		gt.Value(t, result.Emergency.PatientLocation).Equal("Sector 62")

		// The dispatch record must be stored
		stored, err := repo.Emergency().GetByCallID(ctx, "CALL_1")
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Status).Equal("dispatched")
		gt.Value(t, stored.Driver.Name).Equal("Ambulance Driver")
		gt.Value(t, stored.Patient.Location).Equal("Sector 62")
	})

	t.Run("non-emergency decision takes only the specialist branch", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:   "NO",
			specialist: validSpecialistJSON,
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "mild headache since yesterday"})
		gt.NoError(t, err).Required()

		gt.Value(t, result.Decision).Equal(types.DecisionNonEmergency)
		gt.Value(t, result.Phase).Equal(types.PhaseDone)
		gt.Value(t, result.Emergency).Nil()
		gt.Value(t, result.Specialist).NotNil()

		gt.Value(t, result.Specialist.RecommendedSpecialty).Equal("Neurology")
		gt.Array(t, result.Specialist.ReportedSymptoms).Length(2)

		// The referral must be stored
		stored, err := repo.MedicalRecord().GetByCallID(ctx, "CALL_42")
		gt.NoError(t, err).Required()
		gt.Value(t, stored.ChiefComplaint).Equal("Persistent headache")
	})

	t.Run("lowercase yes still classifies as emergency", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:   " yes \n",
			extraction: `{"call_id":"CALL_2","patient_name":"","patient_location":""}`,
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "chest pressure with sweating"})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Decision).Equal(types.DecisionEmergency)
	})

	t.Run("anything but YES classifies as non-emergency", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:   "YES, definitely an emergency",
			specialist: validSpecialistJSON,
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "itchy rash on my arm"})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Decision).Equal(types.DecisionNonEmergency)
		gt.Value(t, result.Emergency).Nil()
	})

	t.Run("classifier failure never yields emergency", func(t *testing.T) {
		repo := memory.New()
		oracle := oracleFunc(func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("oracle unavailable")
		})
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "crushing chest pain"})
		gt.NoError(t, err).Required()

		gt.Value(t, result.Decision).Equal(types.DecisionNonEmergency)
		gt.Value(t, result.Emergency).Nil()
		gt.String(t, result.ErrorDetail).Contains("oracle unavailable")
	})

	t.Run("specialist failure ends in error phase without a record", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:   "NO",
			specialist: "this is not JSON",
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "sore throat"})
		gt.NoError(t, err).Required()

		gt.Value(t, result.Phase).Equal(types.PhaseError)
		gt.Value(t, result.Specialist).Nil()
		gt.Value(t, result.Emergency).Nil()
		gt.Bool(t, result.ErrorDetail != "").True()
	})

	t.Run("at most one branch payload over many runs", func(t *testing.T) {
		repo := memory.New()
		decisions := []string{"YES", "NO"}
		oracle := &stageOracle{
			extraction: `{"call_id":"CALL_N","patient_name":"P","patient_location":"L"}`,
			specialist: validSpecialistJSON,
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		for i := 0; i < 1000; i++ {
			oracle.classify = decisions[i%2]

			result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "query"})
			gt.NoError(t, err).Required()

			both := result.Emergency != nil && result.Specialist != nil
			gt.Bool(t, both).False()
			gt.Bool(t, result.Phase.Terminal()).True()
		}
	})
}
