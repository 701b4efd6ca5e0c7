package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/repository/memory"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
)

func TestSpecialistBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("missing identity fields fall back to placeholders", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify: "NO",
			specialist: `{
				"chief_complaint": "Knee pain",
				"reported_symptoms": ["knee pain"],
				"ai_analysis": "Likely strain",
				"recommended_specialty": "Orthopedics"
			}`,
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "my knee hurts when walking"})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Specialist).NotNil()

		gt.Value(t, result.Specialist.Patient.Name).Equal("Not provided")
		gt.Value(t, result.Specialist.CallID).Equal("NA")
		gt.Value(t, result.Specialist.Patient.Duration).Equal("N/A")
		gt.Value(t, result.Specialist.Patient.Date).Equal(time.Now().Format("2006-01-02"))
	})

	t.Run("fenced specialist output parses", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:   "NO",
			specialist: "```json\n" + validSpecialistJSON + "\n```",
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "headache"})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Specialist).NotNil()
		gt.Value(t, result.Specialist.RecommendedSpecialty).Equal("Neurology")
	})

	t.Run("oracle failure surfaces as specialist error", func(t *testing.T) {
		repo := memory.New()
		oracle := &stageOracle{
			classify:      "NO",
			specialistErr: errors.New("specialist oracle down"),
		}
		uc := usecase.New(repo, usecase.WithGenAI(oracle))

		result, err := uc.Triage.Run(ctx, &model.TriageQuery{Text: "stomach ache"})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Phase).Equal(types.PhaseError)
		gt.Value(t, result.Specialist).Nil()
		gt.String(t, result.ErrorDetail).Contains("specialist oracle failed")
	})
}
