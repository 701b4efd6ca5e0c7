package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/rakshak-ai/rakshak/pkg/domain/interfaces"
	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/service/genai"
	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
	"github.com/rakshak-ai/rakshak/pkg/service/notify"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

// TriageUseCase runs the triage pipeline: classify the query, then take
// exactly one of the emergency or specialist branches. A run always
// reaches a terminal phase; faults inside stages degrade per-stage
// instead of escaping the pipeline boundary.
type TriageUseCase struct {
	repo      interfaces.Repository
	genAI     genai.Service
	retriever *knowledge.Retriever
	notifier  notify.Service

	emergencyContact string
}

// NewTriageUseCase creates a new TriageUseCase instance
func NewTriageUseCase(repo interfaces.Repository, genAI genai.Service, retriever *knowledge.Retriever, notifier notify.Service, emergencyContact string) *TriageUseCase {
	return &TriageUseCase{
		repo:             repo,
		genAI:            genAI,
		retriever:        retriever,
		notifier:         notifier,
		emergencyContact: emergencyContact,
	}
}

// Run executes one pipeline run for the query. The returned result
// carries the decision, the terminal phase, and at most one of the
// emergency/specialist payloads. Run itself only fails on invalid input;
// stage faults are recorded on the result.
func (uc *TriageUseCase) Run(ctx context.Context, query *model.TriageQuery) (*model.TriageResult, error) {
	logger := logging.From(ctx)

	result := &model.TriageResult{
		RunID: uuid.NewString(),
		Query: query.Text,
		Phase: types.PhaseStart,
	}
	logger = logger.With("run_id", result.RunID)

	decision, errDetail := uc.classify(ctx, query.Text)
	result.Decision = decision
	result.ErrorDetail = errDetail
	result.Phase = types.PhaseClassified
	logger.Info("triage classified", "decision", decision, "error_detail", errDetail)

	switch decision {
	case types.DecisionEmergency:
		result.Phase = types.PhaseEmergency
		result.Emergency = uc.handleEmergency(ctx, query)

	case types.DecisionNonEmergency:
		result.Phase = types.PhaseSpecialist
		record, err := uc.handleSpecialist(ctx, query)
		if err != nil {
			result.ErrorDetail = err.Error()
			result.Phase = types.PhaseError
			return result, nil
		}
		result.Specialist = record

	default:
		// No branch for an unknown decision; the original error detail
		// stays on the result for the caller.
	}

	if result.Phase != types.PhaseError {
		result.Phase = types.PhaseDone
	}
	return result, nil
}
