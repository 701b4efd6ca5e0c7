package usecase

import (
	"github.com/rakshak-ai/rakshak/pkg/domain/interfaces"
	"github.com/rakshak-ai/rakshak/pkg/service/genai"
	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
	"github.com/rakshak-ai/rakshak/pkg/service/notify"
)

type UseCases struct {
	repo      interfaces.Repository
	genAI     genai.Service
	notifier  notify.Service
	retriever *knowledge.Retriever

	emergencyContact string

	Triage *TriageUseCase
	Record *RecordUseCase
}

type Option func(*UseCases)

// WithGenAI sets the generation oracle. The triage pipeline is only
// available when one is configured.
func WithGenAI(svc genai.Service) Option {
	return func(uc *UseCases) {
		uc.genAI = svc
	}
}

// WithNotifier sets the outbound alert channel. Without one, emergency
// dispatches use simulated call identifiers.
func WithNotifier(svc notify.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = svc
	}
}

// WithKnowledge sets the knowledge index used for retrieval-augmented
// context. store may be nil; retrieval then degrades to the sentinel.
func WithKnowledge(store *knowledge.Store) Option {
	return func(uc *UseCases) {
		uc.retriever = knowledge.NewRetriever(store)
	}
}

// WithEmergencyContact sets the destination for emergency alerts
func WithEmergencyContact(destination string) Option {
	return func(uc *UseCases) {
		uc.emergencyContact = destination
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.retriever == nil {
		uc.retriever = knowledge.NewRetriever(nil)
	}

	uc.Record = NewRecordUseCase(repo)
	if uc.genAI != nil {
		uc.Triage = NewTriageUseCase(repo, uc.genAI, uc.retriever, uc.notifier, uc.emergencyContact)
	}

	return uc
}
