package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
)

type emergencyRepository struct {
	mu      sync.RWMutex
	records map[string]*model.EmergencyRecord
}

func newEmergencyRepository() *emergencyRepository {
	return &emergencyRepository{
		records: make(map[string]*model.EmergencyRecord),
	}
}

func copyEmergency(rec *model.EmergencyRecord) *model.EmergencyRecord {
	copied := *rec
	return &copied
}

func (r *emergencyRepository) Create(ctx context.Context, rec *model.EmergencyRecord) (*model.EmergencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyEmergency(rec)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.records[created.CallID] = created
	return copyEmergency(created), nil
}

func (r *emergencyRepository) GetByCallID(ctx context.Context, callID string) (*model.EmergencyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[callID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "emergency record not found", goerr.V("call_id", callID))
	}

	return copyEmergency(rec), nil
}
