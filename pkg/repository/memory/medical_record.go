package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
)

type medicalRecordRepository struct {
	mu      sync.RWMutex
	records map[string]*model.MedicalRecord
}

func newMedicalRecordRepository() *medicalRecordRepository {
	return &medicalRecordRepository{
		records: make(map[string]*model.MedicalRecord),
	}
}

func copyMedicalRecord(rec *model.MedicalRecord) *model.MedicalRecord {
	copied := *rec
	if rec.ReportedSymptoms != nil {
		copied.ReportedSymptoms = make([]string, len(rec.ReportedSymptoms))
		copy(copied.ReportedSymptoms, rec.ReportedSymptoms)
	}
	return &copied
}

func (r *medicalRecordRepository) Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyMedicalRecord(rec)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.records[created.CallID] = created
	return copyMedicalRecord(created), nil
}

func (r *medicalRecordRepository) GetByCallID(ctx context.Context, callID string) (*model.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[callID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "medical record not found", goerr.V("call_id", callID))
	}

	return copyMedicalRecord(rec), nil
}
