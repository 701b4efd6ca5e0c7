package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/rakshak-ai/rakshak/pkg/domain/interfaces"
	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
)

// RecordUseCase exposes the record store to external callers: emergency
// records, medical records, and user locations.
type RecordUseCase struct {
	repo interfaces.Repository
}

// NewRecordUseCase creates a new RecordUseCase instance
func NewRecordUseCase(repo interfaces.Repository) *RecordUseCase {
	return &RecordUseCase{repo: repo}
}

// SaveUserLocation upserts the user's last known location, stamping the
// current time when none is provided
func (uc *RecordUseCase) SaveUserLocation(ctx context.Context, loc *model.UserLocation) (*model.UserLocation, error) {
	if loc.UserID == "" {
		return nil, goerr.New("user_id is required")
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now().UTC()
	}

	saved, err := uc.repo.UserLocation().Upsert(ctx, loc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save user location", goerr.V("user_id", loc.UserID))
	}
	return saved, nil
}

// GetUserLocation returns the user's last known location
func (uc *RecordUseCase) GetUserLocation(ctx context.Context, userID string) (*model.UserLocation, error) {
	loc, err := uc.repo.UserLocation().Get(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user location", goerr.V("user_id", userID))
	}
	return loc, nil
}

// CreateEmergency stores an emergency dispatch record
func (uc *RecordUseCase) CreateEmergency(ctx context.Context, rec *model.EmergencyRecord) (*model.EmergencyRecord, error) {
	if rec.CallID == "" {
		return nil, goerr.New("call_id is required")
	}

	created, err := uc.repo.Emergency().Create(ctx, rec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create emergency record", goerr.V("call_id", rec.CallID))
	}
	return created, nil
}

// CreateMedicalRecord stores a specialist referral record
func (uc *RecordUseCase) CreateMedicalRecord(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	if rec.CallID == "" {
		return nil, goerr.New("call_id is required")
	}

	created, err := uc.repo.MedicalRecord().Create(ctx, rec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create medical record", goerr.V("call_id", rec.CallID))
	}
	return created, nil
}

// StatusReport aggregates everything stored under one call ID
type StatusReport struct {
	CallID        string                 `json:"call_id"`
	Emergency     *model.EmergencyRecord `json:"emergency_details,omitempty"`
	MedicalRecord *model.MedicalRecord   `json:"medical_record_details,omitempty"`
}

// GetStatus looks up both collections for the call ID concurrently.
// Returns ErrNoRecords when neither holds a record.
func (uc *RecordUseCase) GetStatus(ctx context.Context, callID string) (*StatusReport, error) {
	report := &StatusReport{CallID: callID}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		rec, err := uc.repo.Emergency().GetByCallID(ctx, callID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return goerr.Wrap(err, "failed to get emergency record")
		}
		report.Emergency = rec
		return nil
	})
	eg.Go(func() error {
		rec, err := uc.repo.MedicalRecord().GetByCallID(ctx, callID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return goerr.Wrap(err, "failed to get medical record")
		}
		report.MedicalRecord = rec
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to get status", goerr.V("call_id", callID))
	}

	if report.Emergency == nil && report.MedicalRecord == nil {
		return nil, goerr.Wrap(ErrNoRecords, "status lookup", goerr.V("call_id", callID))
	}

	return report, nil
}
