package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
)

type userLocationRepository struct {
	mu        sync.RWMutex
	locations map[string]*model.UserLocation
}

func newUserLocationRepository() *userLocationRepository {
	return &userLocationRepository{
		locations: make(map[string]*model.UserLocation),
	}
}

func copyUserLocation(loc *model.UserLocation) *model.UserLocation {
	copied := *loc
	return &copied
}

func (r *userLocationRepository) Upsert(ctx context.Context, loc *model.UserLocation) (*model.UserLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copyUserLocation(loc)
	r.locations[saved.UserID] = saved
	return copyUserLocation(saved), nil
}

func (r *userLocationRepository) Get(ctx context.Context, userID string) (*model.UserLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, exists := r.locations[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user location not found", goerr.V("user_id", userID))
	}

	return copyUserLocation(loc), nil
}
