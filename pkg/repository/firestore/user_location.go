package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/repository"
)

// userLocationDoc is the Firestore document representation of
// model.UserLocation
type userLocationDoc struct {
	UserID    string    `firestore:"user_id"`
	Latitude  float64   `firestore:"latitude"`
	Longitude float64   `firestore:"longitude"`
	Address   string    `firestore:"address"`
	Timestamp time.Time `firestore:"timestamp"`
}

type userLocationRepository struct {
	client *firestore.Client
}

func newUserLocationRepository(client *firestore.Client) *userLocationRepository {
	return &userLocationRepository{client: client}
}

func (r *userLocationRepository) Upsert(ctx context.Context, loc *model.UserLocation) (*model.UserLocation, error) {
	doc := &userLocationDoc{
		UserID:    loc.UserID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Address:   loc.Address,
		Timestamp: loc.Timestamp,
	}

	docRef := r.client.Collection(collectionUserLocations).Doc(loc.UserID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to upsert user location", goerr.V("user_id", loc.UserID))
	}

	return loc, nil
}

func (r *userLocationRepository) Get(ctx context.Context, userID string) (*model.UserLocation, error) {
	doc, err := r.client.Collection(collectionUserLocations).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "user location not found", goerr.V("user_id", userID))
		}
		return nil, goerr.Wrap(err, "failed to get user location", goerr.V("user_id", userID))
	}

	var d userLocationDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user location", goerr.V("user_id", userID))
	}

	return &model.UserLocation{
		UserID:    d.UserID,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
		Address:   d.Address,
		Timestamp: d.Timestamp,
	}, nil
}
