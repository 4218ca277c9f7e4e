package mongodb

import (
	"context"
	"time"

	"github.com/krancour/courtside/apiserver/internal/authx"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const createIndexTimeout = 5 * time.Second

// sessionsStore is a MongoDB-based implementation of the authx.SessionsStore
// interface.
type sessionsStore struct {
	collection *mongo.Collection
}

// NewSessionsStore returns a MongoDB-based implementation of the
// authx.SessionsStore interface.
func NewSessionsStore(database *mongo.Database) (authx.SessionsStore, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()
	unique := true
	sparse := true
	var expireAfterSeconds int32
	collection := database.Collection("sessions")
	if _, err := collection.Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{
				Keys: bson.M{
					"id": 1,
				},
				Options: &options.IndexOptions{
					Unique: &unique,
				},
			},
			// Fast lookup for completing OIDC auth. Authenticated sessions no
			// longer carry a hashed state, hence sparse.
			{
				Keys: bson.M{
					"hashedOAuth2State": 1,
				},
				Options: &options.IndexOptions{
					Unique: &unique,
					Sparse: &sparse,
				},
			},
			// MongoDB removes sessions once they expire
			{
				Keys: bson.M{
					"expires": 1,
				},
				Options: &options.IndexOptions{
					ExpireAfterSeconds: &expireAfterSeconds,
				},
			},
		},
	); err != nil {
		return nil, errors.Wrap(err, "error adding indexes to sessions collection")
	}
	return &sessionsStore{
		collection: collection,
	}, nil
}

func (s *sessionsStore) Create(ctx context.Context, session authx.Session) error {
	if _, err := s.collection.InsertOne(ctx, session); err != nil {
		return errors.Wrapf(err, "error inserting new session %q", session.ID)
	}
	return nil
}

func (s *sessionsStore) GetByHashedOAuth2State(
	ctx context.Context,
	hashedOAuth2State string,
) (authx.Session, error) {
	return s.findOne(ctx, bson.M{"hashedOAuth2State": hashedOAuth2State}, "")
}

func (s *sessionsStore) Get(
	ctx context.Context,
	id string,
) (authx.Session, error) {
	return s.findOne(ctx, bson.M{"id": id}, id)
}

func (s *sessionsStore) findOne(
	ctx context.Context,
	criteria bson.M,
	id string,
) (authx.Session, error) {
	session := authx.Session{}
	res := s.collection.FindOne(ctx, criteria)
	if res.Err() == mongo.ErrNoDocuments {
		return session, &sdk.ErrNotFound{
			Type: "Session",
			ID:   id,
		}
	}
	if res.Err() != nil {
		return session, errors.Wrap(res.Err(), "error finding session")
	}
	if err := res.Decode(&session); err != nil {
		return session, errors.Wrap(err, "error decoding session")
	}
	return session, nil
}

func (s *sessionsStore) Update(ctx context.Context, session authx.Session) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"id": session.ID}, session)
	if err != nil {
		return errors.Wrapf(err, "error updating session %q", session.ID)
	}
	if res.MatchedCount == 0 {
		return &sdk.ErrNotFound{
			Type: "Session",
			ID:   session.ID,
		}
	}
	return nil
}

func (s *sessionsStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting session %q", id)
	}
	if res.DeletedCount == 0 {
		return &sdk.ErrNotFound{
			Type: "Session",
			ID:   id,
		}
	}
	return nil
}
