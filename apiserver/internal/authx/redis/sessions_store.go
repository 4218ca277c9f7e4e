package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/krancour/courtside/apiserver/internal/authx"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

// sessionsStore is a Redis-based implementation of the authx.SessionsStore
// interface. Each session is stored as a JSON string that expires along with
// the session. Sessions awaiting OIDC completion are also indexed by their
// hashed OAuth2 state.
type sessionsStore struct {
	redisClient redis.Cmdable
	now         func() time.Time
}

// NewSessionsStore returns a Redis-based implementation of the
// authx.SessionsStore interface.
func NewSessionsStore(redisClient redis.Cmdable) authx.SessionsStore {
	return &sessionsStore{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("sessions:%s", id)
}

func oauth2StateKey(hashedOAuth2State string) string {
	return fmt.Sprintf("sessions:oauth2-states:%s", hashedOAuth2State)
}

// ttl returns how long the session should be retained. Zero means forever,
// which is how go-redis interprets a zero expiration.
func (s *sessionsStore) ttl(session authx.Session) (time.Duration, error) {
	if session.Expires == nil {
		return 0, nil
	}
	ttl := session.Expires.Sub(s.now())
	if ttl <= 0 {
		return 0, errors.Errorf("session %q has already expired", session.ID)
	}
	return ttl, nil
}

func (s *sessionsStore) Create(_ context.Context, session authx.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "error marshaling session %q", session.ID)
	}
	ttl, err := s.ttl(session)
	if err != nil {
		return err
	}
	// The session and its state index are written together or not at all.
	pipe := s.redisClient.TxPipeline()
	createCmd := pipe.SetNX(sessionKey(session.ID), sessionJSON, ttl)
	if session.HashedOAuth2State != "" {
		pipe.Set(
			oauth2StateKey(session.HashedOAuth2State),
			session.ID,
			ttl,
		)
	}
	if _, err = pipe.Exec(); err != nil {
		return errors.Wrapf(err, "error storing new session %q", session.ID)
	}
	if !createCmd.Val() {
		return errors.Errorf("session %q already exists", session.ID)
	}
	return nil
}

func (s *sessionsStore) GetByHashedOAuth2State(
	ctx context.Context,
	hashedOAuth2State string,
) (authx.Session, error) {
	id, err := s.redisClient.Get(oauth2StateKey(hashedOAuth2State)).Result()
	if err == redis.Nil {
		return authx.Session{}, &sdk.ErrNotFound{Type: "Session"}
	}
	if err != nil {
		return authx.Session{}, errors.Wrap(
			err,
			"error finding session by hashed OAuth2 state",
		)
	}
	return s.Get(ctx, id)
}

func (s *sessionsStore) Get(_ context.Context, id string) (authx.Session, error) {
	session := authx.Session{}
	sessionJSON, err := s.redisClient.Get(sessionKey(id)).Bytes()
	if err == redis.Nil {
		return session, &sdk.ErrNotFound{
			Type: "Session",
			ID:   id,
		}
	}
	if err != nil {
		return session, errors.Wrapf(err, "error finding session %q", id)
	}
	if err = json.Unmarshal(sessionJSON, &session); err != nil {
		return session, errors.Wrapf(err, "error decoding session %q", id)
	}
	return session, nil
}

func (s *sessionsStore) Update(ctx context.Context, session authx.Session) error {
	existing, err := s.Get(ctx, session.ID)
	if err != nil {
		return err
	}
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "error marshaling session %q", session.ID)
	}
	ttl, err := s.ttl(session)
	if err != nil {
		return err
	}
	pipe := s.redisClient.TxPipeline()
	pipe.Set(sessionKey(session.ID), sessionJSON, ttl)
	if existing.HashedOAuth2State != "" &&
		existing.HashedOAuth2State != session.HashedOAuth2State {
		pipe.Del(oauth2StateKey(existing.HashedOAuth2State))
	}
	if _, err = pipe.Exec(); err != nil {
		return errors.Wrapf(err, "error updating session %q", session.ID)
	}
	return nil
}

func (s *sessionsStore) Delete(ctx context.Context, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	keys := []string{sessionKey(id)}
	if existing.HashedOAuth2State != "" {
		keys = append(keys, oauth2StateKey(existing.HashedOAuth2State))
	}
	if err = s.redisClient.Del(keys...).Err(); err != nil {
		return errors.Wrapf(err, "error deleting session %q", id)
	}
	return nil
}
