package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase/interfaces"
)

const (
	sessionKeyPrefix = "wizard:session:"
	eventsKeyPrefix  = "wizard:events:"
)

// RedisStore keeps wizard sessions as JSON values with a sliding TTL.
//
// Save runs under WATCH so two writers holding the same version cannot both
// win; each committed snapshot is then PUBLISHed on the session's events
// channel. An empty message on that channel means the session was deleted.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ISessionStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger.Named("session.redis")}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }
func eventsKey(id string) string  { return eventsKeyPrefix + id }

func (r *RedisStore) Get(ctx context.Context, id string) (entities.WizardSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.WizardSession{}, nil
	}
	if err != nil {
		return entities.WizardSession{}, err
	}

	var s entities.WizardSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.WizardSession{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s entities.WizardSession) (entities.WizardSession, error) {
	key := sessionKey(s.ID)
	var payload []byte

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		var stored int64
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var current entities.WizardSession
			if err := json.Unmarshal(raw, &current); err != nil {
				return fmt.Errorf("decode session %s: %w", s.ID, err)
			}
			stored = current.Version
		}
		if stored != s.Version {
			return interfaces.ErrSessionVersionConflict
		}

		s.Version++
		payload, err = json.Marshal(s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return entities.WizardSession{}, interfaces.ErrSessionVersionConflict
	}
	if err != nil {
		return entities.WizardSession{}, err
	}

	if err := r.client.Publish(ctx, eventsKey(s.ID), payload).Err(); err != nil {
		r.logger.Warn("publish session snapshot failed", zap.String("session_id", s.ID), zap.Error(err))
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return err
	}
	if err := r.client.Publish(ctx, eventsKey(id), "").Err(); err != nil {
		r.logger.Warn("publish session delete failed", zap.String("session_id", id), zap.Error(err))
	}
	return nil
}

// Subscribe returns once the Redis subscription is confirmed, so no snapshot
// saved after the call is missed.
func (r *RedisStore) Subscribe(ctx context.Context, id string) (<-chan entities.WizardSession, func(), error) {
	pubsub := r.client.Subscribe(ctx, eventsKey(id))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe to session %s: %w", id, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan entities.WizardSession, subscriberBuffer)
	msgs := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok || msg.Payload == "" {
					return
				}
				var s entities.WizardSession
				if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
					r.logger.Warn("drop undecodable snapshot", zap.String("session_id", id), zap.Error(err))
					continue
				}
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, cancel, nil
}
