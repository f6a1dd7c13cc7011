package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"virtual-interviewer/internal/cache"
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"

	"go.uber.org/zap"
)

// DefaultSessionTTL applies when the store is built with a non-positive TTL.
const DefaultSessionTTL = 24 * time.Hour

// cacheSessionStore keeps each session as a JSON document plus a Redis list of
// turns. Both keys share a sliding expiry that is refreshed on every access.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionStore creates a domain.SessionStore backed by cache.
func NewSessionStore(c domain.Cache, ttl time.Duration) domain.SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &cacheSessionStore{cache: c, ttl: ttl}
}

func sessionKey(id string) string {
	return cache.SessionKey(id)
}

func historyKey(id string) string {
	return cache.SessionHistoryKey(id)
}

func (s *cacheSessionStore) Create(ctx context.Context, session *domain.InterviewSession) error {
	if session == nil || session.ID == "" {
		return domain.NewInvalidInputError("session id is required", nil)
	}

	meta := *session
	history := meta.History
	meta.History = nil

	data, err := json.Marshal(meta)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.ID), string(data), s.ttl); err != nil {
		return domain.ClassifyBackendError("session store", err)
	}
	if len(history) > 0 {
		if err := s.push(ctx, session.ID, history); err != nil {
			return err
		}
	}

	logger.Get().Debug("Interview session stored", zap.String("sessionID", session.ID))
	return nil
}

func (s *cacheSessionStore) Get(ctx context.Context, id string) (*domain.InterviewSession, error) {
	raw, err := s.cache.Get(ctx, sessionKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError("interview session not found").WithContext("session_id", id)
		}
		return nil, domain.ClassifyBackendError("session store", err)
	}

	var session domain.InterviewSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, domain.NewInternalError("failed to decode session", err)
	}

	items, err := s.cache.LRange(ctx, historyKey(id), 0, -1)
	if err != nil {
		return nil, domain.ClassifyBackendError("session store", err)
	}
	session.History = make([]domain.ConversationTurn, 0, len(items))
	for _, item := range items {
		var turn domain.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			logger.Get().Warn("Skipping undecodable session turn", zap.String("sessionID", id), zap.Error(err))
			continue
		}
		session.History = append(session.History, turn)
	}

	s.touch(ctx, id)
	return &session, nil
}

// AppendTurns adds turns to an existing session. Unknown sessions are NOT_FOUND.
func (s *cacheSessionStore) AppendTurns(ctx context.Context, id string, turns ...domain.ConversationTurn) error {
	if len(turns) == 0 {
		return nil
	}
	if _, err := s.cache.Get(ctx, sessionKey(id)); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.NewNotFoundError("interview session not found").WithContext("session_id", id)
		}
		return domain.ClassifyBackendError("session store", err)
	}
	if err := s.push(ctx, id, turns); err != nil {
		return err
	}
	s.touch(ctx, id)
	return nil
}

func (s *cacheSessionStore) push(ctx context.Context, id string, turns []domain.ConversationTurn) error {
	values := make([]string, 0, len(turns))
	for _, turn := range turns {
		if turn.At.IsZero() {
			turn.At = time.Now().UTC()
		}
		data, err := json.Marshal(turn)
		if err != nil {
			return domain.NewInternalError("failed to marshal session turn", err)
		}
		values = append(values, string(data))
	}
	if err := s.cache.RPush(ctx, historyKey(id), values...); err != nil {
		return domain.ClassifyBackendError("session store", err)
	}
	if err := s.cache.Expire(ctx, historyKey(id), s.ttl); err != nil {
		return domain.ClassifyBackendError("session store", err)
	}
	return nil
}

// touch slides the expiry of both keys. Failures only cost an earlier expiry.
func (s *cacheSessionStore) touch(ctx context.Context, id string) {
	for _, key := range []string{sessionKey(id), historyKey(id)} {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			logger.Get().Warn("Failed to refresh session expiry", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *cacheSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, sessionKey(id), historyKey(id)); err != nil {
		return domain.ClassifyBackendError("session store", err)
	}
	return nil
}
