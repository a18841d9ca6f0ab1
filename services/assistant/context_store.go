package assistant

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"hotelops/models"

	"github.com/go-redis/redis/v8"
)

const transcriptPrefix = "chat:session:"

// ContextStore holds per-session chat transcripts.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatTranscript, error)
	Set(ctx context.Context, sessionID string, transcript *models.ChatTranscript) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore keeps transcripts in Redis with a sliding TTL, so
// idle sessions expire on their own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	key := transcriptPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatTranscript{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, err
	}
	var transcript models.ChatTranscript
	if err := json.Unmarshal([]byte(data), &transcript); err != nil {
		return nil, err
	}
	return &transcript, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, transcript *models.ChatTranscript) error {
	key := transcriptPrefix + sessionID
	b, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := transcriptPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// MemoryContextStore is a map-backed ContextStore for tests and
// redis-less deployments.
type MemoryContextStore struct {
	mu          sync.RWMutex
	transcripts map[string]*models.ChatTranscript
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{transcripts: make(map[string]*models.ChatTranscript)}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionID string) (*models.ChatTranscript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.transcripts[sessionID]; ok {
		copied := *t
		copied.Messages = append([]models.ChatMessage(nil), t.Messages...)
		return &copied, nil
	}
	return &models.ChatTranscript{SessionID: sessionID}, nil
}

func (s *MemoryContextStore) Set(_ context.Context, sessionID string, transcript *models.ChatTranscript) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *transcript
	copied.Messages = append([]models.ChatMessage(nil), transcript.Messages...)
	s.transcripts[sessionID] = &copied
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, sessionID)
	return nil
}
