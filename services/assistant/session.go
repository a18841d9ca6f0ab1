package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotelops/models"
	"hotelops/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Greeting opens every fresh session.
const Greeting = "Hello! I'm your hospitality assistant. I can help you with housekeeping status, maintenance requests, task assignments, and revenue analytics. What would you like to know?"

// QuickActions are the canned phrases offered to the user.
func QuickActions() []string {
	return []string{
		"Show me today's housekeeping status",
		"How many maintenance requests are pending?",
		"What is the guest satisfaction score?",
		"What is the occupancy rate this week?",
		"Show RevPAR trends for the past 30 days",
		"Assign cleaning tasks for Room 305",
		"Remind maintenance to check HVAC in Room 202",
	}
}

// Session orchestrates assistant turn-taking: classify, execute, append
// to the transcript, and pace the reply. Turns within one session are
// serialised; rapid repeated sends queue rather than interleave.
type Session struct {
	Store       *store.Store
	Transcripts ContextStore
	Executor    *Executor
	ReplyDelay  time.Duration
	Logger      *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSession builds the chat session controller.
func NewSession(st *store.Store, transcripts ContextStore, exec *Executor, replyDelay time.Duration, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		Store:       st,
		Transcripts: transcripts,
		Executor:    exec,
		ReplyDelay:  replyDelay,
		Logger:      logger,
		locks:       make(map[string]*sync.Mutex),
	}
}

// Send processes one user message and returns the assistant's reply.
// The configured reply delay is honoured unless the context is cancelled
// first, in which case the turn is abandoned.
func (s *Session) Send(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	transcript, err := s.Transcripts.Get(ctx, sessionID)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("load transcript: %w", err)
	}
	if len(transcript.Messages) == 0 {
		transcript.Messages = append(transcript.Messages, models.ChatMessage{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Content:   Greeting,
			Timestamp: time.Now(),
		})
	}

	transcript.Messages = append(transcript.Messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	})

	if err := s.waitReplyDelay(ctx); err != nil {
		return models.ChatMessage{}, err
	}

	intent := Classify(text)
	s.Logger.Debug("Classified message",
		zap.String("sessionID", sessionID),
		zap.String("intent", string(intent.Type)),
		zap.Float64("confidence", intent.Confidence))

	result := s.Executor.Execute(intent, s.Store.Snapshot(), s.Store.Dispatch)

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   result.Response,
		Timestamp: time.Now(),
		Action:    result.Action,
	}
	transcript.Messages = append(transcript.Messages, reply)

	if err := s.Transcripts.Set(ctx, sessionID, transcript); err != nil {
		return models.ChatMessage{}, fmt.Errorf("save transcript: %w", err)
	}

	return reply, nil
}

// History returns the transcript for a session, seeding the greeting for
// sessions that have not spoken yet.
func (s *Session) History(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	transcript, err := s.Transcripts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(transcript.Messages) == 0 {
		transcript.Messages = []models.ChatMessage{{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Content:   Greeting,
			Timestamp: time.Now(),
		}}
	}
	return transcript, nil
}

// Insight is one block of derived dashboard highlights.
type Insight struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Insights derives the highlight blocks shown beside the chat panel.
func (s *Session) Insights() []Insight {
	snap := s.Store.Snapshot()
	return []Insight{
		{
			Title: "High Priority Items",
			Items: []string{
				fmt.Sprintf("%d open maintenance requests", snap.Metrics.Maintenance.Open),
				fmt.Sprintf("%d rooms need maintenance", snap.Metrics.Housekeeping.MaintenanceRequired),
				fmt.Sprintf("%d rooms pending cleaning", snap.Metrics.Housekeeping.Pending),
			},
		},
		{
			Title: "Performance Metrics",
			Items: []string{
				fmt.Sprintf("%.1f%% occupancy rate", snap.Metrics.Aggregate.OccupancyRate*100),
				fmt.Sprintf("$%.2f average daily rate", snap.Metrics.Aggregate.ADR),
				fmt.Sprintf("%.1f/5.0 guest satisfaction", snap.GuestMetrics.Satisfaction),
			},
		},
	}
}

func (s *Session) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lock, ok := s.locks[sessionID]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	s.locks[sessionID] = lock
	return lock
}

func (s *Session) waitReplyDelay(ctx context.Context) error {
	if s.ReplyDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.ReplyDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
