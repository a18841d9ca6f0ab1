package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotelops/services/assistant"
)

// ChatHandler exposes the assistant session over HTTP.
type ChatHandler struct {
	Session *assistant.Session
}

func NewChatHandler(session *assistant.Session) *ChatHandler {
	return &ChatHandler{Session: session}
}

// MessageHandler processes one user message. When no session id is
// supplied a fresh session is started and its id returned with the reply.
func (h *ChatHandler) MessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.Session.Send(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "Chat turn abandoned"})
			return
		}
		logger.Error("Chat turn failed", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat turn failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "reply": reply})
}

// HistoryHandler returns the full transcript of a session. Unknown
// sessions return the seeded greeting only.
func (h *ChatHandler) HistoryHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	transcript, err := h.Session.History(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Transcript lookup failed", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transcript lookup failed"})
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// QuickActionsHandler returns the canned prompts shown beside the chat box.
func (h *ChatHandler) QuickActionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quickActions": assistant.QuickActions()})
}

// InsightsHandler returns the highlight blocks derived from current state.
func (h *ChatHandler) InsightsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"insights": h.Session.Insights()})
}
