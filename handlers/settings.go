package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
)

// SettingsHandler serves the persisted dashboard preferences.
type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: st}
}

// GetSettingsHandler returns the current preferences.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Snapshot().Settings)
}

// UpdateSettingsHandler shallow-merges the supplied fields into the
// current preferences. Absent fields are left untouched; a supplied
// alerts block replaces the whole block.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		DarkMode *bool                 `json:"darkMode"`
		Alerts   *models.AlertSettings `json:"alerts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid settings request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.Store.Dispatch(store.Action{
		Type:    store.UpdateSettings,
		Payload: store.SettingsPatch{DarkMode: req.DarkMode, Alerts: req.Alerts},
	})
	c.JSON(http.StatusOK, h.Store.Snapshot().Settings)
}
