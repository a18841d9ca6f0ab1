package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/storage"
	"hotelops/store"
)

// AdminHandler holds the privileged operations.
type AdminHandler struct {
	Store   *store.Store
	Persist storage.Store
}

func NewAdminHandler(st *store.Store, persist storage.Store) *AdminHandler {
	return &AdminHandler{Store: st, Persist: persist}
}

// ResetDataHandler restores the seed fixtures and wipes the persisted
// collections. User settings survive the reset.
func (h *AdminHandler) ResetDataHandler(c *gin.Context) {
	logger := getLogger(c)

	h.Store.Dispatch(store.Action{Type: store.ResetData})
	if h.Persist != nil {
		if err := h.Persist.Clear(); err != nil {
			logger.Error("Failed to clear persisted state", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset failed"})
			return
		}
	}

	user, _ := currentUser(c)
	logger.Info("Data reset to seed fixtures", zap.String("by", user.ID))
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
