package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/store"
)

// PropertyHandler serves the property list and the selected-property filter.
type PropertyHandler struct {
	Store *store.Store
}

func NewPropertyHandler(st *store.Store) *PropertyHandler {
	return &PropertyHandler{Store: st}
}

// ListPropertiesHandler returns every property in the portfolio.
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	snap := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"properties":       snap.Properties,
		"selectedProperty": snap.SelectedProperty,
	})
}

// SelectPropertyHandler sets the dashboard-wide property filter. The
// special value "all" clears it.
func (h *PropertyHandler) SelectPropertyHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		PropertyID string `json:"propertyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid property selection request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.PropertyID != store.SelectedAll && !h.propertyExists(req.PropertyID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown property: " + req.PropertyID})
		return
	}

	h.Store.Dispatch(store.Action{
		Type:    store.SetSelectedProperty,
		Payload: store.SetSelectedPropertyPayload{PropertyID: req.PropertyID},
	})
	c.JSON(http.StatusOK, gin.H{"selectedProperty": req.PropertyID})
}

func (h *PropertyHandler) propertyExists(id string) bool {
	for _, p := range h.Store.Snapshot().Properties {
		if p.ID == id {
			return true
		}
	}
	return false
}
