package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/store"
)

// DashboardHandler serves the aggregated dashboard views.
type DashboardHandler struct {
	Store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{Store: st}
}

// SummaryHandler returns the derived KPI metrics together with guest
// satisfaction figures and the active property filter.
func (h *DashboardHandler) SummaryHandler(c *gin.Context) {
	snap := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"metrics":          snap.Metrics,
		"guestMetrics":     snap.GuestMetrics,
		"selectedProperty": snap.SelectedProperty,
	})
}
