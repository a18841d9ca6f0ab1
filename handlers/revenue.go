package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/store"
)

// RevenueHandler serves the read-only revenue timeseries.
type RevenueHandler struct {
	Store *store.Store
}

func NewRevenueHandler(st *store.Store) *RevenueHandler {
	return &RevenueHandler{Store: st}
}

// TimeseriesHandler returns daily revenue points for the requested
// property, falling back to the store-wide selected property.
func (h *RevenueHandler) TimeseriesHandler(c *gin.Context) {
	snap := h.Store.Snapshot()
	property := c.Query("property")
	if property == "" {
		property = snap.SelectedProperty
	}
	c.JSON(http.StatusOK, gin.H{
		"timeseries": snap.RevenueFor(property),
		"aggregate":  snap.Metrics.Aggregate,
	})
}
