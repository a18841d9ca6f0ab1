package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/models"
	"hotelops/store"
)

// StaffHandler serves the staff roster.
type StaffHandler struct {
	Store *store.Store
}

func NewStaffHandler(st *store.Store) *StaffHandler {
	return &StaffHandler{Store: st}
}

// ListStaffHandler returns the roster, optionally narrowed by department.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	snap := h.Store.Snapshot()
	dept := c.Query("department")
	if dept == "" {
		c.JSON(http.StatusOK, gin.H{"staff": snap.Staff})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": snap.StaffFor(models.Department(dept))})
}
