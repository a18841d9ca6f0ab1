package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
)

// MaintenanceHandler serves the ticket queue and its mutations.
type MaintenanceHandler struct {
	Store *store.Store
}

func NewMaintenanceHandler(st *store.Store) *MaintenanceHandler {
	return &MaintenanceHandler{Store: st}
}

var validTicketStatuses = map[models.TicketStatus]struct{}{
	models.TicketOpen:       {},
	models.TicketInProgress: {},
	models.TicketResolved:   {},
}

// ListTicketsHandler returns the tickets for the requested property,
// falling back to the store-wide selected property.
func (h *MaintenanceHandler) ListTicketsHandler(c *gin.Context) {
	snap := h.Store.Snapshot()
	property := c.Query("property")
	if property == "" {
		property = snap.SelectedProperty
	}
	c.JSON(http.StatusOK, gin.H{
		"tickets": snap.TicketsFor(property),
		"metrics": snap.Metrics.Maintenance,
	})
}

// UpdateTicketStatusHandler changes a ticket's lifecycle status.
func (h *MaintenanceHandler) UpdateTicketStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Status     string `json:"status" binding:"required"`
		AssignedTo string `json:"assignedTo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid ticket status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	status := models.TicketStatus(req.Status)
	if _, ok := validTicketStatuses[status]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ticket status: " + req.Status})
		return
	}

	if _, ok := h.Store.Snapshot().FindTicket(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	h.Store.Dispatch(store.Action{
		Type: store.UpdateMaintenanceStatus,
		Payload: store.UpdateMaintenanceStatusPayload{
			ID:         id,
			Status:     status,
			AssignedTo: req.AssignedTo,
		},
	})

	next := h.Store.Snapshot()
	ticket, _ := next.FindTicket(id)
	c.JSON(http.StatusOK, gin.H{"ticket": ticket, "metrics": next.Metrics.Maintenance})
}

// AssignTicketHandler assigns a staff member and moves the ticket to
// in progress.
func (h *MaintenanceHandler) AssignTicketHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		StaffID string `json:"staffId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid ticket assignment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snap := h.Store.Snapshot()
	if _, ok := snap.FindTicket(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	member, ok := findStaff(snap.Staff, req.StaffID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	h.Store.Dispatch(store.Action{
		Type: store.AssignMaintenance,
		Payload: store.AssignMaintenancePayload{
			ID:        id,
			StaffID:   member.ID,
			StaffName: member.Name,
		},
	})

	ticket, _ := h.Store.Snapshot().FindTicket(id)
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// AddTicketNoteHandler appends a timestamped note to a ticket.
func (h *MaintenanceHandler) AddTicketNoteHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Note string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid ticket note request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, ok := h.Store.Snapshot().FindTicket(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	h.Store.Dispatch(store.Action{
		Type:    store.AddMaintenanceNote,
		Payload: store.AddMaintenanceNotePayload{ID: id, Note: req.Note},
	})

	ticket, _ := h.Store.Snapshot().FindTicket(id)
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}
