package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
)

// HousekeepingHandler serves the room board and its mutations.
type HousekeepingHandler struct {
	Store *store.Store
}

func NewHousekeepingHandler(st *store.Store) *HousekeepingHandler {
	return &HousekeepingHandler{Store: st}
}

var validRoomStatuses = map[models.RoomStatus]struct{}{
	models.RoomCleaned:             {},
	models.RoomPending:             {},
	models.RoomInProgress:          {},
	models.RoomMaintenanceRequired: {},
}

// ListRoomsHandler returns the rooms for the requested property, falling
// back to the store-wide selected property when the query is absent.
func (h *HousekeepingHandler) ListRoomsHandler(c *gin.Context) {
	snap := h.Store.Snapshot()
	property := c.Query("property")
	if property == "" {
		property = snap.SelectedProperty
	}
	c.JSON(http.StatusOK, gin.H{
		"rooms":   snap.RoomsFor(property),
		"metrics": snap.Metrics.Housekeeping,
	})
}

// UpdateRoomStatusHandler changes a room's housekeeping status.
func (h *HousekeepingHandler) UpdateRoomStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Room       string `json:"room" binding:"required"`
		PropertyID string `json:"propertyId" binding:"required"`
		Status     string `json:"status" binding:"required"`
		AssignedTo string `json:"assignedTo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid room status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	status := models.RoomStatus(req.Status)
	if _, ok := validRoomStatuses[status]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown room status: " + req.Status})
		return
	}

	snap := h.Store.Snapshot()
	if _, ok := snap.FindRoom(req.Room, req.PropertyID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	h.Store.Dispatch(store.Action{
		Type: store.UpdateRoomStatus,
		Payload: store.UpdateRoomStatusPayload{
			Room:       req.Room,
			PropertyID: req.PropertyID,
			Status:     status,
			AssignedTo: req.AssignedTo,
		},
	})

	next := h.Store.Snapshot()
	room, _ := next.FindRoom(req.Room, req.PropertyID)
	c.JSON(http.StatusOK, gin.H{"room": room, "metrics": next.Metrics.Housekeeping})
}

// AssignRoomHandler assigns a staff member to a room and moves it to
// in progress.
func (h *HousekeepingHandler) AssignRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Room    string `json:"room" binding:"required"`
		StaffID string `json:"staffId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid room assignment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snap := h.Store.Snapshot()
	member, ok := findStaff(snap.Staff, req.StaffID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	h.Store.Dispatch(store.Action{
		Type: store.AssignRoom,
		Payload: store.AssignRoomPayload{
			Room:      req.Room,
			StaffID:   member.ID,
			StaffName: member.Name,
		},
	})

	next := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"rooms": next.RoomsFor(store.SelectedAll), "metrics": next.Metrics.Housekeeping})
}

func findStaff(staff []models.StaffMember, id string) (models.StaffMember, bool) {
	for _, s := range staff {
		if s.ID == id {
			return s, true
		}
	}
	return models.StaffMember{}, false
}
