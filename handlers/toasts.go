package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/store"
)

// ToastHandler serves the transient notification queue.
type ToastHandler struct {
	Store *store.Store
}

func NewToastHandler(st *store.Store) *ToastHandler {
	return &ToastHandler{Store: st}
}

// ListToastsHandler returns the currently visible toasts.
func (h *ToastHandler) ListToastsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toasts": h.Store.Snapshot().Toasts})
}

// DismissToastHandler removes a toast ahead of its auto-expiry.
// Dismissing an already-expired toast is a no-op, not an error.
func (h *ToastHandler) DismissToastHandler(c *gin.Context) {
	id := c.Param("id")
	h.Store.Dispatch(store.Action{
		Type:    store.RemoveToast,
		Payload: store.RemoveToastPayload{ID: id},
	})
	c.JSON(http.StatusOK, gin.H{"toasts": h.Store.Snapshot().Toasts})
}
