package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aleoresto/internal/http/middleware"
	"aleoresto/internal/modules/history"
)

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]history.Pick, error)
}

type HistoryHandler struct {
	svc HistoryService
}

func NewHistoryHandler(svc HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

type recentResponse struct {
	Picks []history.Pick `json:"picks"`
}

// Recent handles GET /api/picks/recent?limit=N.
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Invalid input. 'limit' must be an integer.")
			return
		}
		limit = n
	}

	picks, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		middleware.Logger(c).WithError(err).Error("listing recent picks failed")
		writeError(c, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(c, http.StatusOK, recentResponse{Picks: picks})
}
