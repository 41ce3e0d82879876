package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/middleware"
	"github.com/zhanrui-dev/devbus/internal/service/selection"
)

type SelectionHandler struct {
	service selection.SelectionUseCase
}

type toggleSeatRequest struct {
	TripID string `json:"trip_id"`
	SeatID string `json:"seat_id"`
}

type selectionResponse struct {
	TripID     string   `json:"tripId"`
	Seats      []string `json:"seats"`
	SeatLabels []string `json:"seatLabels"`
	TotalPrice int64    `json:"totalPrice"`
}

func NewSelectionHandler(service selection.SelectionUseCase) *SelectionHandler {
	return &SelectionHandler{service: service}
}

func (h *SelectionHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
	router.POST("/toggle", h.toggle)
	router.DELETE("/", h.reset)
}

func (h *SelectionHandler) get(c *gin.Context) {
	sel := h.service.Get(c.GetString(middleware.ContextEmail))
	c.JSON(http.StatusOK, toSelectionResponse(sel))
}

func (h *SelectionHandler) toggle(c *gin.Context) {
	var req toggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" || req.SeatID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_id and seat_id required"})
		return
	}
	sel, err := h.service.Toggle(c.GetString(middleware.ContextEmail), req.TripID, req.SeatID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSelectionResponse(sel))
}

func (h *SelectionHandler) reset(c *gin.Context) {
	h.service.Reset(c.GetString(middleware.ContextEmail))
	c.Status(http.StatusNoContent)
}

func toSelectionResponse(sel *domain.Selection) selectionResponse {
	return selectionResponse{
		TripID:     sel.TripID,
		Seats:      append([]string{}, sel.Seats...),
		SeatLabels: sel.SeatLabels(),
		TotalPrice: sel.TotalPrice(),
	}
}
