package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhanrui-dev/devbus/internal/middleware"
	"github.com/zhanrui-dev/devbus/internal/service/account"
	"github.com/zhanrui-dev/devbus/internal/service/booking"
	"github.com/zhanrui-dev/devbus/internal/ticket"
)

type BookingHandler struct {
	service  booking.BookingUseCase
	accounts account.AccountUseCase
}

type confirmBookingRequest struct {
	TripID string `json:"trip_id"`
	Date   string `json:"date"`
}

func NewBookingHandler(service booking.BookingUseCase, accounts account.AccountUseCase) *BookingHandler {
	return &BookingHandler{service: service, accounts: accounts}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.confirm)
	router.GET("/", h.list)
	router.DELETE("/:ref", h.cancel)
	router.GET("/:ref/ticket", h.ticket)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_id required"})
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), booking.ConfirmInput{
		Email:  c.GetString(middleware.ContextEmail),
		TripID: req.TripID,
		Date:   req.Date,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListByEmail(c.GetString(middleware.ContextEmail))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), c.GetString(middleware.ContextEmail), c.Param("ref"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ticket(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)
	b, err := h.service.GetByRef(email, c.Param("ref"))
	if err != nil {
		fail(c, err)
		return
	}

	name := ""
	if acc, err := h.accounts.GetByEmail(email); err == nil {
		name = acc.Name
	}

	pdf, err := ticket.Render(b, name)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", b.Ref))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
