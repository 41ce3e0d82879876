package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/service/search"
)

type TripHandler struct {
	service search.SearchUseCase
}

func NewTripHandler(service search.SearchUseCase) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seatmap", h.seatMap)
}

type searchResponse struct {
	Trips      []domain.Trip `json:"trips"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int           `json:"total"`
}

func (h *TripHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	maxPrice, _ := strconv.ParseInt(c.DefaultQuery("max_price", "0"), 10, 64)

	result, err := h.service.Search(search.SearchInput{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Type:        c.Query("type"),
		MaxPrice:    maxPrice,
		SortBy:      search.SortKey(c.DefaultQuery("sort", "time")),
		Page:        page,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Trips:      result.Trips,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Total:      result.Total,
	})
}

func (h *TripHandler) get(c *gin.Context) {
	trip, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

type seatInfo struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

type seatMapResponse struct {
	TripID string       `json:"tripId"`
	Rows   [][]seatInfo `json:"rows"`
}

// seatMap renders the fixed 2+1 grid with per-seat booked flags so the
// client can disable sold seats.
func (h *TripHandler) seatMap(c *gin.Context) {
	trip, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	resp := seatMapResponse{TripID: trip.ID}
	for row := 1; row <= domain.SeatRows; row++ {
		seats := make([]seatInfo, 0, len(domain.SeatColumns))
		for _, col := range domain.SeatColumns {
			id := domain.SeatID(trip.ID, row, col)
			seats = append(seats, seatInfo{
				ID:     id,
				Label:  domain.SeatLabel(id),
				Booked: trip.SeatBooked(id),
			})
		}
		resp.Rows = append(resp.Rows, seats)
	}
	c.JSON(http.StatusOK, resp)
}
