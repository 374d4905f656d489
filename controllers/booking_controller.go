package controllers

import (
	"net/http"
	"strconv"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	CustomerID uint   `json:"customer_id"`
	RoomID     uint   `json:"room_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id, check_in and check_out are required")
		return
	}

	p := middleware.GetPrincipal(c)
	customerID := payload.CustomerID
	if customerID == 0 {
		customerID = p.CustomerID
	}
	if customerID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no customer profile; register as a customer first or pass customer_id")
		return
	}

	booking, err := ctrl.BookingSvc.Create(p, customerID, payload.RoomID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GET /api/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	filter := services.BookingFilter{
		RoomType: c.Query("room_type"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}
	if v, err := strconv.ParseUint(c.Query("customer_id"), 10, 64); err == nil {
		filter.CustomerID = uint(v)
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))

	page, err := ctrl.BookingSvc.List(middleware.GetPrincipal(c), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.Get(middleware.GetPrincipal(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// PATCH /api/bookings/:id/cancel
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.Cancel(middleware.GetPrincipal(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}
