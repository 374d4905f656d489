package controllers

import (
	"net/http"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
)

type PayBookingRequest struct {
	Method string `json:"method"`
}

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

// PATCH /api/bookings/:id/pay
func (ctrl *PaymentController) PayBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload PayBookingRequest
	_ = c.ShouldBindJSON(&payload) // method is optional, defaults to "other"

	result, err := ctrl.PaymentSvc.Pay(middleware.GetPrincipal(c), id, payload.Method)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result.AlreadyPaid {
		c.JSON(http.StatusOK, gin.H{
			"message": "Booking is already paid",
			"payment": result.Payment,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment successful! Your booking is confirmed.",
		"payment": result.Payment,
		"nights":  result.Nights,
	})
}

// GET /api/bookings/:id/payments
func (ctrl *PaymentController) GetPaymentsByBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	payments, err := ctrl.PaymentSvc.ListByBooking(middleware.GetPrincipal(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/payments
func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	payments, err := ctrl.PaymentSvc.ListAll(middleware.GetPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
