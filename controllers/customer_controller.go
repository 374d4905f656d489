package controllers

import (
	"errors"
	"net/http"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type customerRegisterPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type customerLoginPayload struct {
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type customerUpdatePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// POST /api/customer/register
func (ctrl *CustomerController) Register(c *gin.Context) {
	var payload customerRegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email and phone are required")
		return
	}

	// When a logged-in user registers a profile, link the two records.
	userID := middleware.GetPrincipal(c).UserID

	customer, err := ctrl.CustomerSvc.Register(payload.Name, payload.Email, payload.Phone, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer registered successfully",
		"customer": customer,
	})
}

// POST /api/customer/login
func (ctrl *CustomerController) Login(c *gin.Context) {
	var payload customerLoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and phone are required")
		return
	}

	customer, token, err := ctrl.CustomerSvc.Login(payload.Email, payload.Phone)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "customer": customer})
}

// GET /api/customer/profile
func (ctrl *CustomerController) Profile(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p.CustomerID == 0 {
		utils.JSONError(c, http.StatusNotFound, "no customer profile for this account")
		return
	}
	customer, err := ctrl.CustomerSvc.Get(p.CustomerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// PATCH /api/customers/:id
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload customerUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	customer, err := ctrl.CustomerSvc.Update(middleware.GetPrincipal(c), id, payload.Name, payload.Email, payload.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

// DELETE /api/customers/:id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.CustomerSvc.Delete(middleware.GetPrincipal(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GET /api/customers
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.ListAll(middleware.GetPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
