package controllers

import (
	"net/http"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminSvc *services.AdminService
	UserSvc  *services.UserService
}

func NewAdminController(adminSvc *services.AdminService, userSvc *services.UserService) *AdminController {
	return &AdminController{AdminSvc: adminSvc, UserSvc: userSvc}
}

// GET /api/admin/overview
func (ctrl *AdminController) Overview(c *gin.Context) {
	overview, err := ctrl.AdminSvc.Overview(middleware.GetPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GET /api/admin/metrics
func (ctrl *AdminController) Metrics(c *gin.Context) {
	metrics, err := ctrl.AdminSvc.Metrics(middleware.GetPrincipal(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// PATCH /api/admin/promote/:id
func (ctrl *AdminController) PromoteUser(c *gin.Context) {
	ctrl.setAdmin(c, true, "User promoted to admin")
}

// PATCH /api/admin/demote/:id
func (ctrl *AdminController) DemoteUser(c *gin.Context) {
	ctrl.setAdmin(c, false, "User demoted from admin")
}

func (ctrl *AdminController) setAdmin(c *gin.Context, admin bool, message string) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := ctrl.UserSvc.SetAdmin(middleware.GetPrincipal(c), id, admin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}
