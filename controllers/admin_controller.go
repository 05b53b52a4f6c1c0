package controllers

import (
	"strconv"

	"github.com/Nitin6404/sryzen-backend/pkg/resp"
	"github.com/Nitin6404/sryzen-backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{Svc: s}
}

// GET /api/admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	stats, err := h.Svc.Dashboard()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/admin/users?page=&limit=&search=
func (h *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.Svc.ListUsers(page, limit, c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /api/admin/users/:id
func (h *AdminController) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	var in services.UpdateUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.UpdateUser(uint(id), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// DELETE /api/admin/users/:id
func (h *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := h.Svc.DeleteUser(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}

// GET /api/admin/orders?page=&limit=&status=
func (h *AdminController) Orders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.Svc.ListOrders(page, limit, c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/admin/orders/:id — destructive override
func (h *AdminController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := h.Svc.DeleteOrder(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}
