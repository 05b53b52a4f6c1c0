package controllers

import (
	"strconv"

	"github.com/Nitin6404/sryzen-backend/pkg/resp"
	"github.com/Nitin6404/sryzen-backend/services"
	"github.com/Nitin6404/sryzen-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc        *services.OrderService
	InvoiceSvc *services.InvoiceService
}

func NewOrderController(s *services.OrderService, inv *services.InvoiceService) *OrderController {
	return &OrderController{Svc: s, InvoiceSvc: inv}
}

// POST /api/orders — checkout from the active cart
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Create(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// GET /api/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// PUT /api/orders/:id/status — admin only, guarded by the transition table
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /api/orders/:id/invoice
func (h *OrderController) DownloadInvoice(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	// Ownership check unless admin.
	if utils.CurrentRole(c) != "admin" {
		if _, err := h.Svc.DetailForUser(uid, uint(id)); err != nil {
			resp.Error(c, err)
			return
		}
	}

	path, err := h.InvoiceSvc.Generate(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.FileAttachment(path, "invoice.pdf")
}
