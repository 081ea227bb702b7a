package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/dto"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	ucOrder "github.com/SmartCafeteriaHQ/cafeteria-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderAdminHandler struct {
	repo     domain.Repository
	setUC    *ucOrder.SetStatus
	deleteUC *ucOrder.DeleteOrder
}

func NewOrderAdminHandler(
	repo domain.Repository,
	setUC *ucOrder.SetStatus,
	deleteUC *ucOrder.DeleteOrder,
) *OrderAdminHandler {
	return &OrderAdminHandler{
		repo:     repo,
		setUC:    setUC,
		deleteUC: deleteUC,
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// stepReport flattens usecase step results for the response body so the
// caller can see exactly which post-commit side effect failed.
func stepReport(steps []ucOrder.StepResult) []gin.H {
	out := make([]gin.H, 0, len(steps))
	for _, s := range steps {
		entry := gin.H{"step": s.Step, "ok": !s.Failed()}
		if s.Failed() {
			entry["error"] = s.Err.Error()
		}
		out = append(out, entry)
	}
	return out
}

// ======================================================
// LIST
// ======================================================

func (h *OrderAdminHandler) List(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	caf, err := h.repo.GetCafeteriaByOwner(c.Request.Context(), adminID)
	if err != nil {
		httperr.NotFound(c, "cafeteria_not_found", "Cafeteria not found.")
		return
	}

	orders, err := h.repo.ListOrdersForCafeteria(c.Request.Context(), caf.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Failed to fetch orders.")
		return
	}

	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.FromOrder(o, true))
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// STATUS
// ======================================================

func (h *OrderAdminHandler) SetStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	o, steps, err := h.setUC.Execute(
		c.Request.Context(),
		adminID,
		uint(orderID),
		domain.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown order status.")
		case httperr.IsBusiness(err, "cafeteria_not_found"),
			httperr.IsBusiness(err, "order_not_found"):
			httperr.NotFound(c, "order_not_found", "Order not found.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Failed to update order status.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated",
		"status":  o.Status,
		"steps":   stepReport(steps),
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *OrderAdminHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, role, uint(orderID)); err != nil {
		if httperr.IsBusiness(err, "order_not_found") || httperr.IsBusiness(err, "cafeteria_not_found") {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_order", "Failed to delete order.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
