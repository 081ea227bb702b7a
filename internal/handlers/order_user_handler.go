package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/SmartCafeteriaHQ/cafeteria-api/internal/domain/order"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/dto"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httperr"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/httpresp"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	ucOrder "github.com/SmartCafeteriaHQ/cafeteria-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderUserHandler struct {
	repo       domain.Repository
	placeUC    *ucOrder.PlaceOrder
	deleteUC   *ucOrder.DeleteOrder
	rateUC     *ucOrder.RateItem
	feedbackUC *ucOrder.SubmitFeedback
}

func NewOrderUserHandler(
	repo domain.Repository,
	placeUC *ucOrder.PlaceOrder,
	deleteUC *ucOrder.DeleteOrder,
	rateUC *ucOrder.RateItem,
	feedbackUC *ucOrder.SubmitFeedback,
) *OrderUserHandler {
	return &OrderUserHandler{
		repo:       repo,
		placeUC:    placeUC,
		deleteUC:   deleteUC,
		rateUC:     rateUC,
		feedbackUC: feedbackUC,
	}
}

// --------- Requests ---------

type OrderLineRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CafeteriaID uint               `json:"cafeteria_id" binding:"required"`
	Items       []OrderLineRequest `json:"items" binding:"required"`
	PickupTime  string             `json:"pickup_time"`
	Total       float64            `json:"total" binding:"required"`
}

type RateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ======================================================
// PLACE
// ======================================================

func (h *OrderUserHandler) Place(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	lines := make([]ucOrder.LineInput, 0, len(req.Items))
	for _, l := range req.Items {
		lines = append(lines, ucOrder.LineInput{ItemID: l.ItemID, Quantity: l.Quantity})
	}

	o, steps, err := h.placeUC.Execute(c.Request.Context(), ucOrder.PlaceOrderInput{
		UserID:      userID,
		CafeteriaID: req.CafeteriaID,
		Items:       lines,
		PickupTime:  req.PickupTime,
		Total:       req.Total,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "order_items_required"),
			httperr.IsBusiness(err, "invalid_total"),
			httperr.IsBusiness(err, "total_mismatch"),
			httperr.IsBusiness(err, "invalid_quantity"),
			httperr.IsBusiness(err, "menu_item_not_found"):
			httperr.BadRequest(c, err.Error(), "Order validation failed.")
		default:
			httperr.Internal(c, "failed_to_place_order", "Failed to place order.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"orderId": o.Token,
		"steps":   stepReport(steps),
	})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *OrderUserHandler) MyOrders(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orders, err := h.repo.ListOrdersForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Failed to load orders.")
		return
	}

	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.FromOrder(o, false))
	}

	c.JSON(http.StatusOK, out)
}

func (h *OrderUserHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	o, err := h.repo.GetOrderForUser(c.Request.Context(), uint(orderID), userID)
	if err != nil {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}

	httpresp.OK(c, o)
}

// ======================================================
// DELETE
// ======================================================

func (h *OrderUserHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, role, uint(orderID)); err != nil {
		if httperr.IsBusiness(err, "order_not_found") {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_order", "Failed to delete order.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// ======================================================
// RATE / FEEDBACK
// ======================================================

func (h *OrderUserHandler) Rate(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_item_id", "Invalid menu item id.")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}

	if err := h.rateUC.Execute(c.Request.Context(), uint(itemID), req.Rating); err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_rating"):
			httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		case httperr.IsBusiness(err, "menu_item_not_found"):
			httperr.NotFound(c, "menu_item_not_found", "Menu item not found.")
		default:
			httperr.Internal(c, "failed_to_rate_item", "Failed to submit rating.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully"})
}

func (h *OrderUserHandler) Feedback(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}

	if err := h.feedbackUC.Execute(c.Request.Context(), userID, uint(orderID), req.Rating, req.Comment); err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_rating"):
			httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		case httperr.IsBusiness(err, "order_not_found"):
			httperr.NotFound(c, "order_not_found", "Order not found.")
		default:
			httperr.Internal(c, "failed_to_save_feedback", "Failed to save feedback.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback saved"})
}
