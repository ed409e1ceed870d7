package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/request"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/response"
	"github.com/restobill/restobill-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	pricingService *service.PricingService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, pricingService *service.PricingService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		pricingService: pricingService,
	}
}

func toCartLines(items []request.OrderItemRequest) []service.CartLine {
	lines := make([]service.CartLine, len(items))
	for i, item := range items {
		lines[i] = service.CartLine{
			MenuID:    item.MenuID,
			ItemName:  item.ItemName,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
			GSTRate:   decimal.NewFromFloat(item.GSTRate),
			Quantity:  item.Quantity,
		}
	}
	return lines
}

// Create handles placing an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		OrderMode:     enum.OrderMode(req.OrderMode),
		TableNo:       req.TableNo,
		CustomerName:  req.CustomerName,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Items:         toCartLines(req.Items),
		Discount:      decimal.NewFromFloat(req.Discount),
		AmountPaid:    decimal.NewFromFloat(req.AmountPaid),
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Preview prices a cart without saving anything
func (h *OrderHandler) Preview(c *gin.Context) {
	var req request.PreviewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	priced, err := h.pricingService.Compute(toCartLines(req.Items), decimal.NewFromFloat(req.Discount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order priced successfully", gin.H{
		"subtotal":   priced.Subtotal,
		"tax_amount": priced.TaxAmount,
		"discount":   priced.Discount,
		"total":      priced.Total,
		"lines":      priced.Lines,
	})
}

// Get handles getting a single order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing order history
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if modeStr := c.Query("mode"); modeStr != "" {
		mode := enum.OrderMode(modeStr)
		if !mode.Valid() {
			response.BadRequest(c, "Invalid order mode filter")
			return
		}
		params.Mode = &mode
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}
