package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/request"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing active menu items
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListActiveMenuItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", items)
}

// Import handles upserting catalog rows by item name
func (h *MenuHandler) Import(c *gin.Context) {
	var req request.ImportMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rows := make([]service.MenuRowInput, len(req.Items))
	for i, item := range req.Items {
		rows[i] = service.MenuRowInput{
			ItemName: item.ItemName,
			Category: item.Category,
			Price:    decimal.NewFromFloat(item.Price),
			GSTRate:  decimal.NewFromFloat(item.GSTRate),
		}
	}

	count, err := h.menuService.ImportMenu(c.Request.Context(), rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu imported successfully", gin.H{"imported": count})
}
