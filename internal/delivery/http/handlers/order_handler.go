package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/domain"
	"github.com/orderhub/order-hub-service/internal/usecase"
)

type OrderHandler struct {
	OrderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{OrderUsecase: orderUsecase}
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.OrderUsecase.GetOrderByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	filters := domain.OrderFilters{
		SiteID: c.QueryParam("site_id"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}

	orders, total, err := h.OrderUsecase.ListOrders(c.Request().Context(), filters, page, pageSize)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"orders": orders,
		"total":  total,
	})
}
