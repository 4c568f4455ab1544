package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/orderhub/order-hub-service/internal/usecase"
)

type SiteHandler struct {
	SiteUsecase usecase.SiteUsecase
}

func NewSiteHandler(siteUsecase usecase.SiteUsecase) *SiteHandler {
	return &SiteHandler{SiteUsecase: siteUsecase}
}

type createSiteRequest struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
}

// CreateSite provisions a store integration. The response carries the API
// secret exactly once; no other endpoint returns it.
func (h *SiteHandler) CreateSite(c echo.Context) error {
	var req createSiteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if req.Name == "" || req.BaseURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and base_url are required"})
	}

	site, err := h.SiteUsecase.ProvisionSite(c.Request().Context(), req.Name, req.BaseURL)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"id":         site.ID,
		"name":       site.Name,
		"base_url":   site.BaseURL,
		"api_key":    site.APIKey,
		"api_secret": site.APISecret,
		"is_active":  site.IsActive,
	})
}

func (h *SiteHandler) GetSite(c echo.Context) error {
	site, err := h.SiteUsecase.GetSite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) ListSites(c echo.Context) error {
	sites, err := h.SiteUsecase.ListSites(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"sites": sites})
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *SiteHandler) SetSiteActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}
	if err := h.SiteUsecase.SetSiteActive(c.Request().Context(), c.Param("id"), req.Active); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
