package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// CatalogHandler handles service catalog requests.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Cost:        s.Cost,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// List handles GET /services.
//
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  serviceResponse
// @Router       /services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /services/:id.
//
// @Summary      Fetch a catalog service
// @Tags         catalog
// @Produce      json
// @Param        id  path      string  true  "Service id"
// @Success      200  {object}  serviceResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	svc, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServiceResponse(svc))
}

// Create handles POST /services.
//
// @Summary      Add a catalog service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  serviceResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Create(c.Request().Context(), ctxActor(c), ports.CreateServiceInput{
		Name:        req.Name,
		Cost:        req.Cost,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toServiceResponse(svc))
}

// Update handles PUT /services/:id.
//
// @Summary      Update a catalog service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to merge"
// @Success      200   {object}  serviceResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Update(c.Request().Context(), ctxActor(c), c.Param("id"), ports.CatalogUpdate{
		Name:        req.Name,
		Cost:        req.Cost,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServiceResponse(svc))
}

// Delete handles DELETE /services/:id.
//
// @Summary      Remove a catalog service
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
