package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devmarket/devmarket-api/internal/api/metrics"
	"github.com/devmarket/devmarket-api/internal/core/domain"
	"github.com/devmarket/devmarket-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Create persists a new listing owned by the caller.
//
// @Summary      Create a listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      200   {object}  domain.Listing
// @Failure      400   {object}  map[string]string
// @Router       /api/products [post]
func (h *ListingHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.Create(c.Request().Context(), ports.CreateListingInput{
		UserID:           userID,
		Name:             req.Name,
		Price:            req.Price,
		DealPrice:        req.DealPrice,
		Currency:         req.Currency,
		ShortDescription: req.ShortDes,
		Description:      req.Des,
		Image:            req.Image,
		Images:           req.Images,
	})
	if err != nil {
		return err
	}

	metrics.ListingOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, listing)
}

// List returns every listing.
//
// @Summary      List all listings
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Listing
// @Router       /api/products [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return c.JSON(http.StatusOK, listings)
}

// Get returns a single listing by id.
//
// @Summary      Get a listing
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Listing id"
// @Success      200         {object}  domain.Listing
// @Failure      404         {object}  map[string]string
// @Router       /api/products/{product_id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.service.Get(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Update applies a partial update to a listing the caller owns.
//
// @Summary      Update a listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string                true  "Listing id"
// @Param        body        body      updateListingRequest  true  "Fields to change"
// @Success      200         {object}  msgResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /api/products/update/{product_id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err = h.service.Update(c.Request().Context(), ports.UpdateListingInput{
		CallerID:         userID,
		ListingID:        c.Param("product_id"),
		Name:             req.Name,
		Price:            req.Price,
		DealPrice:        req.DealPrice,
		Currency:         req.Currency,
		ShortDescription: req.ShortDes,
		Description:      req.Des,
		Image:            req.Image,
		Images:           req.Images,
	})
	if err != nil {
		return err
	}

	metrics.ListingOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, msgResponse{Msg: "product updated"})
}

// Delete removes a listing the caller owns.
//
// @Summary      Delete a listing
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string  true  "Listing id"
// @Success      200         {object}  msgResponse
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /api/products/delete/{product_id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("product_id")); err != nil {
		return err
	}

	metrics.ListingOpsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, msgResponse{Msg: "product deleted"})
}
