package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

// TripHandler handles HTTP requests for trip operations. All routes sit
// behind the Auth middleware, so ctxUser is always expected to succeed.
type TripHandler struct {
	service ports.TripService
}

func NewTripHandler(service ports.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// Create handles POST /api/trips.
//
// @Summary      Create a new trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip details"
// @Success      201   {object}  tripEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.service.Create(c.Request().Context(), user.ID, toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tripEnvelope{
		Message: "Trip created successfully",
		Trip:    toTripResponse(trip),
	})
}

// List handles GET /api/trips.
//
// @Summary      List the caller's trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTripsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/trips [get]
func (h *TripHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	trips, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(trips))
}

// Get handles GET /api/trips/:id.
//
// @Summary      Get a single trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {object}  tripEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	tripID, err := tripIDParam(c)
	if err != nil {
		return err
	}

	trip, err := h.service.Get(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tripEnvelope{Trip: toTripResponse(trip)})
}

// Update handles PUT /api/trips/:id with a partial body.
//
// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Trip ID"
// @Param        body  body      updateTripRequest  true  "Fields to change"
// @Success      200   {object}  tripEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	tripID, err := tripIDParam(c)
	if err != nil {
		return err
	}

	var req updateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	trip, err := h.service.Update(c.Request().Context(), user.ID, tripID, toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tripEnvelope{
		Message: "Trip updated successfully",
		Trip:    toTripResponse(trip),
	})
}

// Delete handles DELETE /api/trips/:id.
//
// @Summary      Delete a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	tripID, err := tripIDParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, tripID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Trip deleted successfully"})
}

// tripIDParam parses the :id path segment. A non-numeric id cannot name any
// trip, so it reads as not found rather than bad request.
func tripIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrTripNotFound
	}
	return id, nil
}
