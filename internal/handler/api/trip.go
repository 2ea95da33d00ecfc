package api

import (
	"fmt"
	"net/http"

	reqdto "travelmate/internal/handler/dto/request"
	resdto "travelmate/internal/handler/dto/response"
	"travelmate/internal/handler/httperr"
	"travelmate/internal/pkg/clock"
	"travelmate/internal/pkg/itinerary"
	"travelmate/internal/usecase/commands"
	"travelmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	cmds  commands.TripCommands
	q     queries.TripQueries
	clock clock.Clock
}

func NewTripHandler(cmds commands.TripCommands, q queries.TripQueries, clk clock.Clock) *TripHandler {
	return &TripHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary List user trips
// @Description Trips owned by a user. Unknown users get an empty list.
// @Tags trips
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} resdto.TripResponse
// @Failure 400 {object} httperr.Response
// @Router /api/trips/user/{userId} [get]
func (h *TripHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	trips, err := h.q.ListUserTrips(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get trips")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrips(trips))
}

// @Summary Get trip
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} resdto.TripResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/trips/{id} [get]
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.q.GetTrip(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get trip")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrip(t))
}

// @Summary Download itinerary
// @Description Render the trip and its referenced flights, hotels and activities as a PDF
// @Tags trips
// @Produce application/pdf
// @Param id path int true "Trip ID"
// @Success 200 {file} binary
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/trips/{id}/itinerary.pdf [get]
func (h *TripHandler) Itinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.q.GetItinerary(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to build itinerary")
		return
	}
	pdf, err := itinerary.Render(*doc, h.clock.Now())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Failed to render itinerary")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="trip-%d-itinerary.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary Create trip
// @Tags trips
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTripRequest true "Trip"
// @Success 201 {object} resdto.TripResponse
// @Failure 400 {object} httperr.Response
// @Router /api/trips [post]
func (h *TripHandler) Create(c *gin.Context) {
	var req reqdto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid trip data")
		return
	}
	t, err := h.cmds.CreateTrip(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create trip")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTrip(t))
}

// @Summary Update trip
// @Description Shallow merge: omitted fields are kept, null clears optional fields, details are replaced wholesale
// @Tags trips
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Param request body reqdto.UpdateTripRequest true "Fields to change"
// @Success 200 {object} resdto.TripResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/trips/{id} [put]
func (h *TripHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Failed to update trip")
		return
	}
	t, err := h.cmds.UpdateTrip(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to update trip")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrip(t))
}

// @Summary Delete trip
// @Tags trips
// @Param id path int true "Trip ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/trips/{id} [delete]
func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteTrip(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete trip")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Recommend trips
// @Description Up to six trips planned by other users
// @Tags recommendations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} resdto.TripResponse
// @Failure 400 {object} httperr.Response
// @Router /api/recommendations/user/{userId} [get]
func (h *TripHandler) Recommend(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	trips, err := h.q.Recommend(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get recommendations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrips(trips))
}
