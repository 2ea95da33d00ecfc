package api

import (
	"net/http"

	reqdto "travelmate/internal/handler/dto/request"
	resdto "travelmate/internal/handler/dto/response"
	"travelmate/internal/usecase/commands"
	"travelmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SavedTripHandler struct {
	cmds commands.SavedTripCommands
	q    queries.SavedTripQueries
}

func NewSavedTripHandler(cmds commands.SavedTripCommands, q queries.SavedTripQueries) *SavedTripHandler {
	return &SavedTripHandler{cmds: cmds, q: q}
}

// @Summary List saved trips
// @Tags saved-trips
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} resdto.SavedTripResponse
// @Failure 400 {object} httperr.Response
// @Router /api/saved-trips/user/{userId} [get]
func (h *SavedTripHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	saved, err := h.q.ListUserSavedTrips(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get saved trips")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSavedTrips(saved))
}

// @Summary Save trip
// @Tags saved-trips
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSavedTripRequest true "Saved trip"
// @Success 201 {object} resdto.SavedTripResponse
// @Failure 400 {object} httperr.Response
// @Router /api/saved-trips [post]
func (h *SavedTripHandler) Create(c *gin.Context) {
	var req reqdto.CreateSavedTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid saved trip data")
		return
	}
	s, err := h.cmds.CreateSavedTrip(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to save trip")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSavedTrip(s))
}

// @Summary Delete saved trip
// @Tags saved-trips
// @Param id path int true "Saved trip ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/saved-trips/{id} [delete]
func (h *SavedTripHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteSavedTrip(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete saved trip")
		return
	}
	c.Status(http.StatusNoContent)
}
