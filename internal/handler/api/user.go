package api

import (
	"net/http"

	reqdto "travelmate/internal/handler/dto/request"
	resdto "travelmate/internal/handler/dto/response"
	"travelmate/internal/handler/httperr"
	"travelmate/internal/usecase/commands"
	"travelmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Get user
// @Description Get a user profile with preferences
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.q.GetUser(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// @Summary Find user by email
// @Tags users
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/users [get]
func (h *UserHandler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.Abort(c, http.StatusBadRequest, errMissingQuery, "Query parameter email is required")
		return
	}
	u, err := h.q.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "New user"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid user data")
		return
	}
	u, err := h.cmds.CreateUser(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}

// @Summary Update preferences
// @Description Replace the stored travel preferences of a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/{id}/preferences [put]
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid preferences")
		return
	}
	u, err := h.cmds.UpdatePreferences(c.Request.Context(), id, req.Preferences.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}
