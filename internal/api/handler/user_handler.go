package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridenow/user-service/internal/core/domain"
	"github.com/ridenow/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations. Domain errors are
// returned as-is and rendered by the API error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User to create"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse  "User already exists / User already exists in DB"
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), domain.UserRecord{
		ID:   req.ID,
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{
		Message: "User created",
		User:    toUserResponse(user),
	})
}

// Get handles GET /users/:user_id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        user_id  path      string  true  "User id"
// @Success      200      {object}  userResponse
// @Failure      404      {object}  errorResponse
// @Failure      503      {object}  errorResponse
// @Router       /users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *domain.UserRecord) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Role: u.Role}
}
