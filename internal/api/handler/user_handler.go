package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/api/metrics"
	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// UserHandler serves the user management page.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,role"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest only changes the fields present in the body. An empty
// password keeps the stored one.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     *string `json:"role"     validate:"omitempty,role"`
	Password *string `json:"password"`
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Version string `json:"version,omitempty"`
}

func toUserResponse(u domain.User, version string) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Version: version}
}

// List handles GET /v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u.User, u.Version)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.AddUser(c.Request().Context(), ports.NewUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UserChangesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(*user, ""))
}

// Update handles PUT /v1/users/:id. An unknown id changes nothing.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string             true   "User id"
// @Param        If-Match  header    string             false  "Expected version"
// @Param        body      body      updateUserRequest  true   "Fields to change"
// @Success      200       {object}  userResponse
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      412       {object}  map[string]string
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	patch := ports.UserPatch{
		ID:       c.Param("id"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IfMatch:  ifMatch(c),
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}

	user, err := h.service.UpdateUser(c.Request().Context(), patch)
	if err != nil {
		return err
	}

	metrics.UserChangesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(*user, ""))
}

// Delete handles DELETE /v1/users/:id. Deleting an unknown id succeeds.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.UserChangesTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
