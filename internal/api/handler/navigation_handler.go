package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
)

type pageResponse struct {
	Page  string `json:"page"`
	Title string `json:"title"`
}

type navigationResponse struct {
	User  *domain.User   `json:"user"`
	Pages []pageResponse `json:"pages"`
}

// Navigation handles GET /v1/navigation: the pages the session role may
// open, in menu order.
//
// @Summary      Navigation menu
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/navigation [get]
func Navigation(c echo.Context) error {
	user, err := ctxSession(c)
	if err != nil {
		return err
	}

	visible := domain.VisiblePages(user.Role)
	resp := navigationResponse{User: user, Pages: make([]pageResponse, len(visible))}
	for i, p := range visible {
		resp.Pages[i] = pageResponse{Page: string(p), Title: p.Title()}
	}
	return c.JSON(http.StatusOK, resp)
}
