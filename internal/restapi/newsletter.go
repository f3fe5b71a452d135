package restapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type subscribePayload struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) registerNewsletterRoutes(g *echo.Group) {
	g.POST("/newsletter/subscribe", s.subscribeNewsletter)
}

func (s *Server) subscribeNewsletter(c echo.Context) error {
	var payload subscribePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse request body", nil)
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "a valid email address is required", nil)
	}

	created, err := s.newsletter.Subscribe(c.Request().Context(), email)
	if err != nil {
		return failFromErr(c, err)
	}
	if !created {
		return ok(c, subscribeResponse{Status: "already_subscribed", Message: "This email is already subscribed"})
	}
	return ok(c, subscribeResponse{Status: "subscribed", Message: "Thanks for subscribing"})
}
