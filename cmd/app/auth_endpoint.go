package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/middleware"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
)

type registerRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	p := g.Group("/auth")

	p.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		id, err := authSvc.RegisterPublic(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"authid": id})
	})

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		token, err := middleware.GenerateToken(user.AuthID, user.Email, user.Role, 72)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
		}
		return c.JSON(http.StatusOK, echo.Map{"token": token, "role": user.Role})
	})
}
