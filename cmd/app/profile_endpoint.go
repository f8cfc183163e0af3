package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/middleware"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
)

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

func registerProfileRoutes(g *echo.Group, customers *repository.CustomerRepository) {
	p := g.Group("/profile")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		cust, err := customers.GetByAuthID(c.Request().Context(), cl.AuthID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cust)
	})

	p.PUT("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		cust, err := customers.GetByAuthID(c.Request().Context(), cl.AuthID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		if err := customers.Update(c.Request().Context(), cust.CustomerID, req.FirstName, req.LastName, req.Phone); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
	})
}
