package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/middleware"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Admin dashboard backend: order queue and customer list.
func registerAdminRoutes(g *echo.Group, os *services.OrderService, customers *repository.CustomerRepository) {
	p := g.Group("/admin")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.GET("/orders", func(c echo.Context) error {
		orders, err := os.ListAll(c.Request().Context(), c.QueryParam("status"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	})

	p.PUT("/orders/:id/status", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		req := new(updateStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := os.UpdateStatus(c.Request().Context(), orderID, req.Status); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
	})

	p.GET("/customers", func(c echo.Context) error {
		list, err := customers.ListAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"customers": list})
	})
}
