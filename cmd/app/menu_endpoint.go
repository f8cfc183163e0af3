package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
)

func registerMenuRoutes(g *echo.Group, ms *services.MenuService) {
	p := g.Group("/menu")

	p.GET("", func(c echo.Context) error {
		items, err := ms.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	})

	p.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
		}
		item, err := ms.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	})
}
