package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
)

// Welcome-back banner and promo countdown, both backed by the same KV storage
// as the cart.
func registerVisitRoutes(g *echo.Group, vs *services.VisitService) {
	g.GET("/welcome", func(c echo.Context) error {
		last, err := vs.WelcomeBack(c.Request().Context(), cartSessionID(c))
		if err != nil {
			return c.JSON(http.StatusOK, echo.Map{"last_visit": nil})
		}
		return c.JSON(http.StatusOK, echo.Map{"last_visit": last})
	})

	g.GET("/promo", func(c echo.Context) error {
		ends, err := vs.PromoEnds(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"countdown_ends": ends})
	})
}
