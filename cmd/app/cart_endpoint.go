package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/cart"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/middleware"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
)

const cartSessionCookie = "cart_session"

// cartSessionID resolves which cart a request operates on: members get a
// stable id derived from their auth id, guests get a minted cookie. Member
// carts follow the login across devices; guest carts stay with the cookie.
func cartSessionID(c echo.Context) string {
	if claims := middleware.TryGetClaimsFromAuthHeader(c); claims != nil {
		return fmt.Sprintf("member:%d", claims.AuthID)
	}
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		return "guest:" + ck.Value
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
	})
	return "guest:" + id
}

type addCartRequest struct {
	MenuItemID       int64   `json:"menuitemid"`
	Quantity         int     `json:"quantity"`
	CustomizationIDs []int64 `json:"customization_ids"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, carts *cart.Manager, ms *services.MenuService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		store := carts.Session(c.Request().Context(), cartSessionID(c))
		return c.JSON(http.StatusOK, store.State())
	})

	// ADD item. Duplicate configurations become separate line items.
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		draft, err := ms.PriceDraft(c.Request().Context(), req.MenuItemID, req.Quantity, req.CustomizationIDs)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		store := carts.Session(c.Request().Context(), cartSessionID(c))
		return c.JSON(http.StatusCreated, store.Add(*draft))
	})

	// UPDATE quantity (0 or less removes the line item)
	p.PUT("/:itemid", func(c echo.Context) error {
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		store := carts.Session(c.Request().Context(), cartSessionID(c))
		return c.JSON(http.StatusOK, store.UpdateQuantity(c.Param("itemid"), req.Quantity))
	})

	// REMOVE item
	p.DELETE("/:itemid", func(c echo.Context) error {
		store := carts.Session(c.Request().Context(), cartSessionID(c))
		return c.JSON(http.StatusOK, store.Remove(c.Param("itemid")))
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		store := carts.Session(c.Request().Context(), cartSessionID(c))
		return c.JSON(http.StatusOK, store.Clear())
	})
}
