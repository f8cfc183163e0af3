package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/cart"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/middleware"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/services"
)

type checkoutRequest struct {
	// Guest contact fields; ignored when a member token is present.
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	SpecialInstructions string `json:"special_instructions"`
}

func registerCheckoutRoutes(g *echo.Group, cs *services.CheckoutService, carts *cart.Manager, customers *repository.CustomerRepository) {
	// Checkout summary: the one display path for totals, fed by the same
	// canonical tax rate the submission uses.
	g.GET("/checkout/summary", func(c echo.Context) error {
		store := carts.Session(c.Request().Context(), cartSessionID(c))
		snap := store.Snapshot()
		subtotal := snap.TotalCents
		tax := services.TaxCents(subtotal, cs.TaxRate())
		grand := subtotal + tax
		return c.JSON(http.StatusOK, echo.Map{
			"items":                  snap.Items,
			"item_count":             snap.ItemCount,
			"subtotal_cents":         subtotal,
			"tax_cents":              tax,
			"grand_total_cents":      grand,
			"estimated_wait_minutes": services.EstimatedWaitMinutes(grand),
		})
	})

	g.POST("/checkout", func(c echo.Context) error {
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		var contact services.Contact

		if claims := middleware.TryGetClaimsFromAuthHeader(c); claims != nil {
			// member order: contact comes off the profile, loyalty-eligible
			cust, err := customers.GetByAuthID(ctx, claims.AuthID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			if cust.Phone == nil || *cust.Phone == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"errors": services.FieldErrors{"phone": "add a phone number to your profile before ordering"},
				})
			}
			contact = services.Contact{
				CustomerID: &cust.CustomerID,
				Guest:      false,
				Email:      cust.Email,
				FirstName:  deref(cust.FirstName),
				LastName:   deref(cust.LastName),
				Phone:      *cust.Phone,
			}
		} else {
			contact = services.Contact{
				Guest:     true,
				Email:     req.Email,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Phone:     req.Phone,
			}
		}

		result, err := cs.Submit(ctx, cartSessionID(c), contact, req.SpecialInstructions)
		if err != nil {
			var fe services.FieldErrors
			switch {
			case errors.As(err, &fe):
				return c.JSON(http.StatusBadRequest, echo.Map{"errors": fe})
			case errors.Is(err, services.ErrSubmissionInFlight):
				return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
			case errors.Is(err, services.ErrEmptyCart):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			default:
				return c.JSON(http.StatusBadGateway, echo.Map{"error": "order could not be placed, your cart is unchanged"})
			}
		}
		return c.JSON(http.StatusCreated, result)
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
