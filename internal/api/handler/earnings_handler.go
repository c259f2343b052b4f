package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/core/ports"
)

type EarningsHandler struct {
	service ports.EarningsService
}

func NewEarningsHandler(service ports.EarningsService) *EarningsHandler {
	return &EarningsHandler{service: service}
}

// Own handles GET /news/earnings for the authenticated publisher.
//
// @Summary      Caller's mock earnings
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  earningsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /news/earnings [get]
func (h *EarningsHandler) Own(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	e, err := h.service.ForPublisher(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, earningsResponse{
		TotalRevenue:     e.TotalRevenue,
		ApprovedArticles: e.ApprovedArticles,
		PendingPayments:  e.PendingPayments,
	})
}

// Payouts handles GET /admin/payouts.
//
// @Summary      Mock payouts for every publisher
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  payoutsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/payouts [get]
func (h *EarningsHandler) Payouts(c echo.Context) error {
	payouts, err := h.service.Payouts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPayoutsResponse(payouts))
}
