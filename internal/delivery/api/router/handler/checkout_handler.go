package handler

import (
	"biaresh/internal/delivery/api/response"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	MessageUC  usecase.MessageUsecase
}

// CheckoutHandler serves checkout and the contact form
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	messageUC  usecase.MessageUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		messageUC:  params.MessageUC,
	}
}

// PlaceOrder turns the cart into a pending order
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req usecase.CheckoutInput
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Created(c, order)
}

// SubmitContact stores a contact form message
func (h *CheckoutHandler) SubmitContact(c echo.Context) error {
	var req usecase.ContactInput
	if err := bind(c, &req); err != nil {
		return err
	}

	message, err := h.messageUC.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Created(c, message)
}
