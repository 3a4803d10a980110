package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/werbeauty/beauty-shop-backend/internal/cart"
	"github.com/werbeauty/beauty-shop-backend/internal/user"
)

// Handler exposes checkout and order history. All order routes are
// protected; orders are scoped to the authenticated user.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/order/:id", h.getOrder)
}

type checkoutRequest struct {
	FullName       string `json:"fullName"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	Card           Card   `json:"card"`
	PromoCode      string `json:"promoCode"`
	ShippingMethod string `json:"shippingMethod"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FullName == "" || payload.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and address are required"})
	}

	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	o, err := h.service.Checkout(email, CheckoutRequest{
		CheckoutData: CheckoutData{
			FullName: payload.FullName,
			Address:  payload.Address,
			City:     payload.City,
			Zip:      payload.Zip,
			Country:  payload.Country,
		},
		Card:           payload.Card,
		PromoCode:      payload.PromoCode,
		ShippingMethod: payload.ShippingMethod,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByEmail(email)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	o, err := h.service.GetByID(email, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(o)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	case ErrEmptyCart:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	case ErrUnknownPromo:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown promo code"})
	case ErrUnknownShipping:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown shipping method"})
	case ErrInvalidCard:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid card details"})
	case cart.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
