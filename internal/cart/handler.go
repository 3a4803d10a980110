package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
	"github.com/werbeauty/beauty-shop-backend/internal/user"
)

// Handler delegates cart operations to the cart service. All cart routes
// are protected; the cart is scoped to the authenticated user.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Get("/api/v1/cart/totals", h.getTotals)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:productId", h.setQuantity)
	app.Delete("/api/v1/cart/items/:productId", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Lines  []Line     `json:"lines"`
	Totals TotalsView `json:"totals"`
}

func newCartResponse(c Cart) cartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	return cartResponse{Lines: lines, Totals: c.ComputeTotals().Display()}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.GetCart(email)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newCartResponse(current))
}

func (h *Handler) getTotals(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	totals, err := h.service.Totals(email)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(totals.Display())
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.AddItem(email, payload.ProductID, payload.Quantity)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newCartResponse(current))
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	payload := new(setQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.SetQuantity(email, c.Params("productId"), payload.Quantity)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newCartResponse(current))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.RemoveItem(email, c.Params("productId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newCartResponse(current))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(email); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newCartResponse(Cart{}))
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case catalog.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	case ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
