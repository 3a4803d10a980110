package favorite

import (
	"github.com/gofiber/fiber/v2"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
	"github.com/werbeauty/beauty-shop-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/favorites", h.listFavorites)
	app.Post("/api/v1/favorites", h.addFavorite)
	app.Delete("/api/v1/favorites/:productId", h.removeFavorite)
	app.Delete("/api/v1/favorites", h.clearFavorites)
}

type favoriteRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) listFavorites(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	products, err := h.service.ListProducts(email)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) addFavorite(c *fiber.Ctx) error {
	payload := new(favoriteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.Add(email, payload.ProductID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ids)
}

func (h *Handler) removeFavorite(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.Remove(email, c.Params("productId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ids)
}

func (h *Handler) clearFavorites(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(email); err != nil {
		return h.fail(c, err)
	}
	return c.JSON([]string{})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	case catalog.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
