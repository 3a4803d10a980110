package recommend

import (
	"strconv"

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

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/trending", h.getTrending)
	app.Get("/api/v1/product/:id/similar", h.getSimilar)
	app.Get("/api/v1/product/:id/also-bought", h.getAlsoBought)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/recommendations", h.getRecommendations)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	products, err := h.service.ForUser(email, queryLimit(c, DefaultLimit))
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getTrending(c *fiber.Ctx) error {
	segment := c.Query("segment", catalog.SegmentWomen)
	products, err := h.service.TrendingForSegment(segment, queryLimit(c, DefaultLimit))
	if err != nil {
		if err == catalog.ErrUnknownSegment {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown segment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getSimilar(c *fiber.Ctx) error {
	// unknown ids yield an empty list by design
	return c.JSON(h.service.SimilarTo(c.Params("id"), queryLimit(c, DefaultSimilarLimit)))
}

func (h *Handler) getAlsoBought(c *fiber.Ctx) error {
	return c.JSON(h.service.AlsoBoughtWith(c.Params("id"), queryLimit(c, DefaultSimilarLimit)))
}

func queryLimit(c *fiber.Ctx, fallback int) int {
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
