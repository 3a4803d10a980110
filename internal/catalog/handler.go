package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/categories", h.listCategories)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	segment := c.Query("segment", SegmentWomen)

	f := Filters{
		Category: c.Query("category"),
		SkinType: c.Query("skinType"),
		HairType: c.Query("hairType"),
		SortBy:   c.Query("sort", SortPopularity),
		Query:    c.Query("q"),
	}
	if v := c.Query("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil && price >= 0 {
			f.MinPrice = price
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil && price >= 0 {
			f.MaxPrice = price
		}
	}

	products, err := h.service.Browse(segment, f)
	if err != nil {
		if err == ErrUnknownSegment {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown segment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	segment := c.Query("segment", SegmentWomen)
	categories, err := h.service.Categories(segment)
	if err != nil {
		if err == ErrUnknownSegment {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown segment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(categories)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(product)
}
