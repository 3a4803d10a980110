package review

import (
	"github.com/gofiber/fiber/v2"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
	"github.com/werbeauty/beauty-shop-backend/internal/user"
)

// AuthorLookup resolves the display name shown next to a review.
type AuthorLookup interface {
	GetByEmail(email string) (user.User, error)
}

type Handler struct {
	service *Service
	authors AuthorLookup
}

func NewHandler(s *Service, authors AuthorLookup) *Handler {
	return &Handler{service: s, authors: authors}
}

// Reading reviews is public; writing requires a signed-in user.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/:id/reviews", h.listReviews)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/product/:id/reviews", h.submitReview)
	app.Delete("/api/v1/product/:id/reviews", h.deleteReview)
}

type submitReviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

type reviewListResponse struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	Count         int      `json:"count"`
}

func (h *Handler) listReviews(c *fiber.Ctx) error {
	productID := c.Params("id")

	reviews, err := h.service.ListByProduct(productID)
	if err != nil {
		return h.fail(c, err)
	}
	avg, count, err := h.service.Average(productID)
	if err != nil {
		return h.fail(c, err)
	}

	for i := range reviews {
		reviews[i].Email = ""
	}
	return c.JSON(reviewListResponse{Reviews: reviews, AverageRating: avg, Count: count})
}

func (h *Handler) submitReview(c *fiber.Ctx) error {
	payload := new(submitReviewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	author := email
	if u, err := h.authors.GetByEmail(email); err == nil && u.Name != "" {
		author = u.Name
	}

	rev, err := h.service.Submit(email, author, c.Params("id"), payload.Rating, payload.Comment)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rev)
}

func (h *Handler) deleteReview(c *fiber.Ctx) error {
	email, err := user.GetUserEmailFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(email, c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
	case catalog.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	case ErrInvalidRating:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "rating must be between 1 and 5"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
