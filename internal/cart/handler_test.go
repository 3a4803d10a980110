package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if email := c.Get("X-User-Email"); email != "" {
			claims := jwt.MapClaims{"email": email}
			tok := &jwt.Token{Claims: claims}
			c.Locals("user", tok)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func cartApp(t *testing.T) *fiber.App {
	t.Helper()
	products := catalog.NewInMemoryRepository([]catalog.Product{
		{ID: "w001", Name: "Velvet Matte Lipstick", Category: "Lips", Price: 42},
		{ID: "w002", Name: "Radiance Serum", Category: "Skincare", Price: 128},
	}, nil)
	svc := NewService(NewInMemoryRepository(), products)
	return makeAppWithCartHandler(NewHandler(svc))
}

func TestCartRoutesRequireAuth(t *testing.T) {
	app := cartApp(t)

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without a token", resp.StatusCode)
	}
}

func TestAddItemAndGetCart(t *testing.T) {
	app := cartApp(t)

	body := strings.NewReader(`{"productId":"w001","quantity":2}`)
	req := httptest.NewRequest("POST", "/api/v1/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Email", "jane@example.com")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body = %s", resp.StatusCode, b)
	}

	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("X-User-Email", "jane@example.com")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var got cartResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Fatalf("cart lines = %+v, want one line of quantity 2", got.Lines)
	}
	if got.Totals.Subtotal != "84.00" {
		t.Errorf("subtotal = %s, want 84.00", got.Totals.Subtotal)
	}
	if got.Totals.Shipping != "10.00" {
		t.Errorf("shipping = %s, want flat fee below free-shipping threshold", got.Totals.Shipping)
	}
}

func TestAddUnknownProductReturns404(t *testing.T) {
	app := cartApp(t)

	body := strings.NewReader(`{"productId":"ghost"}`)
	req := httptest.NewRequest("POST", "/api/v1/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Email", "jane@example.com")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404 for unknown product", resp.StatusCode)
	}
}

func TestCartIsScopedPerUser(t *testing.T) {
	app := cartApp(t)

	body := strings.NewReader(`{"productId":"w002"}`)
	req := httptest.NewRequest("POST", "/api/v1/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Email", "jane@example.com")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("X-User-Email", "amy@example.com")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var got cartResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Lines) != 0 {
		t.Fatalf("another user's cart leaked: %+v", got.Lines)
	}
}
