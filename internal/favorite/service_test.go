package favorite

import (
	"errors"
	"reflect"
	"testing"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

func favoriteFixture() *Service {
	products := catalog.NewInMemoryRepository([]catalog.Product{
		{ID: "w001", Name: "Velvet Matte Lipstick", Category: "Lips", Price: 42},
		{ID: "w002", Name: "Radiance Serum", Category: "Skincare", Price: 128},
	}, nil)
	return NewService(NewInMemoryRepository(), products)
}

func TestAddIsIdempotent(t *testing.T) {
	svc := favoriteFixture()

	if _, err := svc.Add("jane@example.com", "w001"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ids, err := svc.Add("jane@example.com", "w001")
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if want := []string{"w001"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc := favoriteFixture()

	if _, err := svc.Add("jane@example.com", "ghost"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("err = %v, want catalog.ErrNotFound", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc := favoriteFixture()

	if _, err := svc.Add("jane@example.com", "w001"); err != nil {
		t.Fatal(err)
	}
	ids, err := svc.Remove("jane@example.com", "w001")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}

	// removing again, and removing something never added, are both no-ops
	if _, err := svc.Remove("jane@example.com", "w001"); err != nil {
		t.Errorf("repeat Remove: %v", err)
	}
	if _, err := svc.Remove("jane@example.com", "never-added"); err != nil {
		t.Errorf("Remove of absent id: %v", err)
	}
}

func TestListProductsSkipsVanished(t *testing.T) {
	products := catalog.NewInMemoryRepository([]catalog.Product{
		{ID: "w001", Name: "Velvet Matte Lipstick", Category: "Lips", Price: 42},
	}, nil)
	repo := NewInMemoryRepository()
	svc := NewService(repo, products)

	if _, err := svc.Add("jane@example.com", "w001"); err != nil {
		t.Fatal(err)
	}
	// simulate a product that was favorited before it left the catalog
	if _, err := repo.Add("jane@example.com", "w099", "2026-01-01T00:00:00Z"); err != nil {
		t.Fatal(err)
	}

	resolved, err := svc.ListProducts("jane@example.com")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(resolved) != 1 || resolved[0].ID != "w001" {
		t.Errorf("resolved = %v, want only w001", resolved)
	}
}

func TestHas(t *testing.T) {
	svc := favoriteFixture()

	if _, err := svc.Add("jane@example.com", "w002"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := svc.Has("jane@example.com", "w002"); !ok {
		t.Error("Has = false for a favorited product")
	}
	if ok, _ := svc.Has("jane@example.com", "w001"); ok {
		t.Error("Has = true for a product never favorited")
	}
}
