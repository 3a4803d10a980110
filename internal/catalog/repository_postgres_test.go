package catalog

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productRows = []string{
	"product_id", "segment", "product_name", "category", "price", "description",
	"image", "rating", "popularity", "badge", "skin_type", "hair_type", "ingredients",
}

func TestPostgresListBySegment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productRows).
		AddRow("w001", "women", "Velvet Matte Lipstick", "Lips", 42.0, "Long-wear matte", "lipstick.jpg", 4.8, 95, "Bestseller", "", "", "{Shea Butter,Vitamin E}").
		AddRow("w002", "women", "Radiance Serum", "Skincare", 128.0, "Brightening serum", "serum.jpg", 4.9, 88, "", "All", "", "{Niacinamide}")
	mock.ExpectQuery("FROM product").WithArgs("women").WillReturnRows(rows)

	products, err := repo.List("women")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != "w001" || products[0].Ingredients[1] != "Vitamin E" {
		t.Errorf("unexpected first product %+v", products[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM product").WithArgs("ghost").WillReturnRows(sqlmock.NewRows(productRows))

	if _, err := repo.GetByID("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
