package review

import (
	"errors"
	"testing"

	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
)

func reviewFixture(t *testing.T) *Service {
	t.Helper()
	products := catalog.NewInMemoryRepository([]catalog.Product{
		{ID: "w001", Name: "Velvet Matte Lipstick", Category: "Lips", Price: 42},
	}, nil)
	return NewService(NewInMemoryRepository(), products)
}

func TestSubmitValidatesRatingAndProduct(t *testing.T) {
	svc := reviewFixture(t)

	if _, err := svc.Submit("jane@example.com", "Jane", "w001", 0, "meh"); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("rating 0: err = %v, want ErrInvalidRating", err)
	}
	if _, err := svc.Submit("jane@example.com", "Jane", "w001", 5.5, "great"); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("rating 5.5: err = %v, want ErrInvalidRating", err)
	}
	if _, err := svc.Submit("jane@example.com", "Jane", "ghost", 5, "great"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("unknown product: err = %v, want catalog.ErrNotFound", err)
	}

	rev, err := svc.Submit("jane@example.com", "Jane", "w001", 5, "love it")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rev.Author != "Jane" || rev.Rating != 5 {
		t.Errorf("review = %+v", rev)
	}
}

func TestResubmitReplacesEarlierReview(t *testing.T) {
	svc := reviewFixture(t)

	if _, err := svc.Submit("jane@example.com", "Jane", "w001", 5, "love it"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit("jane@example.com", "Jane", "w001", 3, "faded after a week"); err != nil {
		t.Fatal(err)
	}

	reviews, err := svc.ListByProduct("w001")
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 {
		t.Fatalf("reviews = %d, want one per customer per product", len(reviews))
	}
	if reviews[0].Rating != 3 || reviews[0].Comment != "faded after a week" {
		t.Errorf("review not replaced: %+v", reviews[0])
	}
}

func TestAverageRating(t *testing.T) {
	svc := reviewFixture(t)

	avg, count, err := svc.Average("w001")
	if err != nil {
		t.Fatal(err)
	}
	if avg != 0 || count != 0 {
		t.Errorf("empty product: avg = %v count = %d, want zeros", avg, count)
	}

	if _, err := svc.Submit("jane@example.com", "Jane", "w001", 5, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit("amy@example.com", "Amy", "w001", 4, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit("mei@example.com", "Mei", "w001", 4, ""); err != nil {
		t.Fatal(err)
	}

	avg, count, err = svc.Average("w001")
	if err != nil {
		t.Fatal(err)
	}
	if avg != 4.3 || count != 3 {
		t.Errorf("avg = %v count = %d, want 4.3 and 3", avg, count)
	}
}

func TestDeleteOwnReview(t *testing.T) {
	svc := reviewFixture(t)

	if _, err := svc.Submit("jane@example.com", "Jane", "w001", 5, ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete("amy@example.com", "w001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting someone else's review: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete("jane@example.com", "w001"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	reviews, err := svc.ListByProduct("w001")
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 0 {
		t.Errorf("reviews = %d after delete, want 0", len(reviews))
	}
}
