package review

import (
	"database/sql"
	"fmt"
)

const (
	upsertReviewQuery = `INSERT INTO reviews (product_id, email, author, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, email)
		DO UPDATE SET author = EXCLUDED.author, rating = EXCLUDED.rating,
			comment = EXCLUDED.comment, created_at = EXCLUDED.created_at`

	listReviewsQuery = `SELECT product_id, email, author, rating, comment, created_at
		FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`

	deleteReviewQuery = `DELETE FROM reviews WHERE product_id = $1 AND email = $2`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(rev Review) (Review, error) {
	_, err := r.db.Exec(upsertReviewQuery,
		rev.ProductID, rev.Email, rev.Author, rev.Rating, rev.Comment, rev.CreatedAt)
	if err != nil {
		return Review{}, fmt.Errorf("upsert review: %w", err)
	}
	return rev, nil
}

func (r *PostgresRepository) ListByProduct(productID string) ([]Review, error) {
	rows, err := r.db.Query(listReviewsQuery, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ProductID, &rev.Email, &rev.Author, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *PostgresRepository) Delete(productID, email string) error {
	res, err := r.db.Exec(deleteReviewQuery, productID, email)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
