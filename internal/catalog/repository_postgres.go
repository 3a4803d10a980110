package catalog

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listBySegmentQuery = `
		SELECT product_id, segment, product_name, category, price, description, image, rating, popularity, badge, skin_type, hair_type, ingredients
		FROM product
		WHERE segment = $1
		ORDER BY ord, product_id
	`
	listAllQuery = `
		SELECT product_id, segment, product_name, category, price, description, image, rating, popularity, badge, skin_type, hair_type, ingredients
		FROM product
		ORDER BY segment DESC, ord, product_id
	`
	getByIDQuery = `
		SELECT product_id, segment, product_name, category, price, description, image, rating, popularity, badge, skin_type, hair_type, ingredients
		FROM product
		WHERE product_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(segment string) ([]Product, error) {
	segment = strings.ToLower(segment)
	if segment != SegmentWomen && segment != SegmentMen {
		return nil, ErrUnknownSegment
	}

	rows, err := r.db.Query(listBySegmentQuery, segment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) ListAll() []Product {
	rows, err := r.db.Query(listAllQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return []Product{}
	}
	return products
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	row := r.db.QueryRow(getByIDQuery, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p           Product
		segment     string
		description sql.NullString
		image       sql.NullString
		badge       sql.NullString
		skinType    sql.NullString
		hairType    sql.NullString
		ingredients pq.StringArray
	)
	err := row.Scan(&p.ID, &segment, &p.Name, &p.Category, &p.Price, &description,
		&image, &p.Rating, &p.Popularity, &badge, &skinType, &hairType, &ingredients)
	if err != nil {
		return Product{}, err
	}
	p.Description = description.String
	p.Image = image.String
	p.Badge = badge.String
	p.SkinType = skinType.String
	p.HairType = hairType.String
	p.Ingredients = []string(ingredients)
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
