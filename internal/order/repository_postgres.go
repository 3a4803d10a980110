package order

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const orderColumns = `order_id, email, items, subtotal, discount, shipping, tax, total,
		promo_code, shipping_method, full_name, address, city, zip, country, status, created_at`

const (
	insertOrderQuery = `INSERT INTO orders (order_id, email, items, subtotal, discount, shipping, tax, total,
		promo_code, shipping_method, full_name, address, city, zip, country, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	listOrdersQuery = `SELECT ` + orderColumns + ` FROM orders WHERE email = $1 ORDER BY created_at DESC`

	getOrderQuery = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(o Order) (Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, fmt.Errorf("marshal order items: %w", err)
	}

	_, err = r.db.Exec(insertOrderQuery,
		o.OrderID, o.Email, items,
		o.Subtotal, o.Discount, o.Shipping, o.Tax, o.Total,
		o.PromoCode, o.ShippingMethod,
		o.CheckoutData.FullName, o.CheckoutData.Address, o.CheckoutData.City, o.CheckoutData.Zip, o.CheckoutData.Country,
		o.Status, o.CreatedAt)
	if err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) ListByEmail(email string) ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery, email)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *PostgresRepository) GetByID(orderID string) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(getOrderQuery, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	var items []byte

	err := row.Scan(&o.OrderID, &o.Email, &items,
		&o.Subtotal, &o.Discount, &o.Shipping, &o.Tax, &o.Total,
		&o.PromoCode, &o.ShippingMethod,
		&o.CheckoutData.FullName, &o.CheckoutData.Address, &o.CheckoutData.City, &o.CheckoutData.Zip, &o.CheckoutData.Country,
		&o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, err
	}
	if err != nil {
		return Order{}, fmt.Errorf("scan order: %w", err)
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return Order{}, fmt.Errorf("unmarshal order items: %w", err)
	}
	return o, nil
}
