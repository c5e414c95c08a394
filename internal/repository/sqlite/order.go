package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/RafifFarandHariri/jasaku/internal/models"
)

const orderColumns = `id, serviceId, serviceTitle, sellerId, sellerName, customerId, customerName, price, quantity, notes, status, orderDate, deadline, completedDate, paymentMethod, isPaid`

func scanOrder(row interface{ Scan(...any) error }, o *models.Order) error {
	return row.Scan(&o.ID, &o.ServiceID, &o.ServiceTitle, &o.SellerID, &o.SellerName,
		&o.CustomerID, &o.CustomerName, &o.Price, &o.Quantity, &o.Notes, &o.Status,
		&o.OrderDate, &o.Deadline, &o.CompletedDate, &o.PaymentMethod, &o.IsPaid)
}

func (r *SQLiteRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.ServiceID, o.ServiceTitle, o.SellerID, o.SellerName,
		o.CustomerID, o.CustomerName, o.Price, o.Quantity, o.Notes, o.Status,
		o.OrderDate, o.Deadline, o.CompletedDate, o.PaymentMethod, o.IsPaid)
	return err
}

func (r *SQLiteRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	var o models.Order
	if err := scanOrder(row, &o); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &o, nil
}

func (r *SQLiteRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return r.listOrders(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY orderDate DESC`)
}

func (r *SQLiteRepo) ListOrdersByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	return r.listOrders(ctx, `SELECT `+orderColumns+` FROM orders WHERE customerId = ? ORDER BY orderDate DESC`, customerID)
}

func (r *SQLiteRepo) listOrders(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateOrder(ctx context.Context, id string, p *models.OrderPatch) error {
	if p == nil {
		return fmt.Errorf("order patch is nil")
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.ServiceID != nil {
		set("serviceId", *p.ServiceID)
	}
	if p.ServiceTitle != nil {
		set("serviceTitle", *p.ServiceTitle)
	}
	if p.SellerID != nil {
		set("sellerId", *p.SellerID)
	}
	if p.SellerName != nil {
		set("sellerName", *p.SellerName)
	}
	if p.CustomerID != nil {
		set("customerId", *p.CustomerID)
	}
	if p.CustomerName != nil {
		set("customerName", *p.CustomerName)
	}
	if p.Price != nil {
		set("price", *p.Price)
	}
	if p.Quantity != nil {
		set("quantity", *p.Quantity)
	}
	if p.Notes != nil {
		set("notes", *p.Notes)
	}
	if p.Status != nil {
		set("status", *p.Status)
	}
	if p.OrderDate != nil {
		set("orderDate", *p.OrderDate)
	}
	if p.Deadline != nil {
		set("deadline", *p.Deadline)
	}
	if p.CompletedDate != nil {
		set("completedDate", *p.CompletedDate)
	}
	if p.PaymentMethod != nil {
		set("paymentMethod", *p.PaymentMethod)
	}
	if p.IsPaid != nil {
		set("isPaid", *p.IsPaid)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.conn.Exec(ctx, `UPDATE orders SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r *SQLiteRepo) DeleteOrder(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM orders WHERE id = ?`, id)
	return err
}
