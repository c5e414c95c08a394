package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/RafifFarandHariri/jasaku/internal/models"
)

const serviceColumns = `id, title, seller, price, sold, rating, reviews, is_verified, has_fast_response, category`

func scanService(row interface{ Scan(...any) error }, s *models.Service) error {
	return row.Scan(&s.ID, &s.Title, &s.Seller, &s.Price, &s.Sold, &s.Rating,
		&s.Reviews, &s.IsVerified, &s.HasFastResponse, &s.Category)
}

// CreateService inserts a listing and returns the store-assigned id.
func (r *SQLiteRepo) CreateService(ctx context.Context, s *models.Service) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("service is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO services (title, seller, price, sold, rating, reviews, is_verified, has_fast_response, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Title, s.Seller, s.Price, s.Sold, s.Rating, s.Reviews,
		s.IsVerified, s.HasFastResponse, s.Category)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetService(ctx context.Context, id int64) (*models.Service, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
	var s models.Service
	if err := scanService(row, &s); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &s, nil
}

func (r *SQLiteRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Service
	for rows.Next() {
		var s models.Service
		if err := scanService(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateService(ctx context.Context, id int64, p *models.ServicePatch) error {
	if p == nil {
		return fmt.Errorf("service patch is nil")
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Seller != nil {
		set("seller", *p.Seller)
	}
	if p.Price != nil {
		set("price", *p.Price)
	}
	if p.Sold != nil {
		set("sold", *p.Sold)
	}
	if p.Rating != nil {
		set("rating", *p.Rating)
	}
	if p.Reviews != nil {
		set("reviews", *p.Reviews)
	}
	if p.IsVerified != nil {
		set("is_verified", *p.IsVerified)
	}
	if p.HasFastResponse != nil {
		set("has_fast_response", *p.HasFastResponse)
	}
	if p.Category != nil {
		set("category", *p.Category)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.conn.Exec(ctx, `UPDATE services SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r *SQLiteRepo) DeleteService(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM services WHERE id = ?`, id)
	return err
}
