package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/RafifFarandHariri/jasaku/internal/models"
)

// userColumns is the read projection; password_hash is deliberately excluded
// everywhere except the credential lookup used by signin.
const userColumns = `id, nrp, nama, email, phone, profile_image, role, is_verified_provider, provider_since, provider_description, created_at`

func scanUser(row interface{ Scan(...any) error }, u *models.User) error {
	return row.Scan(&u.ID, &u.NRP, &u.Nama, &u.Email, &u.Phone, &u.ProfileImage,
		&u.Role, &u.IsVerifiedProvider, &u.ProviderSince, &u.ProviderDescription,
		&u.CreatedAt)
}

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (nrp, nama, email, phone, password_hash, profile_image, role, is_verified_provider, provider_since, provider_description, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.NRP, u.Nama, u.Email, u.Phone, u.PasswordHash, u.ProfileImage, u.Role,
		u.IsVerifiedProvider, u.ProviderSince, u.ProviderDescription, u.CreatedAt)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	var u models.User
	if err := scanUser(row, &u); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

// GetUserByEmail also loads the password hash; it exists for signin only.
func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE email = ?`, email)
	var u models.User
	var pw sql.NullString
	if err := row.Scan(&u.ID, &u.NRP, &u.Nama, &u.Email, &u.Phone, &u.ProfileImage,
		&u.Role, &u.IsVerifiedProvider, &u.ProviderSince, &u.ProviderDescription,
		&u.CreatedAt, &pw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		u.PasswordHash = pw.String
	}

	return &u, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateUser(ctx context.Context, id int64, p *models.UserPatch) error {
	if p == nil {
		return fmt.Errorf("user patch is nil")
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.NRP != nil {
		set("nrp", *p.NRP)
	}
	if p.Nama != nil {
		set("nama", *p.Nama)
	}
	if p.Email != nil {
		set("email", *p.Email)
	}
	if p.Phone != nil {
		set("phone", *p.Phone)
	}
	if p.ProfileImage != nil {
		set("profile_image", *p.ProfileImage)
	}
	if p.Role != nil {
		set("role", *p.Role)
	}
	if p.IsVerifiedProvider != nil {
		set("is_verified_provider", *p.IsVerifiedProvider)
	}
	if p.ProviderSince != nil {
		set("provider_since", *p.ProviderSince)
	}
	if p.ProviderDescription != nil {
		set("provider_description", *p.ProviderDescription)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.conn.Exec(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r *SQLiteRepo) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}
