package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
)

func GetAdminUserByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.AdminUser, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, is_active, created_at
		 FROM admin_users WHERE id = $1`,
		id,
	)
	u := &model.AdminUser{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetAdminUserByID: %w", err)
	}
	return u, nil
}

func GetAdminUserByEmail(ctx context.Context, db database.DB, email string) (*model.AdminUser, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, is_active, created_at
		 FROM admin_users WHERE email = $1`,
		email,
	)
	u := &model.AdminUser{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetAdminUserByEmail: %w", err)
	}
	return u, nil
}

func UpdateAdminUserPassword(ctx context.Context, db database.DB, id uuid.UUID, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1 WHERE id = $2`,
		passwordHash,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateAdminUserPassword: %w", err)
	}
	return nil
}

// SeedAdminUser inserts the bootstrap account when admin_users is empty.
// A second call is a no-op.
func SeedAdminUser(ctx context.Context, db database.DB, email, passwordHash string) error {
	_, err := db.Exec(ctx,
		`INSERT INTO admin_users (email, password_hash, name, role)
		 SELECT $1, $2, 'Site Admin', 'owner'
		 WHERE NOT EXISTS (SELECT 1 FROM admin_users)`,
		email,
		passwordHash,
	)
	if err != nil {
		return fmt.Errorf("SeedAdminUser: %w", err)
	}
	return nil
}
