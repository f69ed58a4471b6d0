package store

import (
	"context"
	"fmt"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const teamMemberColumns = `id, name, title, bio, photo, email, linkedin,
	sort_order, status, created_at, updated_at`

func scanTeamMember(row pgx.Row) (*model.TeamMember, error) {
	m := &model.TeamMember{}
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Title,
		&m.Bio,
		&m.Photo,
		&m.Email,
		&m.LinkedIn,
		&m.SortOrder,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func collectTeamMembers(rows pgx.Rows) ([]model.TeamMember, error) {
	defer rows.Close()
	members := []model.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func ListTeamMembers(ctx context.Context, db database.DB) ([]model.TeamMember, error) {
	rows, err := db.Query(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, fmt.Errorf("ListTeamMembers: %w", err)
	}
	members, err := collectTeamMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTeamMembers: %w", err)
	}
	return members, nil
}

func ListActiveTeamMembers(ctx context.Context, db database.DB) ([]model.TeamMember, error) {
	rows, err := db.Query(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members
		 WHERE status = 'active' ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, fmt.Errorf("ListActiveTeamMembers: %w", err)
	}
	members, err := collectTeamMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("ListActiveTeamMembers: %w", err)
	}
	return members, nil
}

func CreateTeamMember(ctx context.Context, db database.DB, m *model.TeamMember) (*model.TeamMember, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO team_members (name, title, bio, photo, email, linkedin, sort_order, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(NULLIF($8, ''), 'active'))
		 RETURNING id, status, created_at, updated_at`,
		m.Name,
		m.Title,
		m.Bio,
		m.Photo,
		m.Email,
		m.LinkedIn,
		m.SortOrder,
		m.Status,
	)
	if err := row.Scan(&m.ID, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTeamMember: %w", err)
	}
	return m, nil
}

func UpdateTeamMember(ctx context.Context, db database.DB, m *model.TeamMember) error {
	tag, err := db.Exec(ctx,
		`UPDATE team_members
		 SET name = $1, title = $2, bio = $3, photo = $4, email = $5,
		     linkedin = $6, sort_order = $7, status = $8, updated_at = NOW()
		 WHERE id = $9`,
		m.Name,
		m.Title,
		m.Bio,
		m.Photo,
		m.Email,
		m.LinkedIn,
		m.SortOrder,
		m.Status,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTeamMember: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTeamMember(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteTeamMember: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
