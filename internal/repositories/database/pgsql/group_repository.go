package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	"github.com/monetario-app/monetario/internal/models"
	"github.com/monetario-app/monetario/internal/utils/mapping"
)

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for group data.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGroupRepository implements portsrepo.GroupRepositoryFacade
var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

// SaveGroup persists a new group.
func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)
	query := `
		INSERT INTO groups (group_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GroupID,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert group "+m.GroupID, err)
	}
	return nil
}

// FindGroupByID retrieves a group by its ID.
func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	query := `
		SELECT group_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM groups
		WHERE group_id = $1;
	`
	var m models.Group
	err := r.Pool.QueryRow(ctx, query, groupID).Scan(
		&m.GroupID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find group by ID "+groupID, err)
	}

	domainGroup := mapping.ToDomainGroup(m)
	return &domainGroup, nil
}

// ListGroups retrieves all groups.
func (r *PgxGroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	query := `
		SELECT group_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM groups
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query groups", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var m models.Group
		err := rows.Scan(
			&m.GroupID,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan group row", err)
		}
		groups = append(groups, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating group rows", err)
	}

	return mapping.ToDomainGroupSlice(groups), nil
}

// UpdateGroup updates an existing group's details.
func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)
	query := `
		UPDATE groups
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE group_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.GroupID,
		m.Name,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update group "+m.GroupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes a group.
func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM groups WHERE group_id = $1;`, groupID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete group "+groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
