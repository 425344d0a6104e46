package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	"github.com/monetario-app/monetario/internal/models"
	"github.com/monetario-app/monetario/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for group category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelectColumns = `
	SELECT category_id, name, category_type, group_id, parent_id, logo,
	       created_at, created_by, last_updated_at, last_updated_by
`

func scanCategory(row pgx.Row) (models.GroupCategory, error) {
	var m models.GroupCategory
	var parentID sql.NullString
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.CategoryType,
		&m.GroupID,
		&parentID,
		&m.Logo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.GroupCategory{}, err
	}
	if parentID.Valid {
		m.ParentID = parentID.String
	}
	return m, nil
}

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.GroupCategory) error {
	m := mapping.ToModelGroupCategory(category)
	query := `
		INSERT INTO group_categories (
			category_id, name, category_type, group_id, parent_id, logo,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.CategoryType,
		m.GroupID,
		m.ParentID,
		m.Logo,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert category "+m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.GroupCategory, error) {
	query := categorySelectColumns + `
		FROM group_categories
		WHERE category_id = $1;
	`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category by ID "+categoryID, err)
	}

	domainCategory := mapping.ToDomainGroupCategory(m)
	return &domainCategory, nil
}

// ListCategoriesByGroup retrieves all categories defined in a group,
// optionally filtered by category type.
func (r *PgxCategoryRepository) ListCategoriesByGroup(ctx context.Context, groupID string, categoryType *domain.CategoryType) ([]domain.GroupCategory, error) {
	query := categorySelectColumns + `
		FROM group_categories
		WHERE group_id = $1
	`
	args := []interface{}{groupID}
	if categoryType != nil {
		query += ` AND category_type = $2`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for group "+groupID, err)
	}
	defer rows.Close()

	categories := []models.GroupCategory{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row for group "+groupID, err)
		}
		categories = append(categories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows for group "+groupID, err)
	}

	return mapping.ToDomainGroupCategorySlice(categories), nil
}

// UpdateCategory updates an existing category's details. The category type is
// immutable once created.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.GroupCategory) error {
	m := mapping.ToModelGroupCategory(category)
	query := `
		UPDATE group_categories
		SET name = $2, parent_id = NULLIF($3, ''), logo = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.ParentID,
		m.Logo,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM group_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
