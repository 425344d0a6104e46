package mapping

import (
	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/models"
)

// ToModelGroupCategory converts a domain GroupCategory to a model GroupCategory
func ToModelGroupCategory(d domain.GroupCategory) models.GroupCategory {
	return models.GroupCategory{
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		CategoryType: models.CategoryType(d.CategoryType),
		ParentID:     d.ParentID,
		Logo:         d.Logo,
		GroupID:      d.GroupID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroupCategory converts a model GroupCategory to a domain GroupCategory
func ToDomainGroupCategory(m models.GroupCategory) domain.GroupCategory {
	return domain.GroupCategory{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		CategoryType: domain.CategoryType(m.CategoryType),
		ParentID:     m.ParentID,
		Logo:         m.Logo,
		GroupID:      m.GroupID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGroupCategorySlice converts a slice of model GroupCategories to domain ones
func ToDomainGroupCategorySlice(ms []models.GroupCategory) []domain.GroupCategory {
	ds := make([]domain.GroupCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroupCategory(m)
	}
	return ds
}
