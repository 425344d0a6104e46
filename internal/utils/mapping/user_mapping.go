package mapping

import (
	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/models"
)

// ToModelUser converts a domain User to a model User.
// The password hash is managed by the repository and is not part of the
// domain type.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:      d.UserID,
		Email:       d.Email,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Active:      d.Active,
		SuperUser:   d.SuperUser,
		GroupID:     d.GroupID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Active:      m.Active,
		SuperUser:   m.SuperUser,
		GroupID:     m.GroupID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
