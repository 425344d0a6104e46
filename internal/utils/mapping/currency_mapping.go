package mapping

import (
	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/models"
)

// ToModelGroupCurrency converts a domain GroupCurrency to a model GroupCurrency
func ToModelGroupCurrency(d domain.GroupCurrency) models.GroupCurrency {
	return models.GroupCurrency{
		CurrencyID:  d.CurrencyID,
		Name:        d.Name,
		Symbol:      d.Symbol,
		Rate:        d.Rate,
		GroupID:     d.GroupID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroupCurrency converts a model GroupCurrency to a domain GroupCurrency
func ToDomainGroupCurrency(m models.GroupCurrency) domain.GroupCurrency {
	return domain.GroupCurrency{
		CurrencyID:  m.CurrencyID,
		Name:        m.Name,
		Symbol:      m.Symbol,
		Rate:        m.Rate,
		GroupID:     m.GroupID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGroupCurrencySlice converts a slice of model GroupCurrencies to domain ones
func ToDomainGroupCurrencySlice(ms []models.GroupCurrency) []domain.GroupCurrency {
	ds := make([]domain.GroupCurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroupCurrency(m)
	}
	return ds
}
