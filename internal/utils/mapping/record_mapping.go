package mapping

import (
	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/models"
)

// ToModelRecord converts a domain Record to a model Record
func ToModelRecord(d domain.Record) models.Record {
	return models.Record{
		RecordID:      d.RecordID,
		Amount:        d.Amount,
		RecordType:    models.RecordType(d.RecordType),
		PaymentMethod: string(d.PaymentMethod),
		Description:   d.Description,
		Date:          d.Date,
		AccountID:     d.AccountID,
		CurrencyID:    d.CurrencyID,
		CategoryID:    d.CategoryID,
		UserID:        d.UserID,
		TransferID:    d.TransferID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecord converts a model Record to a domain Record
func ToDomainRecord(m models.Record) domain.Record {
	return domain.Record{
		RecordID:      m.RecordID,
		Amount:        m.Amount,
		RecordType:    domain.RecordType(m.RecordType),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Description:   m.Description,
		Date:          m.Date,
		AccountID:     m.AccountID,
		CurrencyID:    m.CurrencyID,
		CategoryID:    m.CategoryID,
		UserID:        m.UserID,
		TransferID:    m.TransferID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecordSlice converts a slice of model Records to domain Records
func ToDomainRecordSlice(ms []models.Record) []domain.Record {
	ds := make([]domain.Record, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(m)
	}
	return ds
}
