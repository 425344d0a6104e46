package mapping

import (
	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/models"
)

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:      d.TransferID,
		Amount:          d.Amount,
		CurrencyID:      d.CurrencyID,
		SourceAccountID: d.SourceAccountID,
		TargetAccountID: d.TargetAccountID,
		UserID:          d.UserID,
		Date:            d.Date,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransferSlice converts a slice of model Transfers to domain Transfers
func ToDomainTransferSlice(ms []models.Transfer) []domain.Transfer {
	ds := make([]domain.Transfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransfer(m)
	}
	return ds
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:      m.TransferID,
		Amount:          m.Amount,
		CurrencyID:      m.CurrencyID,
		SourceAccountID: m.SourceAccountID,
		TargetAccountID: m.TargetAccountID,
		UserID:          m.UserID,
		Date:            m.Date,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
