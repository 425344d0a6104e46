package repositories

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// TransferReader defines read operations for transfer data
type TransferReader interface {
	// FindTransferByID retrieves a specific transfer by its unique identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// FindTransferRecords retrieves the expense/income record pair linked to a
	// transfer. Both records must exist; a transfer with a missing or extra
	// linked record is a consistency fault.
	FindTransferRecords(ctx context.Context, transferID string) (*domain.RecordPair, error)

	// ListTransfersByUser retrieves a paginated list of transfers for a user
	// using token-based pagination. It returns the transfers, a token for the
	// next page, and an error.
	ListTransfersByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transfer, *string, error)
}

// TransferWriter defines write operations for transfer data
type TransferWriter interface {
	// SaveTransfer persists a transfer and its record pair atomically.
	// Either all three rows are written or none are.
	SaveTransfer(ctx context.Context, transfer domain.Transfer, records domain.RecordPair) error

	// UpdateTransfer rewrites a transfer and its record pair atomically.
	UpdateTransfer(ctx context.Context, transfer domain.Transfer, records domain.RecordPair) error

	// DeleteTransfer removes a transfer and both of its linked records atomically.
	DeleteTransfer(ctx context.Context, transferID string) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
