package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/dto"
)

// TransferReaderSvc defines read operations for transfer data
type TransferReaderSvc interface {
	// GetTransferByID retrieves a transfer with its record pair. Transfers
	// belonging to other users are reported as not found.
	GetTransferByID(ctx context.Context, transferID string, requestingUserID string) (*domain.Transfer, error)

	// ListTransfers retrieves a paginated list of the user's transfers.
	ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error)
}

// TransferWriterSvc defines write operations for transfer data
type TransferWriterSvc interface {
	// CreateTransfer posts a new transfer: the transfer row plus its mirrored
	// expense/income record pair, all persisted atomically.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error)

	// UpdateTransfer reposts an existing transfer, rewriting both linked records.
	UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest, requestingUserID string) (*domain.Transfer, error)

	// DeleteTransfer removes a transfer and both of its linked records.
	DeleteTransfer(ctx context.Context, transferID string, requestingUserID string) error
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
