package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/dto"
)

// RecordReaderSvc defines read operations for record data
type RecordReaderSvc interface {
	// GetRecordByID retrieves a record. Records belonging to other users are
	// reported as not found.
	GetRecordByID(ctx context.Context, recordID string, requestingUserID string) (*domain.Record, error)

	// ListRecords retrieves a paginated list of records for an account.
	ListRecords(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error)
}

// RecordWriterSvc defines write operations for record data
type RecordWriterSvc interface {
	// CreateRecord persists a new standalone record with its amount sign
	// normalized to the record type.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.Record, error)

	// UpdateRecord updates a standalone record. Records linked to a transfer
	// reject modification.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, requestingUserID string) (*domain.Record, error)

	// DeleteRecord removes a standalone record. Records linked to a transfer
	// reject deletion.
	DeleteRecord(ctx context.Context, recordID string, requestingUserID string) error
}

// RecordSvcFacade combines all record-related service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
