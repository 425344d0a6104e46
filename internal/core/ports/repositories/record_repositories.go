package repositories

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// RecordReader defines read operations for record data
type RecordReader interface {
	// FindRecordByID retrieves a specific record by its unique identifier.
	FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error)

	// ListRecordsByAccount retrieves a paginated list of records for an account
	// using token-based pagination. It returns the records, a token for the
	// next page, and an error.
	ListRecordsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Record, *string, error)
}

// RecordWriter defines write operations for record data
type RecordWriter interface {
	// SaveRecord persists a new standalone record.
	SaveRecord(ctx context.Context, record domain.Record) error

	// UpdateRecord updates an existing record's details.
	UpdateRecord(ctx context.Context, record domain.Record) error

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, recordID string) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
