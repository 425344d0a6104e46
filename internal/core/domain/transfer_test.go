package domain_test

import (
	"testing"
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransfer_DeriveRecords(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		amount           decimal.Decimal
		wantSourceAmount decimal.Decimal
		wantTargetAmount decimal.Decimal
	}{
		{
			name:             "positive amount flows source to target",
			amount:           decimal.NewFromInt(100),
			wantSourceAmount: decimal.NewFromInt(-100),
			wantTargetAmount: decimal.NewFromInt(100),
		},
		{
			name:             "negative amount flips direction",
			amount:           decimal.NewFromInt(-40),
			wantSourceAmount: decimal.NewFromInt(-40),
			wantTargetAmount: decimal.NewFromInt(40),
		},
		{
			name:             "fractional amount keeps precision",
			amount:           decimal.RequireFromString("13.37"),
			wantSourceAmount: decimal.RequireFromString("-13.37"),
			wantTargetAmount: decimal.RequireFromString("13.37"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := domain.Transfer{
				TransferID:      "trf_123",
				Amount:          tt.amount,
				CurrencyID:      "cur_123",
				SourceAccountID: "acc_src",
				TargetAccountID: "acc_dst",
				UserID:          "user_123",
				Date:            date,
				Description:     "rent",
			}

			pair := transfer.DeriveRecords("rec_src", "rec_dst")

			assert.True(t, tt.wantSourceAmount.Equal(pair.Source.Amount))
			assert.True(t, tt.wantTargetAmount.Equal(pair.Target.Amount))
			assert.Equal(t, domain.Expense, pair.Source.RecordType)
			assert.Equal(t, domain.Income, pair.Target.RecordType)
			assert.Equal(t, "acc_src", pair.Source.AccountID)
			assert.Equal(t, "acc_dst", pair.Target.AccountID)
			assert.True(t, pair.Balanced())

			// Both records are owned by the transfer and inherit its fields.
			for _, rec := range []domain.Record{pair.Source, pair.Target} {
				if assert.NotNil(t, rec.TransferID) {
					assert.Equal(t, transfer.TransferID, *rec.TransferID)
				}
				assert.Equal(t, transfer.CurrencyID, rec.CurrencyID)
				assert.Equal(t, transfer.UserID, rec.UserID)
				assert.Equal(t, transfer.Date, rec.Date)
				assert.Equal(t, transfer.Description, rec.Description)
				assert.True(t, rec.IsTransactional())
			}

			// Absolute values equal the transfer amount's absolute value.
			assert.True(t, transfer.Amount.Abs().Equal(pair.Source.Amount.Abs()))
			assert.True(t, transfer.Amount.Abs().Equal(pair.Target.Amount.Abs()))
		})
	}
}

func TestNormalizedAmount(t *testing.T) {
	tests := []struct {
		name       string
		recordType domain.RecordType
		amount     decimal.Decimal
		want       decimal.Decimal
	}{
		{"expense stores negative of magnitude", domain.Expense, decimal.NewFromInt(25), decimal.NewFromInt(-25)},
		{"expense with negative input stays negative", domain.Expense, decimal.NewFromInt(-25), decimal.NewFromInt(-25)},
		{"income stores magnitude", domain.Income, decimal.NewFromInt(25), decimal.NewFromInt(25)},
		{"income with negative input becomes positive", domain.Income, decimal.NewFromInt(-25), decimal.NewFromInt(25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NormalizedAmount(tt.recordType, tt.amount)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}
