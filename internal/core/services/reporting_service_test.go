package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/core/services"
	"github.com/monetario-app/monetario/internal/dto"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetMonthlyBalanceData(ctx context.Context, userID string, year int, accountID *string) ([]domain.BalanceReport, error) {
	args := m.Called(ctx, userID, year, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceReport), args.Error(1)
}

func (m *MockReportingRepository) GetBalanceBefore(ctx context.Context, userID string, year int, accountID *string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, year, accountID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	userID            string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetBalanceReport_RunningBalance() {
	ctx := context.Background()
	year := 2025
	opening := decimal.NewFromInt(1000)
	rows := []domain.BalanceReport{
		{Month: "2025-01", Income: decimal.NewFromInt(500), Expense: decimal.NewFromInt(-200)},
		{Month: "2025-03", Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(-400)},
	}

	suite.mockReportingRepo.On("GetBalanceBefore", ctx, suite.userID, year, (*string)(nil)).Return(opening, nil).Once()
	suite.mockReportingRepo.On("GetMonthlyBalanceData", ctx, suite.userID, year, (*string)(nil)).Return(rows, nil).Once()

	report, err := suite.service.GetBalanceReport(ctx, suite.userID, dto.BalanceReportParams{Year: year})

	suite.Require().NoError(err)
	suite.Equal(year, report.Year)
	suite.Require().Len(report.Entries, 12)

	jan := report.Entries[0]
	suite.Equal("2025-01", jan.Month)
	suite.True(jan.CashFlow.Equal(decimal.NewFromInt(300)))
	suite.True(jan.StartBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(jan.EndBalance.Equal(decimal.NewFromInt(1300)))

	// February has no records: zero flow, balance carried through.
	feb := report.Entries[1]
	suite.Equal("2025-02", feb.Month)
	suite.True(feb.CashFlow.IsZero())
	suite.True(feb.StartBalance.Equal(decimal.NewFromInt(1300)))
	suite.True(feb.EndBalance.Equal(decimal.NewFromInt(1300)))

	mar := report.Entries[2]
	suite.True(mar.CashFlow.Equal(decimal.NewFromInt(-300)))
	suite.True(mar.EndBalance.Equal(decimal.NewFromInt(1000)))

	dec := report.Entries[11]
	suite.Equal("2025-12", dec.Month)
	suite.True(dec.EndBalance.Equal(decimal.NewFromInt(1000)))

	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetBalanceReport_AccountFilter() {
	ctx := context.Background()
	year := 2024
	accountID := uuid.NewString()

	suite.mockReportingRepo.On("GetBalanceBefore", ctx, suite.userID, year, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == accountID
	})).Return(decimal.Zero, nil).Once()
	suite.mockReportingRepo.On("GetMonthlyBalanceData", ctx, suite.userID, year, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == accountID
	})).Return([]domain.BalanceReport{}, nil).Once()

	report, err := suite.service.GetBalanceReport(ctx, suite.userID, dto.BalanceReportParams{Year: year, AccountID: accountID})

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 12)
	for _, entry := range report.Entries {
		suite.True(entry.CashFlow.IsZero())
		suite.True(entry.StartBalance.IsZero())
		suite.True(entry.EndBalance.IsZero())
	}
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
