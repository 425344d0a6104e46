package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/core/services"
	"github.com/monetario-app/monetario/internal/dto"
)

// --- Mock AccountRepository (full facade) ---
type MockAccountRepository struct {
	MockAccountReader
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyReader
	service          portssvc.AccountSvcFacade
	userID           string
	account          domain.Account
	currency         domain.GroupCurrency
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyReader)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCurrencyRepo)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID:  uuid.NewString(),
		Name:       "Checking",
		CurrencyID: "EUR",
		UserID:     suite.userID,
	}
	suite.currency = domain.GroupCurrency{
		CurrencyID: "EUR",
		Name:       "Euro",
		Symbol:     "EUR",
		Rate:       decimal.NewFromInt(1),
	}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:       "Savings",
		CurrencyID: suite.currency.CurrencyID,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.currency.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(suite.userID, created.UserID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:       "Savings",
		CurrencyID: "XXX",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_SumsRecords() {
	ctx := context.Background()
	expected, parseErr := decimal.NewFromString("1234.56")
	suite.Require().NoError(parseErr)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("SumRecordAmounts", ctx, suite.account.AccountID).Return(expected, nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(expected))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_EmptyAccountIsZero() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("SumRecordAmounts", ctx, suite.account.AccountID).Return(decimal.Zero, nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_NotOwner() {
	ctx := context.Background()
	foreignAccount := suite.account
	foreignAccount.UserID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreignAccount.AccountID).Return(&foreignAccount, nil).Once()

	_, err := suite.service.CalculateAccountBalance(ctx, foreignAccount.AccountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SumRecordAmounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	newName := "Renamed"

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()

	var updatedAccount domain.Account
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			updatedAccount = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.account.AccountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(newName, updatedAccount.Name)
	suite.Equal(suite.userID, updatedAccount.LastUpdatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotOwner() {
	ctx := context.Background()
	foreignAccount := suite.account
	foreignAccount.UserID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreignAccount.AccountID).Return(&foreignAccount, nil).Once()

	err := suite.service.DeleteAccount(ctx, foreignAccount.AccountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
