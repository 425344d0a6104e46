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

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

// Ensure MockRecordRepository implements portsrepo.RecordRepositoryFacade
var _ portsrepo.RecordRepositoryFacade = (*MockRecordRepository)(nil)

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ListRecordsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Record, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Record), returnedNextToken, args.Error(2)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

var _ portsrepo.CategoryReader = (*MockCategoryReader)(nil)

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, categoryID string) (*domain.GroupCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupCategory), args.Error(1)
}

func (m *MockCategoryReader) ListCategoriesByGroup(ctx context.Context, groupID string, categoryType *domain.CategoryType) ([]domain.GroupCategory, error) {
	args := m.Called(ctx, groupID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupCategory), args.Error(1)
}

// --- Test Suite Setup ---
type RecordServiceTestSuite struct {
	suite.Suite
	mockRecordRepo   *MockRecordRepository
	mockAccountRepo  *MockAccountReader
	mockCategoryRepo *MockCategoryReader
	mockCurrencyRepo *MockCurrencyReader
	service          portssvc.RecordSvcFacade
	userID           string
	account          domain.Account
	category         domain.GroupCategory
	currency         domain.GroupCurrency
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockAccountRepo = new(MockAccountReader)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.mockCurrencyRepo = new(MockCurrencyReader)
	suite.service = services.NewRecordService(suite.mockRecordRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockCurrencyRepo)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID:  uuid.NewString(),
		Name:       "Checking",
		CurrencyID: "EUR",
		UserID:     suite.userID,
	}
	suite.category = domain.GroupCategory{
		CategoryID:   uuid.NewString(),
		Name:         "Groceries",
		CategoryType: domain.CategoryExpense,
	}
	suite.currency = domain.GroupCurrency{
		CurrencyID: "EUR",
		Name:       "Euro",
		Symbol:     "EUR",
		Rate:       decimal.NewFromInt(1),
	}
}

// expectRefsOK wires the happy-path account, category and currency lookups.
func (suite *RecordServiceTestSuite) expectRefsOK(ctx context.Context) {
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.category.CategoryID).Return(&suite.category, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.currency.CurrencyID).Return(&suite.currency, nil).Once()
}

// --- Test Cases ---

func (suite *RecordServiceTestSuite) TestCreateRecord_ExpenseStoredNegative() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{
		Amount:     decimal.NewFromInt(42),
		RecordType: string(domain.Expense),
		AccountID:  suite.account.AccountID,
		CurrencyID: suite.currency.CurrencyID,
		CategoryID: suite.category.CategoryID,
	}

	suite.expectRefsOK(ctx)

	var savedRecord domain.Record
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.Record")).
		Run(func(args mock.Arguments) {
			savedRecord = args.Get(1).(domain.Record)
		}).Return(nil).Once()

	created, err := suite.service.CreateRecord(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(savedRecord.Amount.Equal(decimal.NewFromInt(-42)))
	suite.Equal(domain.Expense, savedRecord.RecordType)
	suite.Nil(savedRecord.TransferID)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_IncomeStoredPositive() {
	ctx := context.Background()
	// Entered sign is irrelevant; the type dictates the stored sign.
	req := dto.CreateRecordRequest{
		Amount:     decimal.NewFromInt(-42),
		RecordType: string(domain.Income),
		AccountID:  suite.account.AccountID,
		CurrencyID: suite.currency.CurrencyID,
		CategoryID: suite.category.CategoryID,
	}

	suite.expectRefsOK(ctx)

	var savedRecord domain.Record
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.Record")).
		Run(func(args mock.Arguments) {
			savedRecord = args.Get(1).(domain.Record)
		}).Return(nil).Once()

	_, err := suite.service.CreateRecord(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(savedRecord.Amount.Equal(decimal.NewFromInt(42)))
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_AccountOtherUser() {
	ctx := context.Background()
	foreignAccount := suite.account
	foreignAccount.UserID = uuid.NewString()
	req := dto.CreateRecordRequest{
		Amount:     decimal.NewFromInt(10),
		RecordType: string(domain.Expense),
		AccountID:  foreignAccount.AccountID,
		CurrencyID: suite.currency.CurrencyID,
		CategoryID: suite.category.CategoryID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreignAccount.AccountID).Return(&foreignAccount, nil).Once()

	_, err := suite.service.CreateRecord(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_TransferOwnedRejected() {
	ctx := context.Background()
	transferID := uuid.NewString()
	record := &domain.Record{
		RecordID:   uuid.NewString(),
		Amount:     decimal.NewFromInt(-100),
		RecordType: domain.Expense,
		AccountID:  suite.account.AccountID,
		UserID:     suite.userID,
		TransferID: &transferID,
	}
	newAmount := decimal.NewFromInt(50)

	suite.mockRecordRepo.On("FindRecordByID", ctx, record.RecordID).Return(record, nil).Once()

	_, err := suite.service.UpdateRecord(ctx, record.RecordID, dto.UpdateRecordRequest{Amount: &newAmount}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransactionalRecord)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_TransferOwnedRejected() {
	ctx := context.Background()
	transferID := uuid.NewString()
	record := &domain.Record{
		RecordID:   uuid.NewString(),
		RecordType: domain.Income,
		UserID:     suite.userID,
		TransferID: &transferID,
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, record.RecordID).Return(record, nil).Once()

	err := suite.service.DeleteRecord(ctx, record.RecordID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransactionalRecord)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "DeleteRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_TypeFlipRestatesSign() {
	ctx := context.Background()
	record := &domain.Record{
		RecordID:   uuid.NewString(),
		Amount:     decimal.NewFromInt(75),
		RecordType: domain.Income,
		AccountID:  suite.account.AccountID,
		UserID:     suite.userID,
	}
	newType := string(domain.Expense)

	suite.mockRecordRepo.On("FindRecordByID", ctx, record.RecordID).Return(record, nil).Once()

	var updatedRecord domain.Record
	suite.mockRecordRepo.On("UpdateRecord", ctx, mock.AnythingOfType("domain.Record")).
		Run(func(args mock.Arguments) {
			updatedRecord = args.Get(1).(domain.Record)
		}).Return(nil).Once()

	_, err := suite.service.UpdateRecord(ctx, record.RecordID, dto.UpdateRecordRequest{RecordType: &newType}, suite.userID)

	suite.Require().NoError(err)
	// Flipping the type alone must restate the sign on the unchanged magnitude.
	suite.Equal(domain.Expense, updatedRecord.RecordType)
	suite.True(updatedRecord.Amount.Equal(decimal.NewFromInt(-75)))
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_NotOwner() {
	ctx := context.Background()
	record := &domain.Record{
		RecordID:   uuid.NewString(),
		RecordType: domain.Income,
		UserID:     uuid.NewString(),
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, record.RecordID).Return(record, nil).Once()

	_, err := suite.service.UpdateRecord(ctx, record.RecordID, dto.UpdateRecordRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_Success() {
	ctx := context.Background()
	record := &domain.Record{
		RecordID:   uuid.NewString(),
		RecordType: domain.Expense,
		UserID:     suite.userID,
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, record.RecordID).Return(record, nil).Once()
	suite.mockRecordRepo.On("DeleteRecord", ctx, record.RecordID).Return(nil).Once()

	err := suite.service.DeleteRecord(ctx, record.RecordID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestListRecords_UnownedAccount() {
	ctx := context.Background()
	foreignAccount := suite.account
	foreignAccount.UserID = uuid.NewString()
	params := dto.ListRecordsParams{AccountID: foreignAccount.AccountID, Limit: 10}

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreignAccount.AccountID).Return(&foreignAccount, nil).Once()

	_, err := suite.service.ListRecords(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "ListRecordsByAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
