package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/handlers"
	"github.com/monetario-app/monetario/internal/middleware"
)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferService) GetTransferByID(ctx context.Context, transferID string, requestingUserID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferService) ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransfersResponse), args.Error(1)
}

func (m *MockTransferService) UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest, requestingUserID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferService) DeleteTransfer(ctx context.Context, transferID string, requestingUserID string) error {
	args := m.Called(ctx, transferID, requestingUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Test Suite ---
type TransferHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTransferService *MockTransferService
	jwtSecret           string
	userID              string
}

// generateTestToken creates a signed JWT for the test user.
func (suite *TransferHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "monetario-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransferService = new(MockTransferService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransferRoutes(v1, suite.mockTransferService)
}

// do issues an authenticated request against the suite router.
func (suite *TransferHandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransferHandlerTestSuite) sampleTransfer() *domain.Transfer {
	transferID := uuid.NewString()
	now := time.Now().UTC()
	transfer := &domain.Transfer{
		TransferID:      transferID,
		Amount:          decimal.NewFromInt(150),
		CurrencyID:      uuid.NewString(),
		SourceAccountID: uuid.NewString(),
		TargetAccountID: uuid.NewString(),
		UserID:          suite.userID,
		Date:            now,
		Description:     "rent",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.userID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.userID,
		},
	}
	pair := transfer.DeriveRecords(uuid.NewString(), uuid.NewString())
	transfer.Records = &pair
	return transfer
}

// --- Test Cases ---

func (suite *TransferHandlerTestSuite) TestCreateTransfer_Created() {
	expected := suite.sampleTransfer()
	reqBody := dto.CreateTransferRequest{
		Amount:          expected.Amount,
		CurrencyID:      expected.CurrencyID,
		SourceAccountID: expected.SourceAccountID,
		TargetAccountID: expected.TargetAccountID,
		Date:            expected.Date,
		Description:     expected.Description,
	}

	suite.mockTransferService.On("CreateTransfer",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
			return r.SourceAccountID == reqBody.SourceAccountID &&
				r.TargetAccountID == reqBody.TargetAccountID &&
				r.Amount.Equal(reqBody.Amount)
		}),
		suite.userID,
	).Return(expected, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransferID, resp.TransferID)
	suite.Require().NotNil(resp.Records)
	suite.True(resp.Records.Source.Amount.Equal(decimal.NewFromInt(-150)))
	suite.True(resp.Records.Target.Amount.Equal(decimal.NewFromInt(150)))
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_ValidationError() {
	reqBody := dto.CreateTransferRequest{
		Amount:          decimal.NewFromInt(50),
		CurrencyID:      uuid.NewString(),
		SourceAccountID: "acc-1",
		TargetAccountID: "acc-1",
		Date:            time.Now().UTC(),
	}

	suite.mockTransferService.On("CreateTransfer", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: source and target accounts must differ", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "source and target accounts must differ")
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader([]byte(`{"amount":`)))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "CreateTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestGetTransfer_NotFound() {
	transferID := uuid.NewString()

	suite.mockTransferService.On("GetTransferByID", mock.Anything, transferID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/transfers/"+transferID, nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Resource not found", resp["error"])
}

func (suite *TransferHandlerTestSuite) TestGetTransfer_Success() {
	expected := suite.sampleTransfer()

	suite.mockTransferService.On("GetTransferByID", mock.Anything, expected.TransferID, suite.userID).
		Return(expected, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transfers/"+expected.TransferID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransferID, resp.TransferID)
	suite.Equal(suite.userID, resp.UserID)
}

func (suite *TransferHandlerTestSuite) TestDeleteTransfer_NoContent() {
	transferID := uuid.NewString()

	suite.mockTransferService.On("DeleteTransfer", mock.Anything, transferID, suite.userID).
		Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transfers/"+transferID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestDeleteTransfer_NotFound() {
	transferID := uuid.NewString()

	suite.mockTransferService.On("DeleteTransfer", mock.Anything, transferID, suite.userID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transfers/"+transferID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransferHandlerTestSuite) TestUpdateTransfer_Success() {
	expected := suite.sampleTransfer()
	reqBody := dto.UpdateTransferRequest{
		Amount:          expected.Amount,
		CurrencyID:      expected.CurrencyID,
		SourceAccountID: expected.SourceAccountID,
		TargetAccountID: expected.TargetAccountID,
		Date:            expected.Date,
		Description:     "rent, reposted",
	}

	suite.mockTransferService.On("UpdateTransfer", mock.Anything, expected.TransferID, mock.Anything, suite.userID).
		Return(expected, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/transfers/"+expected.TransferID, reqBody)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransferID, resp.TransferID)
}

func (suite *TransferHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transfers", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "ListTransfers", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestTransferHandler(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
