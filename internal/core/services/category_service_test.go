package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/core/services"
	"github.com/monetario-app/monetario/internal/dto"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	MockCategoryReader
}

// Ensure MockCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.GroupCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.GroupCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserReader)(nil)

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserReader) ListUsersByGroup(ctx context.Context, groupID string) ([]domain.User, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockUserRepo     *MockUserReader
	service          portssvc.CategorySvcFacade
	ctx              context.Context

	userID  string
	groupID string
	member  domain.User
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.mockUserRepo = new(MockUserReader)
	s.service = services.NewCategoryService(s.mockCategoryRepo, s.mockUserRepo)
	s.ctx = context.Background()

	s.userID = uuid.NewString()
	s.groupID = uuid.NewString()
	s.member = domain.User{
		UserID:  s.userID,
		Email:   "member@example.com",
		Active:  true,
		GroupID: s.groupID,
	}
}

// --- CreateCategory ---

func (s *CategoryServiceTestSuite) TestCreateCategory_Success() {
	req := dto.CreateCategoryRequest{
		Name:         "Groceries",
		CategoryType: domain.CategoryExpense,
	}

	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()

	var saved domain.GroupCategory
	s.mockCategoryRepo.On("SaveCategory", s.ctx, mock.AnythingOfType("domain.GroupCategory")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.GroupCategory)
		}).
		Return(nil).Once()

	category, err := s.service.CreateCategory(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(category)
	s.Equal("Groceries", category.Name)
	s.Equal(domain.CategoryExpense, category.CategoryType)
	s.Equal(s.groupID, category.GroupID)
	s.Empty(category.ParentID)
	s.Equal(category.CategoryID, saved.CategoryID)
	s.mockCategoryRepo.AssertExpectations(s.T())
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceTestSuite) TestCreateCategory_WithParent() {
	parentID := uuid.NewString()
	parent := domain.GroupCategory{
		CategoryID:   parentID,
		Name:         "Food",
		CategoryType: domain.CategoryExpense,
		GroupID:      s.groupID,
	}
	req := dto.CreateCategoryRequest{
		Name:         "Restaurants",
		CategoryType: domain.CategoryExpense,
		ParentID:     &parentID,
	}

	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, parentID).Return(&parent, nil).Once()
	s.mockCategoryRepo.On("SaveCategory", s.ctx, mock.AnythingOfType("domain.GroupCategory")).Return(nil).Once()

	category, err := s.service.CreateCategory(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Equal(parentID, category.ParentID)
	s.mockCategoryRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceTestSuite) TestCreateCategory_ParentInOtherGroup() {
	parentID := uuid.NewString()
	parent := domain.GroupCategory{
		CategoryID:   parentID,
		Name:         "Food",
		CategoryType: domain.CategoryExpense,
		GroupID:      uuid.NewString(),
	}
	req := dto.CreateCategoryRequest{
		Name:         "Restaurants",
		CategoryType: domain.CategoryExpense,
		ParentID:     &parentID,
	}

	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, parentID).Return(&parent, nil).Once()

	category, err := s.service.CreateCategory(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.Nil(category)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCategoryRepo.AssertNotCalled(s.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_ParentTypeMismatch() {
	parentID := uuid.NewString()
	parent := domain.GroupCategory{
		CategoryID:   parentID,
		Name:         "Salary",
		CategoryType: domain.CategoryIncome,
		GroupID:      s.groupID,
	}
	req := dto.CreateCategoryRequest{
		Name:         "Restaurants",
		CategoryType: domain.CategoryExpense,
		ParentID:     &parentID,
	}

	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, parentID).Return(&parent, nil).Once()

	category, err := s.service.CreateCategory(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.Nil(category)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCategoryRepo.AssertNotCalled(s.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_UserWithoutGroup() {
	lonely := domain.User{UserID: s.userID, Active: true}
	req := dto.CreateCategoryRequest{
		Name:         "Groceries",
		CategoryType: domain.CategoryExpense,
	}

	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&lonely, nil).Once()

	category, err := s.service.CreateCategory(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.Nil(category)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCategoryRepo.AssertNotCalled(s.T(), "SaveCategory", mock.Anything, mock.Anything)
}

// --- UpdateCategory ---

func (s *CategoryServiceTestSuite) TestUpdateCategory_OtherGroupHidden() {
	categoryID := uuid.NewString()
	foreign := domain.GroupCategory{
		CategoryID:   categoryID,
		Name:         "Groceries",
		CategoryType: domain.CategoryExpense,
		GroupID:      uuid.NewString(),
	}
	newName := "Food"
	req := dto.UpdateCategoryRequest{Name: &newName}

	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&foreign, nil).Once()
	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()

	category, err := s.service.UpdateCategory(s.ctx, categoryID, req, s.userID)

	s.Require().Error(err)
	s.Nil(category)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockCategoryRepo.AssertNotCalled(s.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_ClearParent() {
	categoryID := uuid.NewString()
	existing := domain.GroupCategory{
		CategoryID:   categoryID,
		Name:         "Restaurants",
		CategoryType: domain.CategoryExpense,
		GroupID:      s.groupID,
		ParentID:     uuid.NewString(),
	}
	empty := ""
	req := dto.UpdateCategoryRequest{ParentID: &empty}

	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&existing, nil).Once()
	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()

	var updated domain.GroupCategory
	s.mockCategoryRepo.On("UpdateCategory", s.ctx, mock.AnythingOfType("domain.GroupCategory")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.GroupCategory)
		}).
		Return(nil).Once()

	category, err := s.service.UpdateCategory(s.ctx, categoryID, req, s.userID)

	s.Require().NoError(err)
	s.Empty(category.ParentID)
	s.Empty(updated.ParentID)
	s.mockCategoryRepo.AssertExpectations(s.T())
}

// --- DeleteCategory ---

func (s *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	categoryID := uuid.NewString()
	existing := domain.GroupCategory{
		CategoryID:   categoryID,
		Name:         "Groceries",
		CategoryType: domain.CategoryExpense,
		GroupID:      s.groupID,
	}

	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&existing, nil).Once()
	s.mockUserRepo.On("FindUserByID", s.ctx, s.userID).Return(&s.member, nil).Once()
	s.mockCategoryRepo.On("DeleteCategory", s.ctx, categoryID).Return(nil).Once()

	err := s.service.DeleteCategory(s.ctx, categoryID, s.userID)

	s.Require().NoError(err)
	s.mockCategoryRepo.AssertExpectations(s.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
