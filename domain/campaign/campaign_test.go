package campaign

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wiralabs/campaign-api/apperr"
)

// Mock repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Store(ctx context.Context, c *Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (*Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Campaign), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Campaign), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c *Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func TestCreate_EmptyName(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	// Act
	c, err := service.Create(context.Background(), CreateInput{Name: ""})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, c)
	kind, status := apperr.Classify(err)
	assert.Equal(t, apperr.KindValidation, kind)
	assert.Equal(t, 400, status)
	mockRepo.AssertNotCalled(t, "Store")
}

func TestCreate_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	mockRepo.On("Store", mock.Anything, mock.MatchedBy(func(c *Campaign) bool {
		return c.Name == "spring-sale" && c.Status == StatusDraft
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Campaign).ID = 1
	}).Return(nil)

	// Act
	c, err := service.Create(context.Background(), CreateInput{Name: "spring-sale", Description: "Spring promo"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), c.ID)
	assert.Equal(t, StatusDraft, c.Status)
	assert.False(t, c.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	mockRepo.On("FindByID", mock.Anything, uint(42)).
		Return(nil, apperr.Mark(errors.New("campaign 42"), apperr.KindNotFound))

	// Act
	c, err := service.Get(context.Background(), 42)

	// Assert
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestValidate_PromotesDraftToReady(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 3, Name: "spring-sale", Description: "Spring promo", Status: StatusDraft, CreatedAt: time.Now()}
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Campaign) bool {
		return c.Status == StatusReady
	})).Return(nil)

	// Act
	result, err := service.Validate(context.Background(), 3)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	mockRepo.AssertExpectations(t)
}

func TestValidate_ReportsMissingDescription(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 3, Name: "spring-sale", Status: StatusDraft}
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)

	// Act
	result, err := service.Validate(context.Background(), 3)

	// Assert: validation findings are data, not faults
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestSetup_RequiresValidation(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 4, Name: "x", Description: "y", Status: StatusDraft}
	mockRepo.On("FindByID", mock.Anything, uint(4)).Return(stored, nil)

	// Act
	result, err := service.Setup(context.Background(), 4)

	// Assert
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestSetup_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 4, Name: "x", Description: "y", Status: StatusReady}
	mockRepo.On("FindByID", mock.Anything, uint(4)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Campaign) bool {
		return c.SetupComplete
	})).Return(nil)

	// Act
	result, err := service.Setup(context.Background(), 4)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.SetupComplete)
	assert.NotEmpty(t, result.Details)
}

func TestLaunch_RequiresSetup(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 5, Name: "x", Description: "y", Status: StatusReady, SetupComplete: false}
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)

	// Act
	c, err := service.Launch(context.Background(), 5)

	// Assert
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	kind, status := apperr.Classify(err)
	assert.Equal(t, apperr.KindValidation, kind)
	assert.Equal(t, 400, status)
}

func TestLaunch_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 5, Name: "x", Description: "y", Status: StatusReady, SetupComplete: true}
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Campaign) bool {
		return c.Status == StatusLaunched && c.IsActive && c.LaunchedAt != nil
	})).Return(nil)

	// Act
	c, err := service.Launch(context.Background(), 5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StatusLaunched, c.Status)
	assert.True(t, c.IsActive)
	require.NotNil(t, c.LaunchedAt)
	mockRepo.AssertExpectations(t)
}

func TestLaunch_AlreadyLaunched(t *testing.T) {
	// Arrange
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil)

	stored := &Campaign{ID: 6, Name: "x", Description: "y", Status: StatusLaunched, SetupComplete: true}
	mockRepo.On("FindByID", mock.Anything, uint(6)).Return(stored, nil)

	// Act
	c, err := service.Launch(context.Background(), 6)

	// Assert
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	mockRepo.AssertNotCalled(t, "Update")
}
