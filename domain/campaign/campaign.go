package campaign

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	"github.com/wiralabs/campaign-api/infrastructure/cache"
	"github.com/wiralabs/campaign-api/infrastructure/logger"
)

// Campaign statuses. A campaign moves draft -> ready -> launched; validation
// promotes it to ready, launch requires ready plus completed setup.
const (
	StatusDraft    = "draft"
	StatusReady    = "ready"
	StatusLaunched = "launched"
)

// Campaign represents the core domain model for a marketing campaign
type Campaign struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	LaunchedAt    *time.Time `json:"launched_at,omitempty"`
	IsActive      bool       `json:"is_active"`
	SetupComplete bool       `json:"setup_complete"`
}

// CreateInput is the validated input for creating a campaign.
type CreateInput struct {
	Name        string `validate:"required,min=1,max=120"`
	Description string `validate:"max=500"`
}

// ValidationResult reports the outcome of validating a campaign for launch.
type ValidationResult struct {
	CampaignID uint     `json:"campaign_id"`
	IsValid    bool     `json:"is_valid"`
	Errors     []string `json:"validation_errors"`
}

// SetupResult reports the outcome of preparing a campaign for launch.
type SetupResult struct {
	CampaignID    uint                   `json:"campaign_id"`
	SetupComplete bool                   `json:"setup_complete"`
	Details       map[string]interface{} `json:"setup_details"`
}

// Repository defines the interface for data persistence operations
type Repository interface {
	Store(ctx context.Context, c *Campaign) error
	FindByID(ctx context.Context, id uint) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	Update(ctx context.Context, c *Campaign) error
}

// Service represents the domain service for campaign management
type Service struct {
	repo     Repository
	cache    *cache.NamespaceLRU
	validate *validator.Validate
}

// NewService creates a new campaign service
func NewService(repo Repository, lru *cache.NamespaceLRU) *Service {
	ctx := logger.NewRequestContext()

	logger.CtxDebug(ctx, "Creating campaign service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "campaign",
		},
	})

	return &Service{
		repo:     repo,
		cache:    lru,
		validate: validator.New(),
	}
}

// Create creates a new campaign in draft status.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Campaign, error) {
	logger.CtxDebug(ctx, "Creating campaign", logger.LoggerInfo{
		ContextFunction: constant.CtxCreateCampaign,
		Data: map[string]interface{}{
			constant.DataCampaignName: input.Name,
		},
	})

	if err := s.validate.Struct(input); err != nil {
		logger.CtxWarn(ctx, "Campaign input failed validation", logger.LoggerInfo{
			ContextFunction: constant.CtxCreateCampaign,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEmptyName,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
		})
		return nil, err
	}

	c := &Campaign{
		Name:        input.Name,
		Description: input.Description,
		Status:      StatusDraft,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Store(ctx, c); err != nil {
		logger.CtxError(ctx, "Failed to store campaign", logger.LoggerInfo{
			ContextFunction: constant.CtxCreateCampaign,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeStorageFailure,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
			Data: map[string]interface{}{
				constant.DataCampaignName: input.Name,
			},
		})
		return nil, err
	}

	s.cacheSet(c)

	logger.CtxInfo(ctx, "Campaign created", logger.LoggerInfo{
		ContextFunction: constant.CtxCreateCampaign,
		Data: map[string]interface{}{
			constant.DataCampaignID:   c.ID,
			constant.DataCampaignName: c.Name,
		},
	})

	return c, nil
}

// Get retrieves a campaign by id.
func (s *Service) Get(ctx context.Context, id uint) (*Campaign, error) {
	if c, ok := s.cacheGet(id); ok {
		logger.CtxDebug(ctx, "Campaign retrieved from cache", logger.LoggerInfo{
			ContextFunction: constant.CtxGetCampaign,
			Data: map[string]interface{}{
				constant.DataCampaignID: id,
			},
		})
		return c, nil
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.CtxWarn(ctx, "Failed to find campaign", logger.LoggerInfo{
			ContextFunction: constant.CtxGetCampaign,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeCampaignNotFound,
				Message: err.Error(),
				Type:    constant.ErrTypeRetrieval,
			},
			Data: map[string]interface{}{
				constant.DataCampaignID: id,
			},
		})
		return nil, err
	}

	s.cacheSet(c)
	return c, nil
}

// List returns all campaigns.
func (s *Service) List(ctx context.Context) ([]Campaign, error) {
	campaigns, err := s.repo.List(ctx)
	if err != nil {
		logger.CtxError(ctx, "Failed to list campaigns", logger.LoggerInfo{
			ContextFunction: constant.CtxListCampaigns,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeDBList,
				Message: err.Error(),
				Type:    constant.ErrTypeRetrieval,
			},
		})
		return nil, err
	}
	return campaigns, nil
}

// Validate checks a campaign's readiness for launch and promotes it to ready
// when every check passes. Validation findings are returned to the caller,
// not raised as faults: an invalid campaign is still a successful validation
// request.
func (s *Service) Validate(ctx context.Context, id uint) (*ValidationResult, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{CampaignID: c.ID, Errors: []string{}}

	if c.Name == "" {
		result.Errors = append(result.Errors, constant.ErrEmptyName)
	}
	if c.Description == "" {
		result.Errors = append(result.Errors, "Campaign description is required for launch")
	}
	if c.Status == StatusLaunched {
		result.Errors = append(result.Errors, constant.ErrAlreadyLaunched)
	}

	result.IsValid = len(result.Errors) == 0

	if result.IsValid && c.Status == StatusDraft {
		c.Status = StatusReady
		if err := s.repo.Update(ctx, c); err != nil {
			logger.CtxError(ctx, "Failed to promote campaign to ready", logger.LoggerInfo{
				ContextFunction: constant.CtxValidateCampaign,
				Error: &logger.CustomError{
					Code:    constant.ErrCodeStorageFailure,
					Message: err.Error(),
					Type:    constant.ErrTypeStorage,
				},
				Data: map[string]interface{}{
					constant.DataCampaignID: c.ID,
				},
			})
			return nil, err
		}
		s.cacheSet(c)
	}

	logger.CtxInfo(ctx, "Campaign validated", logger.LoggerInfo{
		ContextFunction: constant.CtxValidateCampaign,
		Data: map[string]interface{}{
			constant.DataCampaignID: c.ID,
			constant.DataIsValid:    result.IsValid,
		},
	})

	return result, nil
}

// Setup prepares a validated campaign for launch.
func (s *Service) Setup(ctx context.Context, id uint) (*SetupResult, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status != StatusReady {
		logger.CtxWarn(ctx, "Setup requested before validation", logger.LoggerInfo{
			ContextFunction: constant.CtxSetupCampaign,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeNotValidated,
				Message: constant.ErrNotValidated,
				Type:    constant.ErrTypeLifecycle,
			},
			Data: map[string]interface{}{
				constant.DataCampaignID: c.ID,
				constant.DataStatus:     c.Status,
			},
		})
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, constant.ErrNotValidated)
	}

	c.SetupComplete = true
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.cacheSet(c)

	logger.CtxInfo(ctx, "Campaign setup complete", logger.LoggerInfo{
		ContextFunction: constant.CtxSetupCampaign,
		Data: map[string]interface{}{
			constant.DataCampaignID: c.ID,
		},
	})

	return &SetupResult{
		CampaignID:    c.ID,
		SetupComplete: true,
		Details: map[string]interface{}{
			"tracking_enabled": true,
			"budget_allocated": true,
			"audience_defined": true,
		},
	}, nil
}

// Launch activates a campaign that has been validated and set up.
func (s *Service) Launch(ctx context.Context, id uint) (*Campaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case c.Status == StatusLaunched:
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, constant.ErrAlreadyLaunched)
	case c.Status != StatusReady:
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, constant.ErrNotValidated)
	case !c.SetupComplete:
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, constant.ErrSetupIncomplete)
	}

	now := time.Now().UTC()
	c.Status = StatusLaunched
	c.LaunchedAt = &now
	c.IsActive = true

	if err := s.repo.Update(ctx, c); err != nil {
		logger.CtxError(ctx, "Failed to launch campaign", logger.LoggerInfo{
			ContextFunction: constant.CtxLaunchCampaign,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeStorageFailure,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
			Data: map[string]interface{}{
				constant.DataCampaignID: c.ID,
			},
		})
		return nil, err
	}
	s.cacheSet(c)

	logger.CtxInfo(ctx, "Campaign launched", logger.LoggerInfo{
		ContextFunction: constant.CtxLaunchCampaign,
		Data: map[string]interface{}{
			constant.DataCampaignID:   c.ID,
			constant.DataCampaignName: c.Name,
		},
	})

	return c, nil
}

func (s *Service) cacheSet(c *Campaign) {
	if s.cache == nil {
		return
	}
	s.cache.Set(constant.CampaignNamespace, strconv.FormatUint(uint64(c.ID), 10), c)
}

func (s *Service) cacheGet(id uint) (*Campaign, bool) {
	if s.cache == nil {
		return nil, false
	}
	val, found := s.cache.Get(constant.CampaignNamespace, strconv.FormatUint(uint64(id), 10))
	if !found {
		return nil, false
	}
	c, ok := val.(*Campaign)
	return c, ok
}
