package db

import (
	"context"
	"fmt"
	"time"

	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	"github.com/wiralabs/campaign-api/domain/campaign"
	appLogger "github.com/wiralabs/campaign-api/infrastructure/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SQLiteRepository implements campaign.Repository
type SQLiteRepository struct {
	db *gorm.DB
}

// CampaignModel is the GORM model for the campaign entity
type CampaignModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Description   string
	Status        string `gorm:"not null;default:draft"`
	CreatedAt     time.Time
	LaunchedAt    *time.Time
	IsActive      bool
	SetupComplete bool
}

// GormLogger implements GORM's logger.Interface
type GormLogger struct{}

// LogMode implements the log.Interface method
func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return l
}

// Info logs info messages
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxInfo(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataData: data,
		},
	})
}

// Warn logs warn messages
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxWarn(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataData: data,
		},
	})
}

// Error logs error messages
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxError(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeDBGeneral,
			Message: msg,
			Type:    constant.ErrTypeDB,
		},
		Data: map[string]interface{}{
			constant.DataData: data,
		},
	})
}

// Trace logs SQL operations
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && err != gorm.ErrRecordNotFound {
		appLogger.CtxError(ctx, "SQL error", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDB,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBGeneral,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataElapsed: elapsed.String(),
				constant.DataRows:    rows,
				constant.DataSQL:     sql,
			},
		})
		return
	}

	appLogger.CtxDebug(ctx, "SQL query", appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataElapsed: elapsed.String(),
			constant.DataRows:    rows,
			constant.DataSQL:     sql,
		},
	})
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	ctx := appLogger.NewRequestContext()

	appLogger.CtxDebug(ctx, "Opening SQLite database", appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataPath: dbPath,
		},
	})

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: &GormLogger{},
	})
	if err != nil {
		appLogger.CtxError(ctx, "Failed to open database", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDB,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBOpen,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataPath: dbPath,
			},
		})
		return nil, fmt.Errorf("%w: %v", apperr.ErrDatabaseUnavailable, err)
	}

	// Auto-migrate the schema
	if err := gdb.AutoMigrate(&CampaignModel{}); err != nil {
		appLogger.CtxError(ctx, "Failed to migrate database schema", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDB,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBMigrate,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return nil, fmt.Errorf("%w: %v", apperr.ErrDatabaseOperational, err)
	}

	appLogger.CtxInfo(ctx, "Database initialized successfully", appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataPath: dbPath,
		},
	})

	return &SQLiteRepository{db: gdb}, nil
}

// Store persists a campaign to the database
func (r *SQLiteRepository) Store(ctx context.Context, c *campaign.Campaign) error {
	model := CampaignModel{
		Name:          c.Name,
		Description:   c.Description,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		LaunchedAt:    c.LaunchedAt,
		IsActive:      c.IsActive,
		SetupComplete: c.SetupComplete,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		appLogger.CtxError(ctx, "Failed to insert campaign", appLogger.LoggerInfo{
			ContextFunction: constant.CtxStore,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBInsert,
				Message: result.Error.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataCampaignName: c.Name,
			},
		})
		return result.Error
	}

	c.ID = model.ID

	appLogger.CtxInfo(ctx, "Campaign stored successfully", appLogger.LoggerInfo{
		ContextFunction: constant.CtxStore,
		Data: map[string]interface{}{
			constant.DataCampaignID:   c.ID,
			constant.DataCampaignName: c.Name,
		},
	})

	return nil
}

// FindByID retrieves a campaign by its id. A missing row is reported as
// apperr.ErrNotFound so the boundary classifies it as a 404.
func (r *SQLiteRepository) FindByID(ctx context.Context, id uint) (*campaign.Campaign, error) {
	var model CampaignModel

	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, description, status, created_at, launched_at, is_active, setup_complete
		 FROM campaign_models WHERE id = ? LIMIT 1`, id).Rows()
	if err != nil {
		appLogger.CtxError(ctx, "Database error while looking up campaign", appLogger.LoggerInfo{
			ContextFunction: constant.CtxFindByID,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBLookup,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataCampaignID: id,
			},
		})
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		appLogger.CtxInfo(ctx, "Campaign not found", appLogger.LoggerInfo{
			ContextFunction: constant.CtxFindByID,
			Data: map[string]interface{}{
				constant.DataCampaignID: id,
			},
		})
		return nil, fmt.Errorf("%w: campaign %d", apperr.ErrNotFound, id)
	}

	if err := r.db.ScanRows(rows, &model); err != nil {
		appLogger.CtxError(ctx, "Failed to scan database rows", appLogger.LoggerInfo{
			ContextFunction: constant.CtxFindByID,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBScanRows,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataCampaignID: id,
			},
		})
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return toDomain(&model), nil
}

// List returns all campaigns ordered by creation time
func (r *SQLiteRepository) List(ctx context.Context) ([]campaign.Campaign, error) {
	var models []CampaignModel

	result := r.db.WithContext(ctx).Raw(
		`SELECT id, name, description, status, created_at, launched_at, is_active, setup_complete
		 FROM campaign_models ORDER BY created_at`).Scan(&models)
	if result.Error != nil {
		appLogger.CtxError(ctx, "Failed to list campaigns", appLogger.LoggerInfo{
			ContextFunction: constant.CtxList,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBList,
				Message: result.Error.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return nil, result.Error
	}

	campaigns := make([]campaign.Campaign, 0, len(models))
	for i := range models {
		campaigns = append(campaigns, *toDomain(&models[i]))
	}
	return campaigns, nil
}

// Update persists campaign state changes
func (r *SQLiteRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE campaign_models
		 SET name = ?, description = ?, status = ?, launched_at = ?, is_active = ?, setup_complete = ?
		 WHERE id = ?`,
		c.Name, c.Description, c.Status, c.LaunchedAt, c.IsActive, c.SetupComplete, c.ID)

	if result.Error != nil {
		appLogger.CtxError(ctx, "Failed to update campaign", appLogger.LoggerInfo{
			ContextFunction: constant.CtxUpdate,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBUpdate,
				Message: result.Error.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataCampaignID: c.ID,
			},
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		appLogger.CtxWarn(ctx, "No rows updated", appLogger.LoggerInfo{
			ContextFunction: constant.CtxUpdate,
			Data: map[string]interface{}{
				constant.DataCampaignID:   c.ID,
				constant.DataRowsAffected: 0,
			},
		})
		return fmt.Errorf("%w: campaign %d", apperr.ErrNotFound, c.ID)
	}

	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	ctx := context.Background()
	sqlDB, err := r.db.DB()
	if err != nil {
		appLogger.CtxError(ctx, "Failed to get database connection", appLogger.LoggerInfo{
			ContextFunction: constant.CtxClose,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBClose,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return err
	}

	appLogger.CtxInfo(ctx, "Closing database connection", appLogger.LoggerInfo{
		ContextFunction: constant.CtxClose,
	})

	return sqlDB.Close()
}

func toDomain(m *CampaignModel) *campaign.Campaign {
	return &campaign.Campaign{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		LaunchedAt:    m.LaunchedAt,
		IsActive:      m.IsActive,
		SetupComplete: m.SetupComplete,
	}
}
