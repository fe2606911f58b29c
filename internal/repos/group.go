package repos

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/roomline-org/roomline-admin/internal/logger"
    "github.com/roomline-org/roomline-admin/internal/types"
)

// GroupRepo defines the interface for interacting with the Group model.
type GroupRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, groups []*types.Group) ([]*types.Group, error)

    // READ
    GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Group, error)
    GetAllSortedByName(ctx context.Context, tx *gorm.DB) ([]*types.Group, error)
    Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type groupRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
    repoLog := baseLog.With("repo", "GroupRepo")
    return &groupRepo{db: db, log: repoLog}
}

// ----------------------------------------------------------------
// CREATE
// ----------------------------------------------------------------

func (gr *groupRepo) Create(ctx context.Context, tx *gorm.DB, groups []*types.Group) ([]*types.Group, error) {
    gr.log.Info("Starting Create Groups now...")
    transaction := tx
    if transaction == nil {
        transaction = gr.db
    }
    if len(groups) == 0 {
        gr.log.Debug("No groups provided, returning empty slice")
        return []*types.Group{}, nil
    }
    if err := transaction.WithContext(ctx).Create(&groups).Error; err != nil {
        gr.log.Error("Failed to create groups", "error", err)
        return nil, err
    }
    gr.log.Info("Successfully created groups", "count", len(groups))
    return groups, nil
}

// ----------------------------------------------------------------
// READ
// ----------------------------------------------------------------

// GetByName returns (nil, nil) when no group carries the given name, so
// callers can branch on existence without unwrapping gorm errors.
func (gr *groupRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Group, error) {
    gr.log.Info("Starting GetByName for groups...", "name", name)
    transaction := tx
    if transaction == nil {
        transaction = gr.db
    }
    var result types.Group
    err := transaction.WithContext(ctx).Where("name = ?", name).First(&result).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        gr.log.Debug("No group found by name", "name", name)
        return nil, nil
    }
    if err != nil {
        gr.log.Error("Failed to fetch group by name", "name", name, "error", err)
        return nil, err
    }
    gr.log.Debug("Group fetched by name", "group", result)
    return &result, nil
}

func (gr *groupRepo) GetAllSortedByName(ctx context.Context, tx *gorm.DB) ([]*types.Group, error) {
    gr.log.Info("Starting GetAllSortedByName for groups...")
    transaction := tx
    if transaction == nil {
        transaction = gr.db
    }
    var results []*types.Group
    if err := transaction.WithContext(ctx).Order("name asc").Find(&results).Error; err != nil {
        gr.log.Error("Failed to fetch all groups", "error", err)
        return nil, err
    }
    gr.log.Info("Successfully fetched all groups", "count", len(results))
    return results, nil
}

func (gr *groupRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
    gr.log.Info("Starting Count for groups...")
    transaction := tx
    if transaction == nil {
        transaction = gr.db
    }
    var count int64
    if err := transaction.WithContext(ctx).Model(&types.Group{}).Count(&count).Error; err != nil {
        gr.log.Error("Failed to count groups", "error", err)
        return 0, err
    }
    gr.log.Debug("Groups counted", "count", count)
    return count, nil
}
