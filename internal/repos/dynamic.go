package repos

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/roomline-org/roomline-admin/internal/logger"
    "github.com/roomline-org/roomline-admin/internal/types"
)

// DynamicSectionRepo defines the interface for interacting with the
// DynamicSection model. Patterned after the other repos.
type DynamicSectionRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, sections []*types.DynamicSection) ([]*types.DynamicSection, error)

    // READ
    GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.DynamicSection, error)
}

// DynamicFieldRepo defines the interface for interacting with the
// DynamicField model.
type DynamicFieldRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, fields []*types.DynamicField) ([]*types.DynamicField, error)

    // READ
    GetBySectionAndName(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, name string) (*types.DynamicField, error)

    // UPDATE
    Update(ctx context.Context, tx *gorm.DB, fields []*types.DynamicField) ([]*types.DynamicField, error)
}

type dynamicSectionRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewDynamicSectionRepo(db *gorm.DB, baseLog *logger.Logger) DynamicSectionRepo {
    repoLog := baseLog.With("repo", "DynamicSectionRepo")
    return &dynamicSectionRepo{db: db, log: repoLog}
}

func (dr *dynamicSectionRepo) Create(ctx context.Context, tx *gorm.DB, sections []*types.DynamicSection) ([]*types.DynamicSection, error) {
    dr.log.Info("Starting Create DynamicSections now...")
    transaction := tx
    if transaction == nil {
        transaction = dr.db
    }
    if len(sections) == 0 {
        dr.log.Debug("No sections provided, returning empty slice")
        return []*types.DynamicSection{}, nil
    }
    if err := transaction.WithContext(ctx).Create(&sections).Error; err != nil {
        dr.log.Error("Failed to create sections", "error", err)
        return nil, err
    }
    dr.log.Info("Successfully created sections", "count", len(sections))
    return sections, nil
}

// GetByName returns (nil, nil) when the section does not exist.
func (dr *dynamicSectionRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.DynamicSection, error) {
    dr.log.Info("Starting GetByName for dynamic sections...", "name", name)
    transaction := tx
    if transaction == nil {
        transaction = dr.db
    }
    var result types.DynamicSection
    err := transaction.WithContext(ctx).Where("name = ?", name).First(&result).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        dr.log.Debug("No dynamic section found by name", "name", name)
        return nil, nil
    }
    if err != nil {
        dr.log.Error("Failed to fetch dynamic section by name", "name", name, "error", err)
        return nil, err
    }
    return &result, nil
}

type dynamicFieldRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewDynamicFieldRepo(db *gorm.DB, baseLog *logger.Logger) DynamicFieldRepo {
    repoLog := baseLog.With("repo", "DynamicFieldRepo")
    return &dynamicFieldRepo{db: db, log: repoLog}
}

func (dr *dynamicFieldRepo) Create(ctx context.Context, tx *gorm.DB, fields []*types.DynamicField) ([]*types.DynamicField, error) {
    dr.log.Info("Starting Create DynamicFields now...")
    transaction := tx
    if transaction == nil {
        transaction = dr.db
    }
    if len(fields) == 0 {
        dr.log.Debug("No fields provided, returning empty slice")
        return []*types.DynamicField{}, nil
    }
    if err := transaction.WithContext(ctx).Create(&fields).Error; err != nil {
        dr.log.Error("Failed to create fields", "error", err)
        return nil, err
    }
    dr.log.Info("Successfully created fields", "count", len(fields))
    return fields, nil
}

// GetBySectionAndName returns (nil, nil) when the field does not exist.
func (dr *dynamicFieldRepo) GetBySectionAndName(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, name string) (*types.DynamicField, error) {
    dr.log.Info("Starting GetBySectionAndName for dynamic fields...", "sectionID", sectionID, "name", name)
    transaction := tx
    if transaction == nil {
        transaction = dr.db
    }
    var result types.DynamicField
    err := transaction.WithContext(ctx).
        Where("section_id = ? AND name = ?", sectionID, name).
        First(&result).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        dr.log.Debug("No dynamic field found", "sectionID", sectionID, "name", name)
        return nil, nil
    }
    if err != nil {
        dr.log.Error("Failed to fetch dynamic field", "sectionID", sectionID, "name", name, "error", err)
        return nil, err
    }
    return &result, nil
}

func (dr *dynamicFieldRepo) Update(ctx context.Context, tx *gorm.DB, fields []*types.DynamicField) ([]*types.DynamicField, error) {
    dr.log.Info("Starting Update DynamicFields now...")
    transaction := tx
    if transaction == nil {
        transaction = dr.db
    }
    if len(fields) == 0 {
        dr.log.Debug("No fields provided, returning empty slice")
        return []*types.DynamicField{}, nil
    }
    for _, f := range fields {
        if err := transaction.WithContext(ctx).Save(f).Error; err != nil {
            dr.log.Error("Failed to update field", "field", f.Name, "error", err)
            return nil, err
        }
    }
    dr.log.Info("Successfully updated fields", "count", len(fields))
    return fields, nil
}
