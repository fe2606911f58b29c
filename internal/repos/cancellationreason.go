package repos

import (
    "context"
    "database/sql"

    "gorm.io/gorm"

    "github.com/roomline-org/roomline-admin/internal/logger"
    "github.com/roomline-org/roomline-admin/internal/types"
)

// CancellationReasonRepo exposes the two statements the sequence repair
// needs plus a read-only listing. Rows are never written through this repo.
type CancellationReasonRepo interface {
    // READ
    GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CancellationReason, error)
    MaxID(ctx context.Context, tx *gorm.DB) (*int64, error)

    // SEQUENCE
    RestartSequence(ctx context.Context, tx *gorm.DB, value int64) error
}

type cancellationReasonRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewCancellationReasonRepo(db *gorm.DB, baseLog *logger.Logger) CancellationReasonRepo {
    repoLog := baseLog.With("repo", "CancellationReasonRepo")
    return &cancellationReasonRepo{db: db, log: repoLog}
}

// ----------------------------------------------------------------
// READ
// ----------------------------------------------------------------

func (cr *cancellationReasonRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CancellationReason, error) {
    cr.log.Info("Starting GetAll for cancellation reasons...")
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    var results []*types.CancellationReason
    if err := transaction.WithContext(ctx).Order("sort_order asc, label asc").Find(&results).Error; err != nil {
        cr.log.Error("Failed to fetch cancellation reasons", "error", err)
        return nil, err
    }
    cr.log.Info("Successfully fetched cancellation reasons", "count", len(results))
    return results, nil
}

// MaxID returns nil when the table holds no rows.
func (cr *cancellationReasonRepo) MaxID(ctx context.Context, tx *gorm.DB) (*int64, error) {
    cr.log.Info("Starting MaxID for cancellation reasons...")
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    var maxID sql.NullInt64
    if err := transaction.WithContext(ctx).
        Raw("SELECT MAX(id) FROM settings_cancellationreason").
        Scan(&maxID).Error; err != nil {
        cr.log.Error("Failed to fetch max cancellation reason id", "error", err)
        return nil, err
    }
    if !maxID.Valid {
        cr.log.Debug("No cancellation reason rows present")
        return nil, nil
    }
    cr.log.Debug("Max cancellation reason id fetched", "maxID", maxID.Int64)
    return &maxID.Int64, nil
}

// ----------------------------------------------------------------
// SEQUENCE
// ----------------------------------------------------------------

// RestartSequence sets the serial sequence's current value, so the next
// insert is assigned value+1. The value is bound as a parameter even though
// it only ever comes from MaxID.
func (cr *cancellationReasonRepo) RestartSequence(ctx context.Context, tx *gorm.DB, value int64) error {
    cr.log.Info("Starting RestartSequence for cancellation reasons...", "value", value)
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    if err := transaction.WithContext(ctx).
        Exec("SELECT setval('settings_cancellationreason_id_seq', ?)", value).Error; err != nil {
        cr.log.Error("Failed to restart cancellation reason sequence", "value", value, "error", err)
        return err
    }
    cr.log.Info("Successfully restarted cancellation reason sequence", "value", value)
    return nil
}
