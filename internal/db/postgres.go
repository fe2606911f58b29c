package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/roomline-org/roomline-admin/internal/logger"
  "github.com/roomline-org/roomline-admin/internal/types"
  "github.com/roomline-org/roomline-admin/internal/utils"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  //1) Get and Set Environment Variables
  log.Info("Attempting to load environment variables for Postgres now...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "roomline", log)
  log.Info("Environment variables loaded for Postgres :)")

  //2) Construct DSN From Environment Variables
  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)
  log.Debug("Postgres DSN built :)", "host", postgresHost, "port", postgresPort, "dbname", postgresName)

  //3) Attempt DB Connection
  log.Info("Attempting to connect to Postgres DB now...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres DB", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres DB: %w", err)
  }
  log.Info("Successfully Connected to Postgres DB :)")

  return &PostgresService{db: db, log: serviceLog}, nil
}

// AutoMigrateAll migrates the admin models. settings_cancellationreason is
// a pre-existing table owned by the host app; migrating it here is a no-op
// in production and only matters for fresh local databases.
func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Starting AutoMigrateAll for all GORM models now...")

  err := s.db.AutoMigrate(
    &types.Group{},
    &types.CancellationReason{},
    &types.DynamicSection{},
    &types.DynamicField{},
  )
  if err != nil {
    s.log.Error("AutoMigrateAll failed :(", "error", err)
    return err
  }
  s.log.Info("AutoMigrateAll completed successfully :)")

  // -- DynamicField.section_id => dynamic_section.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
    ALTER TABLE "dynamic_field"
    DROP CONSTRAINT IF EXISTS "fk_dynamic_field_section_id";
  `).Error; err != nil {
    return fmt.Errorf("failed to drop fk_dynamic_field_section_id: %w", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "dynamic_field"
    ADD CONSTRAINT "fk_dynamic_field_section_id"
    FOREIGN KEY ("section_id")
    REFERENCES "dynamic_section"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_dynamic_field_section_id: %w", err)
  }
  s.log.Info("Successfully Added Foreign Key Relationships :)")

  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
