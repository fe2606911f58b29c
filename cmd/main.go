package main

import (
  "context"
  "fmt"
  "os"

  "github.com/urfave/cli/v3"

  "github.com/roomline-org/roomline-admin/internal/db"
  "github.com/roomline-org/roomline-admin/internal/logger"
  "github.com/roomline-org/roomline-admin/internal/maintenance"
  "github.com/roomline-org/roomline-admin/internal/repos"
  "github.com/roomline-org/roomline-admin/internal/seed"
  "github.com/roomline-org/roomline-admin/internal/seed/accounttype"
  "github.com/roomline-org/roomline-admin/internal/seed/group"
)

func main() {
  // Logger Setup
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres Setup
  log.Info("Setting Up Postgres now...")
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("DB init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()
  log.Info("Postgres Setup Successful :)")

  // Repositories Setup
  groupRepo := repos.NewGroupRepo(thePG, log)
  reasonRepo := repos.NewCancellationReasonRepo(thePG, log)
  sectionRepo := repos.NewDynamicSectionRepo(thePG, log)
  fieldRepo := repos.NewDynamicFieldRepo(thePG, log)

  app := &cli.Command{
    Name:  "roomline-admin",
    Usage: "One-off administrative operations against the roomline database",
    Commands: []*cli.Command{
      {
        Name:  "populate-groups",
        Usage: "Ensure the predefined user groups exist",
        Action: func(ctx context.Context, cmd *cli.Command) error {
          return group.SyncGroups(ctx, groupRepo, os.Stdout)
        },
      },
      {
        Name:  "fix-sequence",
        Usage: "Resync the settings_cancellationreason id sequence with MAX(id)",
        Action: func(ctx context.Context, cmd *cli.Command) error {
          repairer := maintenance.NewSequenceRepairer(reasonRepo, log, os.Stdout)
          return repairer.Run(ctx)
        },
      },
      {
        Name:  "sync-account-types",
        Usage: "Synchronize account type choices into the dynamic configuration",
        Action: func(ctx context.Context, cmd *cli.Command) error {
          return accounttype.SyncAccountTypes(ctx, sectionRepo, fieldRepo, os.Stdout)
        },
      },
      {
        Name:  "seed",
        Usage: "Run every seeder (groups and account types)",
        Action: func(ctx context.Context, cmd *cli.Command) error {
          return seed.SeedAll(ctx, groupRepo, sectionRepo, fieldRepo, os.Stdout)
        },
      },
    },
  }

  if err := app.Run(context.Background(), os.Args); err != nil {
    log.Error("Command failed", "error", err)
    os.Exit(1)
  }
}
