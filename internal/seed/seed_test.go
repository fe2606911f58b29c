package seed

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/roomline-org/roomline-admin/internal/logger"
	"github.com/roomline-org/roomline-admin/internal/repos"
	"github.com/roomline-org/roomline-admin/internal/types"
)

func TestSeedAll(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&types.Group{}, &types.DynamicSection{}, &types.DynamicField{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logger.NewNop()
	groupRepo := repos.NewGroupRepo(db, log)
	sectionRepo := repos.NewDynamicSectionRepo(db, log)
	fieldRepo := repos.NewDynamicFieldRepo(db, log)

	var out bytes.Buffer
	if err := SeedAll(context.Background(), groupRepo, sectionRepo, fieldRepo, &out); err != nil {
		t.Fatalf("SeedAll failed: %v", err)
	}

	if !strings.Contains(out.String(), "SeedAll Complete!") {
		t.Errorf("expected completion line:\n%s", out.String())
	}

	var groupCount, fieldCount int64
	if err := db.Model(&types.Group{}).Count(&groupCount).Error; err != nil {
		t.Fatalf("failed to count groups: %v", err)
	}
	if err := db.Model(&types.DynamicField{}).Count(&fieldCount).Error; err != nil {
		t.Fatalf("failed to count fields: %v", err)
	}
	if groupCount != 6 {
		t.Errorf("expected 6 groups, got %d", groupCount)
	}
	if fieldCount != 1 {
		t.Errorf("expected 1 dynamic field, got %d", fieldCount)
	}
}
