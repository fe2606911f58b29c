package group

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/roomline-org/roomline-admin/internal/logger"
	"github.com/roomline-org/roomline-admin/internal/repos"
	"github.com/roomline-org/roomline-admin/internal/types"
)

func setupTestRepo(t *testing.T) (repos.GroupRepo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&types.Group{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return repos.NewGroupRepo(db, logger.NewNop()), db
}

func groupNames(t *testing.T, db *gorm.DB) []string {
	t.Helper()

	var groups []*types.Group
	if err := db.Order("name asc").Find(&groups).Error; err != nil {
		t.Fatalf("failed to read groups: %v", err)
	}
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

func TestSyncGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("FreshStore", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		var out bytes.Buffer

		if err := SyncGroups(ctx, repo, &out); err != nil {
			t.Fatalf("failed to sync groups: %v", err)
		}

		output := out.String()
		if got := strings.Count(output, "✓ Created group:"); got != 6 {
			t.Errorf("expected 6 created notices, got %d", got)
		}
		if got := strings.Count(output, "• Group already exists:"); got != 0 {
			t.Errorf("expected 0 exists notices, got %d", got)
		}
		if !strings.Contains(output, "Total groups created: 6") {
			t.Errorf("expected total of 6 in output:\n%s", output)
		}

		want := []string{"Admin", "Director", "Sales Coordinator", "Sales Executive", "Sales Manager", "Viewer"}
		names := groupNames(t, db)
		if len(names) != len(want) {
			t.Fatalf("expected %d groups, got %d", len(want), len(names))
		}
		for i, n := range names {
			if n != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], n)
			}
		}
	})

	t.Run("RosterSortedInOutput", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		var out bytes.Buffer

		if err := SyncGroups(ctx, repo, &out); err != nil {
			t.Fatalf("failed to sync groups: %v", err)
		}

		output := out.String()
		want := []string{"Admin", "Director", "Sales Coordinator", "Sales Executive", "Sales Manager", "Viewer"}
		last := -1
		for _, n := range want {
			idx := strings.Index(output, fmt.Sprintf("  • %s", n))
			if idx < 0 {
				t.Fatalf("roster line for %s missing in output:\n%s", n, output)
			}
			if idx < last {
				t.Errorf("roster line for %s out of order", n)
			}
			last = idx
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo, db := setupTestRepo(t)

		if err := SyncGroups(ctx, repo, &bytes.Buffer{}); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		first := groupNames(t, db)

		var out bytes.Buffer
		if err := SyncGroups(ctx, repo, &out); err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		second := groupNames(t, db)

		output := out.String()
		if got := strings.Count(output, "✓ Created group:"); got != 0 {
			t.Errorf("second run should create nothing, got %d created notices", got)
		}
		if got := strings.Count(output, "• Group already exists:"); got != 6 {
			t.Errorf("expected 6 exists notices on second run, got %d", got)
		}
		if strings.Join(first, ",") != strings.Join(second, ",") {
			t.Errorf("group set changed between runs: %v vs %v", first, second)
		}
	})

	t.Run("PreExistingGroupsKeptAndListed", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		if err := db.Create(&types.Group{Name: "Accounting"}).Error; err != nil {
			t.Fatalf("failed to create pre-existing group: %v", err)
		}

		var out bytes.Buffer
		if err := SyncGroups(ctx, repo, &out); err != nil {
			t.Fatalf("failed to sync groups: %v", err)
		}

		output := out.String()
		if got := strings.Count(output, "✓ Created group:"); got != 6 {
			t.Errorf("expected 6 created notices, got %d", got)
		}
		if !strings.Contains(output, "Total groups created: 7") {
			t.Errorf("expected total of 7 in output:\n%s", output)
		}
		if !strings.Contains(output, "  • Accounting") {
			t.Errorf("pre-existing group missing from roster:\n%s", output)
		}
		// Accounting sorts before Admin, so it should lead the roster.
		if strings.Index(output, "  • Accounting") > strings.Index(output, "  • Admin") {
			t.Errorf("roster not sorted, Accounting should precede Admin:\n%s", output)
		}
	})
}
