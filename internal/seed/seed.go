package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/roomline-org/roomline-admin/internal/repos"
	"github.com/roomline-org/roomline-admin/internal/seed/accounttype"
	"github.com/roomline-org/roomline-admin/internal/seed/group"
)

// SeedAll runs every seeder in order. Each seeder is independently
// idempotent, so SeedAll is safe to invoke any number of times.
func SeedAll(
	ctx context.Context,
	groupRepo repos.GroupRepo,
	sectionRepo repos.DynamicSectionRepo,
	fieldRepo repos.DynamicFieldRepo,
	out io.Writer,
) error {
	fmt.Fprintln(out, "Running SeedAll... seeding groups and account types")

	if err := group.SyncGroups(ctx, groupRepo, out); err != nil {
		return fmt.Errorf("failed to sync groups: %w", err)
	}
	if err := accounttype.SyncAccountTypes(ctx, sectionRepo, fieldRepo, out); err != nil {
		return fmt.Errorf("failed to sync account types: %w", err)
	}

	fmt.Fprintln(out, "SeedAll Complete!")
	return nil
}
