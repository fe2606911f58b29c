package group

import (
	"context"
	"fmt"
	"io"

	"github.com/roomline-org/roomline-admin/internal/repos"
	"github.com/roomline-org/roomline-admin/internal/types"
	"github.com/roomline-org/roomline-admin/internal/ui"
)

// seedGroup pairs a role name with its intent. Descriptions are
// documentation only: the group table has no description column and the
// seeder never persists them.
type seedGroup struct {
	Name        string
	Description string
}

// Roles seeded on every run, in this fixed order.
var seedGroups = []seedGroup{
	{Name: "Director", Description: "Full system access and management capabilities"},
	{Name: "Sales Manager", Description: "Manage sales team and approve requests"},
	{Name: "Sales Executive", Description: "Create and manage client requests"},
	{Name: "Sales Coordinator", Description: "Coordinate sales activities and support"},
	{Name: "Admin", Description: "System administration and configuration"},
	{Name: "Viewer", Description: "Read-only access to system data"},
}

// SyncGroups ensures every seed role exists as a group, creating the
// missing ones. It is idempotent: re-running reports every role as already
// existing and changes nothing. Lookup-then-create is deliberately not
// wrapped in a transaction; concurrent invocations can race on the unique
// name index. After seeding it prints the total count and the full sorted
// roster, pre-existing groups included.
func SyncGroups(ctx context.Context, groupRepo repos.GroupRepo, out io.Writer) error {
	styles := ui.NewStyles()

	fmt.Fprintln(out, styles.Heading("Creating User Groups..."))
	for _, sg := range seedGroups {
		existing, err := groupRepo.GetByName(ctx, nil, sg.Name)
		if err != nil {
			return fmt.Errorf("failed looking up group %q: %w", sg.Name, err)
		}
		if existing == nil {
			if _, err := groupRepo.Create(ctx, nil, []*types.Group{{Name: sg.Name}}); err != nil {
				return fmt.Errorf("failed creating group %q: %w", sg.Name, err)
			}
			fmt.Fprintln(out, styles.Success(fmt.Sprintf("✓ Created group: %s", sg.Name)))
		} else {
			fmt.Fprintln(out, styles.Warn(fmt.Sprintf("• Group already exists: %s", sg.Name)))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Success("✅ Successfully populated user groups!"))

	total, err := groupRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed counting groups: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Heading(fmt.Sprintf("Total groups created: %d", total)))

	all, err := groupRepo.GetAllSortedByName(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed listing groups: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Heading("Available Groups:"))
	for _, g := range all {
		fmt.Fprintf(out, "  • %s\n", g.Name)
	}
	return nil
}
