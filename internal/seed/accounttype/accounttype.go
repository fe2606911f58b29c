package accounttype

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/roomline-org/roomline-admin/internal/repos"
	"github.com/roomline-org/roomline-admin/internal/types"
	"github.com/roomline-org/roomline-admin/internal/ui"
)

// Business segments selectable on an account. Key and display label are
// currently identical; the map shape leaves room for them to diverge.
var accountTypeChoices = map[string]string{
	"Company":                 "Company",
	"Government":              "Government",
	"Travel Agency":           "Travel Agency",
	"Medical":                 "Medical",
	"Pharmaceuticals":         "Pharmaceuticals",
	"Education":               "Education",
	"Training and Consulting": "Training and Consulting",
	"Hospitality":             "Hospitality",
	"Technology":              "Technology",
	"Finance":                 "Finance",
	"Manufacturing":           "Manufacturing",
	"Real Estate":             "Real Estate",
	"Retail":                  "Retail",
	"Other":                   "Other",
}

// SyncAccountTypes upserts the "accounts" dynamic-configuration section and
// its account_type choice field. An existing field has its choices, type,
// and flags overwritten, so repeated runs converge on the same row state.
func SyncAccountTypes(
	ctx context.Context,
	sectionRepo repos.DynamicSectionRepo,
	fieldRepo repos.DynamicFieldRepo,
	out io.Writer,
) error {
	styles := ui.NewStyles()

	fmt.Fprintln(out, "Synchronizing account types...")

	section, err := sectionRepo.GetByName(ctx, nil, "accounts")
	if err != nil {
		return fmt.Errorf("failed looking up accounts section: %w", err)
	}
	if section == nil {
		created, err := sectionRepo.Create(ctx, nil, []*types.DynamicSection{{
			Name:          "accounts",
			DisplayName:   "Account Information",
			Description:   "Core account fields",
			IsCoreSection: true,
			SourceModel:   "accounts.Account",
			SortOrder:     1,
		}})
		if err != nil {
			return fmt.Errorf("failed creating accounts section: %w", err)
		}
		section = created[0]
		fmt.Fprintln(out, styles.Success(fmt.Sprintf("✓ Created section: %s", section.DisplayName)))
	}

	choicesJSON, err := json.Marshal(accountTypeChoices)
	if err != nil {
		return fmt.Errorf("failed encoding account type choices: %w", err)
	}

	field, err := fieldRepo.GetBySectionAndName(ctx, nil, section.ID, "account_type")
	if err != nil {
		return fmt.Errorf("failed looking up account_type field: %w", err)
	}
	if field == nil {
		if _, err := fieldRepo.Create(ctx, nil, []*types.DynamicField{{
			SectionID:   section.ID,
			Name:        "account_type",
			DisplayName: "Account Type",
			FieldType:   "choice",
			IsCoreField: true,
			Required:    true,
			IsActive:    true,
			SortOrder:   2,
			Choices:     choicesJSON,
			HelpText:    "Select the business segment for this account",
		}}); err != nil {
			return fmt.Errorf("failed creating account_type field: %w", err)
		}
		fmt.Fprintln(out, styles.Success("✓ Created field: account_type"))
	} else {
		field.Choices = choicesJSON
		field.FieldType = "choice"
		field.IsActive = true
		field.Required = true
		if _, err := fieldRepo.Update(ctx, nil, []*types.DynamicField{field}); err != nil {
			return fmt.Errorf("failed updating account_type field: %w", err)
		}
		fmt.Fprintln(out, styles.Success("✓ Updated field: account_type"))
	}

	keys := make([]string, 0, len(accountTypeChoices))
	for k := range accountTypeChoices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Success("✓ Account type choices synchronized"))
	fmt.Fprintf(out, "  Total choices: %d\n", len(accountTypeChoices))
	fmt.Fprintf(out, "  Choices: %s\n", strings.Join(keys, ", "))
	return nil
}
