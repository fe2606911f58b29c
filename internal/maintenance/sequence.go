// package maintenance holds one-off repair operations run manually by an
// operator against the backing database.
package maintenance

import (
	"context"
	"fmt"
	"io"

	"github.com/roomline-org/roomline-admin/internal/logger"
	"github.com/roomline-org/roomline-admin/internal/repos"
	"github.com/roomline-org/roomline-admin/internal/ui"
)

// SequenceRepairer resynchronizes the settings_cancellationreason id
// sequence with the table's actual maximum id. The table drifts when rows
// are imported with explicit ids, after which plain inserts collide.
type SequenceRepairer struct {
	reasonRepo repos.CancellationReasonRepo
	log        *logger.Logger
	out        io.Writer
}

func NewSequenceRepairer(reasonRepo repos.CancellationReasonRepo, baseLog *logger.Logger, out io.Writer) *SequenceRepairer {
	return &SequenceRepairer{
		reasonRepo: reasonRepo,
		log:        baseLog.With("service", "SequenceRepairer"),
		out:        out,
	}
}

// Run reads MAX(id) and, when rows exist, sets the sequence's current
// value to it so the next insert receives max+1. An empty table is a
// warning, not an error. The read and the set are two independent
// statements; a row inserted between them by an external writer can still
// be assigned a colliding id. Re-running after a successful repair is a
// no-op in effect.
func (sr *SequenceRepairer) Run(ctx context.Context) error {
	styles := ui.NewStyles()

	sr.log.Info("Starting cancellation reason sequence repair...")
	maxID, err := sr.reasonRepo.MaxID(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed reading max cancellation reason id: %w", err)
	}
	if maxID == nil {
		sr.log.Warn("No cancellation reason rows found, leaving sequence untouched")
		fmt.Fprintln(sr.out, styles.Warn("No records found in settings_cancellationreason table"))
		return nil
	}

	if err := sr.reasonRepo.RestartSequence(ctx, nil, *maxID); err != nil {
		return fmt.Errorf("failed setting cancellation reason sequence: %w", err)
	}
	sr.log.Info("Cancellation reason sequence repaired", "maxID", *maxID, "nextID", *maxID+1)
	fmt.Fprintln(sr.out, styles.Success(fmt.Sprintf("Successfully updated sequence to start from %d", *maxID+1)))
	return nil
}
