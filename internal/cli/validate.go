package cli

import (
	"fmt"

	"github.com/julianstephens/tripboard/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	all, err := ctx.Trips()
	if err != nil {
		return fmt.Errorf("failed to load trips: %w", err)
	}

	result := validation.New().ValidateTrips(all)
	_, _ = fmt.Fprintln(ctx.Out, result.FormatReport())

	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found", len(result.Conflicts))
	}
	return nil
}
