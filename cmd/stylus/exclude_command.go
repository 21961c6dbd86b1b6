package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylus/internal/store"
)

func newExcludeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exclude <id-a> <id-b>",
		Short: "Mark two albums as confirmed distinct",
		Long: `Records a human confirmation that two albums are different releases.
Excluded pairs never resurface in reconcile reports or insert-time
candidate lists, in either id ordering.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				// Both records must exist; excluding a typo id would
				// silently do nothing useful.
				for _, id := range args {
					if _, err := st.GetByID(cmd.Context(), id); err != nil {
						return err
					}
				}
				if err := st.AddExclusionPair(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded exclusion pair %s <-> %s\n", args[0], args[1])
				return nil
			})
		},
	}
}
