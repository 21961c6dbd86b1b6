package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stylus/internal/merge"
	"stylus/internal/store"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <keep-id> <delete-id>",
		Short: "Collapse a confirmed duplicate into its surviving record",
		Long: `Merges the fields of <delete-id> into <keep-id>, repoints every list
entry at the survivor, deletes the losing record, and purges exclusion
pairs that mention it. Retrying after a partial failure is safe: a merge
whose delete record is already gone is a no-op.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				executor := merge.NewExecutor(st, ctx.ensureLogger())
				result, err := executor.Merge(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if result.RecordsDeleted == 0 {
					fmt.Fprintf(out, "Record %s is already gone; nothing to merge.\n", result.DeleteID)
					return nil
				}
				fmt.Fprintf(out, "Merged %s into %s: %d fields updated, %d references repointed\n",
					result.DeleteID, result.KeepID, len(result.FieldsChanged), result.ReferencesRepointed)
				if len(result.FieldsChanged) > 0 {
					fmt.Fprintf(out, "Updated fields: %s\n", strings.Join(result.FieldsChanged, ", "))
				}
				return nil
			})
		},
	}
}
