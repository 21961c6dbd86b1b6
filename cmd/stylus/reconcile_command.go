package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylus/internal/reconcile"
	"stylus/internal/store"
)

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Scan the whole catalog for duplicate pairs",
		Long: `Compares every album against every other and reports suspected
duplicates ranked by confidence. Nothing is merged: each reported pair is
reviewed by a human and resolved with 'stylus merge' or 'stylus exclude'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if threshold == 0 {
					cfg, err := ctx.ensureConfig()
					if err != nil {
						return err
					}
					threshold = cfg.Matching.ReconcileThreshold
				}
				runner := reconcile.NewRunner(st, st.LockDir(), ctx.ensureLogger())
				report, err := runner.Run(cmd.Context(), threshold)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Scanned %d records at threshold %.2f: %d duplicate pairs, %d exclusion pairs\n",
					report.TotalRecords, report.Threshold, report.DuplicatePairs, report.ExclusionPairs)
				if report.Partial {
					fmt.Fprintln(out, "Scan was cancelled; results are partial.")
				}
				if len(report.Pairs) == 0 {
					return nil
				}

				rows := make([][]string, 0, len(report.Pairs))
				for _, pair := range report.Pairs {
					rows = append(rows, []string{
						pair.A.ID,
						pair.A.Artist + " / " + pair.A.Title,
						pair.B.ID,
						pair.B.Artist + " / " + pair.B.Title,
						formatConfidence(pair.Score.Confidence),
					})
				}
				fmt.Fprintln(out, renderRows(
					[]string{"ID A", "Album A", "ID B", "Album B", "Confidence"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0,
		fmt.Sprintf("Scan threshold, clamped to [%.2f, %.2f] (0 uses the configured default)",
			reconcile.MinThreshold, reconcile.MaxThreshold))
	return cmd
}
