package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stylus/internal/config"
	"stylus/internal/store"
)

func newBackupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [destination]",
		Short: "Snapshot the catalog database",
		Long: `Copies the catalog database to the destination path with integrity
verification. Without a destination, a timestamped file is written next
to the live database.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				var target string
				if len(args) == 1 {
					expanded, err := config.ExpandPath(strings.TrimSpace(args[0]))
					if err != nil {
						return fmt.Errorf("resolve backup path: %w", err)
					}
					target = expanded
				} else {
					stamp := time.Now().Format("20060102-150405")
					target = st.Path() + ".backup-" + stamp
				}

				if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
					return fmt.Errorf("create backup directory: %w", err)
				}
				if err := st.BackupTo(cmd.Context(), target); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backed up catalog database to %s\n", target)
				return nil
			})
		},
	}
}
