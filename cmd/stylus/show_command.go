package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stylus/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Display one album record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				album, err := st.GetByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				lists, err := st.ListEntriesFor(cmd.Context(), album.ID)
				if err != nil {
					return err
				}

				rows := [][]string{
					{"ID", album.ID},
					{"Artist", album.Artist},
					{"Title", album.Title},
					{"Release date", album.ReleaseDate},
					{"Country", album.Country},
					{"Genre", strings.TrimSuffix(album.GenrePrimary+" / "+album.GenreSecondary, " / ")},
					{"Tracks", fmt.Sprintf("%d", len(album.Tracks))},
					{"Cover", coverSummary(album.Cover.Size(), album.Cover)},
					{"Summary source", album.Summary.Source},
					{"Lists", strings.Join(lists, ", ")},
					{"Updated", formatTimestamp(album.UpdatedAt)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRows(
					[]string{"Field", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
