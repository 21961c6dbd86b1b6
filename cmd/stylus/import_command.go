package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylus/internal/ingest"
	"stylus/internal/store"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <albums.json>",
		Short: "Ingest a JSON export of album metadata",
		Long: `Reads a JSON array of album payloads and routes each one through the
deduplication engine: exact-key hits smart-merge in place, high-confidence
fuzzy matches merge automatically when auto-merging is enabled, and the
rest are inserted with any near-misses flagged for review.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer file.Close()

			payloads, err := ingest.DecodePayloads(file)
			if err != nil {
				return err
			}

			return ctx.withStore(func(st *store.Store) error {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				ingestor := ingest.New(st, cfg, ctx.ensureLogger())
				out := cmd.OutOrStdout()

				counts := map[ingest.Action]int{}
				flagged := 0
				for _, payload := range payloads {
					result, err := ingestor.Ingest(cmd.Context(), payload.ToAlbum())
					if err != nil {
						return fmt.Errorf("ingest %q / %q: %w", payload.Artist, payload.Title, err)
					}
					counts[result.Action]++
					flagged += len(result.Candidates)
					for _, candidate := range result.Candidates {
						fmt.Fprintf(out, "review: %q / %q resembles %s (%s / %s, confidence %s)\n",
							result.Album.Artist, result.Album.Title,
							candidate.Album.ID, candidate.Album.Artist, candidate.Album.Title,
							formatConfidence(candidate.Score.Confidence))
					}
				}

				fmt.Fprintf(out, "Imported %d albums: %d inserted, %d merged, %d auto-merged, %d flagged for review\n",
					len(payloads),
					counts[ingest.ActionInserted],
					counts[ingest.ActionMerged],
					counts[ingest.ActionAutoMerged],
					flagged)
				return nil
			})
		},
	}
}
