package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"stylus/internal/catalog"
)

// Payload is the wire shape of one imported album.
type Payload struct {
	ID             string   `json:"id,omitempty"`
	Artist         string   `json:"artist"`
	Title          string   `json:"title"`
	ReleaseDate    string   `json:"release_date,omitempty"`
	Country        string   `json:"country,omitempty"`
	GenrePrimary   string   `json:"genre_primary,omitempty"`
	GenreSecondary string   `json:"genre_secondary,omitempty"`
	Tracks         []string `json:"tracks,omitempty"`
	CoverData      []byte   `json:"cover_data,omitempty"`
	CoverFormat    string   `json:"cover_format,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	SummarySource  string   `json:"summary_source,omitempty"`
	SummaryFetched string   `json:"summary_fetched_at,omitempty"`
}

// ToAlbum converts the payload into a catalog record.
func (p Payload) ToAlbum() *catalog.Album {
	album := &catalog.Album{
		ID:             p.ID,
		Artist:         p.Artist,
		Title:          p.Title,
		ReleaseDate:    p.ReleaseDate,
		Country:        p.Country,
		GenrePrimary:   p.GenrePrimary,
		GenreSecondary: p.GenreSecondary,
		Tracks:         p.Tracks,
	}
	if len(p.CoverData) > 0 {
		album.Cover = &catalog.CoverImage{Data: p.CoverData, Format: p.CoverFormat}
	}
	if p.Summary != "" {
		album.Summary = catalog.Summary{Text: p.Summary, Source: p.SummarySource}
		if p.SummaryFetched != "" {
			if t, err := time.Parse(time.RFC3339, p.SummaryFetched); err == nil {
				album.Summary.FetchedAt = t
			}
		}
	}
	return album
}

// DecodePayloads reads a JSON array of album payloads.
func DecodePayloads(r io.Reader) ([]Payload, error) {
	var payloads []Payload
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decode album payloads: %w", err)
	}
	return payloads, nil
}
