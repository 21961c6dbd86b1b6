package main

import (
	"fmt"
	"time"

	"stylus/internal/catalog"
)

func coverSummary(size int, cover *catalog.CoverImage) string {
	if cover == nil {
		return "none"
	}
	return fmt.Sprintf("%s, %d bytes", cover.Format, size)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
