package console

import (
	"fmt"
	"io"
	"strings"

	"airbnb-insights/models"
)

// maxBarWidth caps the host-ranking bars so one prolific host cannot
// blow out the layout.
const maxBarWidth = 40

// RenderReport writes the styled analysis summary: match count, price
// statistics and the host ranking table.
func RenderReport(w io.Writer, r *models.Report) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 LISTING ANALYSIS\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Matching listings : \033[1m%d\033[0m\n", r.Stats.Count)
	fmt.Fprintln(w)

	// Price Stats
	fmt.Fprintf(w, "\033[1;33m  Price Statistics (per night)\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.Stats.Count > 0 {
		fmt.Fprintf(w, "  Average price per bedroom : \033[1;32m$%.2f\033[0m\n", r.Stats.AvgPricePerBedroom)
	} else {
		fmt.Fprintf(w, "  No matching listings\n")
	}
	fmt.Fprintln(w)

	// Listings by Host
	fmt.Fprintf(w, "\033[1;33m  Listings by Host\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.HostRankings) == 0 {
		fmt.Fprintf(w, "  No host data\n")
	} else {
		for _, hr := range r.HostRankings {
			bar := strings.Repeat("█", barWidth(hr.Count))
			fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(hr.HostName, 28), bar, hr.Count)
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// RenderRecords dumps every field of every record, in column order.
func RenderRecords(w io.Writer, headers []string, records []models.Record) {
	thin := strings.Repeat("─", 54)

	for i, r := range records {
		fmt.Fprintf(w, "\033[1;33m  Listing %d of %d\033[0m\n", i+1, len(records))
		fmt.Fprintf(w, "  %s\n", thin)
		for _, h := range headers {
			fmt.Fprintf(w, "  %-24s %s\n", h, r[h])
		}
		fmt.Fprintln(w)
	}
}

func barWidth(count int) int {
	if count > maxBarWidth {
		return maxBarWidth
	}
	return count
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
