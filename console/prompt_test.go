package console

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"airbnb-insights/models"
)

func TestPrompterCriteria(t *testing.T) {
	// Answers in prompt order: min price, max price (invalid), min
	// bedrooms, max bedrooms (blank), min review (blank), max review.
	in := strings.NewReader("100\nabc\n2\n\n\n4.5\n")
	var out bytes.Buffer

	crit := NewPrompter(in, &out).Criteria()

	if crit.MinPrice == nil || *crit.MinPrice != 100 {
		t.Errorf("MinPrice should be 100, got %v", crit.MinPrice)
	}
	if crit.MaxPrice != nil {
		t.Errorf("an unparseable answer should leave MaxPrice unset, got %v", *crit.MaxPrice)
	}
	if crit.MinBedrooms == nil || *crit.MinBedrooms != 2 {
		t.Errorf("MinBedrooms should be 2, got %v", crit.MinBedrooms)
	}
	if crit.MaxBedrooms != nil || crit.MinReview != nil {
		t.Error("blank answers should leave bounds unset")
	}
	if crit.MaxReview == nil || *crit.MaxReview != 4.5 {
		t.Errorf("MaxReview should be 4.5, got %v", crit.MaxReview)
	}
	if !strings.Contains(out.String(), "not a number") {
		t.Errorf("unparseable input should be announced, output: %q", out.String())
	}
}

func TestPrompterAmenities(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Wifi, Pool\n", "Wifi|Pool"},
		{"Wifi,, Pool ,\n", "Wifi|Pool"},
		{"Kitchen\n", "Kitchen"},
		{"\n", ""},
		{"", ""}, // EOF before any answer
	}

	for _, tt := range tests {
		got := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{}).Amenities()
		if joined := strings.Join(got, "|"); joined != tt.want {
			t.Errorf("Amenities with input %q = %q; want %q", tt.input, joined, tt.want)
		}
	}
}

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"", false}, // EOF
	}

	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.answer), &bytes.Buffer{})
		if got := p.Confirm("Export results?"); got != tt.want {
			t.Errorf("Confirm with answer %q = %v; want %v", tt.answer, got, tt.want)
		}
	}
}

func TestRenderReportSections(t *testing.T) {
	var out bytes.Buffer
	RenderReport(&out, &models.Report{
		Stats: models.Stats{Count: 3, AvgPricePerBedroom: 52.5},
		HostRankings: []models.HostRanking{
			{HostName: "Alice", Count: 2},
			{HostName: "Bob", Count: 1},
		},
	})

	rendered := out.String()
	for _, want := range []string{"Matching listings", "$52.50", "Alice", "(2)", "Bob", "(1)"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("report output missing %q", want)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var out bytes.Buffer
	RenderReport(&out, &models.Report{})

	rendered := out.String()
	if !strings.Contains(rendered, "No matching listings") {
		t.Error("empty report should say there were no matches")
	}
	if !strings.Contains(rendered, "No host data") {
		t.Error("empty report should say there is no host data")
	}
}

func TestRenderRecordsKeepsColumnOrder(t *testing.T) {
	var out bytes.Buffer
	RenderRecords(&out, []string{"id", "name", "price"}, []models.Record{
		{"id": "1", "name": "Loft", "price": "$120"},
	})

	rendered := out.String()
	idIdx := strings.Index(rendered, "id")
	nameIdx := strings.Index(rendered, "name")
	priceIdx := strings.Index(rendered, "price")
	if idIdx == -1 || nameIdx == -1 || priceIdx == -1 {
		t.Fatalf("record dump missing a column, output: %q", rendered)
	}
	if !(idIdx < nameIdx && nameIdx < priceIdx) {
		t.Errorf("fields should appear in column order, output: %q", rendered)
	}
}

func TestBarWidthCapped(t *testing.T) {
	if got := barWidth(500); got != maxBarWidth {
		t.Errorf("barWidth(500) = %d; want %d", got, maxBarWidth)
	}
	if got := barWidth(3); got != 3 {
		t.Errorf("barWidth(3) = %d; want 3", got)
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	// Host names are arbitrary CSV text; cutting mid-rune would leak
	// invalid UTF-8 into the report.
	long := strings.Repeat("é", 40)
	got := truncate(long, 28)
	if !utf8.ValidString(got) {
		t.Errorf("truncated text should stay valid UTF-8, got %q", got)
	}
	if want := strings.Repeat("é", 25) + "..."; got != want {
		t.Errorf("truncate: got %q, want %q", got, want)
	}
	if got := truncate("Alice", 28); got != "Alice" {
		t.Errorf("short names should pass through unchanged, got %q", got)
	}
}
