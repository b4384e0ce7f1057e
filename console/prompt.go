// Package console implements the interactive surface: criteria prompts
// and styled rendering of analysis results.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"airbnb-insights/models"
)

// Prompter collects analysis parameters from an interactive session.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Criteria asks for the six optional bounds. A blank answer leaves a bound
// unset; an answer that fails to parse is announced and treated as blank.
func (p *Prompter) Criteria() models.Criteria {
	fmt.Fprintf(p.out, "\n\033[1;33m  Filter criteria\033[0m (blank = no limit)\n")

	var criteria models.Criteria
	criteria.MinPrice = p.optionalNumber("Min price")
	criteria.MaxPrice = p.optionalNumber("Max price")
	criteria.MinBedrooms = p.optionalNumber("Min bedrooms")
	criteria.MaxBedrooms = p.optionalNumber("Max bedrooms")
	criteria.MinReview = p.optionalNumber("Min review score")
	criteria.MaxReview = p.optionalNumber("Max review score")
	return criteria
}

// Amenities asks for a comma-separated amenity list; blank means none.
func (p *Prompter) Amenities() []string {
	answer := p.ask("Required amenities (comma-separated)")
	if answer == "" {
		return nil
	}

	parts := strings.Split(answer, ",")
	amenities := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}
	return amenities
}

// Confirm asks a yes/no question; any answer starting with y counts as yes.
func (p *Prompter) Confirm(question string) bool {
	answer := p.ask(question + " [y/N]")
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

func (p *Prompter) optionalNumber(label string) *float64 {
	answer := p.ask(label)
	if answer == "" {
		return nil
	}

	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		fmt.Fprintf(p.out, "  \033[33m%q is not a number, leaving unset\033[0m\n", answer)
		return nil
	}
	return &v
}

func (p *Prompter) ask(label string) string {
	fmt.Fprintf(p.out, "  %s: ", label)
	if !p.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}
