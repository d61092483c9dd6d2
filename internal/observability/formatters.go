// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable breakdown of a single match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %.4f (%s)\n", result.OverallScore, result.MatchLabel()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Semantic:    %.4f\n", result.SemanticScore))
	sb.WriteString(fmt.Sprintf("Skills:      %.4f\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience:  %.4f\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:   %.4f\n", result.EducationScore))
	sb.WriteString("\n")

	if len(result.MatchedSkills) > 0 {
		matched := strings.Join(result.MatchedSkills, ", ")
		if len(matched) > 40 {
			matched = matched[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", matched))
	}
	if len(result.MissingSkills) > 0 {
		missing := strings.Join(result.MissingSkills, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", missing))
	}
	if len(result.BonusSkills) > 0 {
		bonus := strings.Join(result.BonusSkills, ", ")
		if len(bonus) > 40 {
			bonus = bonus[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Bonus:    %s\n", bonus))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankingResults outputs the top N ranked entries with scores and labels.
func (p *Printer) PrintRankingResults(title string, results []*types.RankingResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Rank, r.MemberID()))
		sb.WriteString(fmt.Sprintf("    Score: %.4f  Pctl: %.2f  %s\n", r.OverallScore(), r.Percentile, r.RankLabel()))
		if matched := r.MatchedSkills(); len(matched) > 0 {
			skills := strings.Join(matched, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox(title, sb.String())
}

// PrintShortlist outputs the shortlisted candidates, or a notice when
// nobody cleared the bar.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintShortlist(results []*types.RankingResult, minScore float64) {
	if len(results) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CANDIDATES ABOVE THRESHOLD")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Shortlisted %d (min score %.2f):\n\n", len(results), minScore))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Rank, r.MemberID()))
		sb.WriteString(fmt.Sprintf("    Score: %.4f  %s\n", r.OverallScore(), r.MatchLabel()))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SHORTLIST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs pool-level score statistics.
func (p *Printer) PrintStats(stats *ranking.Stats) {
	if stats == nil || stats.N == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pool size:   %d\n", stats.N))
	sb.WriteString(fmt.Sprintf("Best:        %s (%.4f)\n", stats.BestID, stats.BestScore))
	sb.WriteString(fmt.Sprintf("Worst:       %.4f\n", stats.WorstScore))
	sb.WriteString(fmt.Sprintf("Range:       %.4f\n", stats.ScoreRange))
	sb.WriteString(fmt.Sprintf("Mean:        %.4f", stats.MeanScore))

	p.printBox("POOL STATISTICS", sb.String())
}
