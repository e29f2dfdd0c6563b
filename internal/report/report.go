// Package report renders combinations, frequent itemsets and rules.
//
// The plain format is line oriented and stable, for collaborators that
// parse it:
//
//	fis: {1, 2}
//	(1,) => (2,) (0.5)
//
// The styled format renders the same content as lipgloss tables.
package report

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
	"github.com/fpeterek/strojove-uceni/internal/cli"
	"github.com/fpeterek/strojove-uceni/internal/common"
	"github.com/fpeterek/strojove-uceni/internal/model"
)

// Format selects the output rendering.
type Format string

// Output formats.
const (
	FormatPlain  Format = "plain"
	FormatStyled Format = "styled"
)

// ParseFormat validates a configured format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatStyled:
		return Format(s), nil
	default:
		return "", common.InvalidParameter("format", "must be %q or %q, got %q", FormatPlain, FormatStyled, s)
	}
}

// WriteCombinations prints each combination on its own line in Go's slice
// notation, in the order the sequence yields them.
func WriteCombinations(w io.Writer, combos iter.Seq[[]int]) (int, error) {
	n := 0
	for c := range combos {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// WritePatterns prints every frequent itemset, then every rule.
func WritePatterns[T model.Item](w io.Writer, format Format, p *apriori.Patterns[T]) error {
	if format == FormatStyled {
		return writeStyled(w, p)
	}

	var b strings.Builder
	for _, f := range p.All() {
		b.WriteString(ItemsetLine(f.Itemset))
		b.WriteByte('\n')
	}
	for _, r := range p.Rules {
		b.WriteString(RuleLine(r))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ItemsetLine renders one frequent itemset line.
func ItemsetLine[T model.Item](s model.Itemset[T]) string {
	return "fis: " + s.String()
}

// RuleLine renders one rule line: antecedent and consequent as sorted
// tuples, followed by the confidence.
func RuleLine[T model.Item](r model.Rule[T]) string {
	return Tuple(r.Antecedent) + " => " + Tuple(r.Consequent) + " (" + Float(r.Confidence) + ")"
}

// Tuple renders an itemset as a parenthesised tuple; a single item keeps a
// trailing comma, as in (1,).
func Tuple[T model.Item](s model.Itemset[T]) string {
	parts := make([]string, s.Len())
	for i := range parts {
		parts[i] = fmt.Sprint(s.At(i))
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Float renders f with the shortest round-trip digits, always showing a
// fractional part for integral values (1.0, not 1).
func Float(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func writeStyled[T model.Item](w io.Writer, p *apriori.Patterns[T]) error {
	var b strings.Builder

	b.WriteString(cli.FormatTitle("Frequent itemsets"))
	b.WriteByte('\n')
	rows := make([][]string, 0, p.Len())
	for _, f := range p.All() {
		rows = append(rows, []string{f.Itemset.String(), Float(f.Support), strconv.Itoa(f.Count)})
	}
	b.WriteString(cli.RenderTable([]string{"ITEMSET", "SUPPORT", "COUNT"}, rows))
	b.WriteString("\n\n")

	b.WriteString(cli.FormatTitle("Association rules"))
	b.WriteByte('\n')
	rows = make([][]string, 0, len(p.Rules))
	for _, r := range p.Rules {
		rows = append(rows, []string{Tuple(r.Antecedent), cli.RuleIcon, Tuple(r.Consequent), Float(r.Confidence)})
	}
	b.WriteString(cli.RenderTable([]string{"ANTECEDENT", "", "CONSEQUENT", "CONFIDENCE"}, rows))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d transactions\n%d levels\n%d frequent itemsets\n%d rules",
		p.Transactions, len(p.Levels), p.Len(), len(p.Rules))
	b.WriteString(cli.RenderBox("Summary", summary))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
