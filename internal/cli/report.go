package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passgen/internal/model"
)

// FormatReport renders an analysis report as a boxed summary.
func FormatReport(report model.AnalysisReport) string {
	var sb strings.Builder

	writeRow(&sb, "Length", fmt.Sprintf("%d", report.Length))
	writeRow(&sb, "Contains", joinOrNone(report.Present()))
	writeRow(&sb, "Missing", joinOrNone(report.Missing))
	writeRow(&sb, "Alphabet size", fmt.Sprintf("%d", report.AlphabetSize))
	writeRow(&sb, "Entropy", fmt.Sprintf("%.1f bits", report.Entropy))
	writeRow(&sb, "Strength", FormatRating(report.Rating))
	sb.WriteString("\n")
	sb.WriteString(InfoStyle.Render(report.Recommendation))

	return RenderBox("Password Analysis", sb.String())
}

// FormatEstimate renders a one-line pre-generation strength estimate.
func FormatEstimate(est model.Estimate) string {
	return fmt.Sprintf("%s %s %s",
		SubtleStyle.Render("Estimated strength:"),
		FormatRating(est.Rating),
		SubtleStyle.Render(fmt.Sprintf("(%.1f bits from %d characters)", est.Entropy, est.PoolSize)),
	)
}

// FormatPasswords renders generated passwords, numbered when there are several.
func FormatPasswords(passwords []string) string {
	if len(passwords) == 1 {
		return PasswordStyle.Render(passwords[0])
	}

	width := len(fmt.Sprintf("%d", len(passwords)))
	lines := make([]string, len(passwords))
	for i, pw := range passwords {
		lines[i] = fmt.Sprintf("%s %s",
			SubtleStyle.Render(fmt.Sprintf("%*d.", width, i+1)),
			PasswordStyle.Render(pw))
	}
	return strings.Join(lines, "\n")
}

func writeRow(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(label))
	sb.WriteString(value)
	sb.WriteString("\n")
}

func joinOrNone(classes []model.CharClass) string {
	if len(classes) == 0 {
		return "none"
	}
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
