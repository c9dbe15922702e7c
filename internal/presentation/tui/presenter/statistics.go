// Package presenter builds display text for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/substats/internal/domain/subset"
	"github.com/tesso57/substats/internal/presentation/tui/i18n"
	"github.com/tesso57/substats/internal/presentation/tui/metrics"
	"github.com/tesso57/substats/internal/presentation/tui/textutil"
)

// maxFrequencies caps the nominal values listed per feature.
const maxFrequencies = 8

var featureStyle = lipgloss.NewStyle().Bold(true)

// StatisticsBody renders a subset summary as text wrapped to width.
func StatisticsBody(summary subset.Summary, labels i18n.Labels, width int) string {
	var b strings.Builder
	b.WriteString(labels.Sprintf(i18n.Rows, summary.Rows))
	b.WriteString("\n")

	for _, f := range summary.Features {
		b.WriteString("\n")
		b.WriteString(featureStyle.Render(textutil.Truncate(f.Name, max(width, 1))))
		b.WriteString("\n")
		switch f.Kind {
		case subset.Numeric:
			b.WriteString("  " + labels.Sprintf(i18n.NumericLine, f.Count, f.Missing) + "\n")
			if f.Count > 0 {
				b.WriteString("  " + labels.Sprintf(i18n.NumericStats, f.Mean, f.Std, f.Min, f.Max) + "\n")
			}
		case subset.Nominal:
			b.WriteString("  " + labels.Sprintf(i18n.NominalLine, f.Count, f.Missing, f.Distinct()) + "\n")
			for i, freq := range f.Frequencies {
				if i == maxFrequencies {
					b.WriteString(fmt.Sprintf("  … +%d\n", len(f.Frequencies)-maxFrequencies))
					break
				}
				b.WriteString(frequencyLine(freq, width))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func frequencyLine(f subset.Frequency, width int) string {
	valueWidth := min(metrics.LabelColumn, max(width-20, 4))
	value := textutil.PadRight(textutil.Truncate(textutil.SingleLine(f.Value), valueWidth), valueWidth)
	return fmt.Sprintf("  %s %5.1f%% (%d)\n", value, f.Share*100, f.Count)
}

// EmptyBody is shown while no subset is routed.
func EmptyBody(labels i18n.Labels, items *subset.Items, statisticsKey string) string {
	if items == nil || items.Len() == 0 {
		return labels.Sprintf(i18n.NoSubsets)
	}
	return labels.Sprintf(i18n.ChooseHint, statisticsKey)
}
