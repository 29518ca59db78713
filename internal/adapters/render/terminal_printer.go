package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"citydash.app/internal/config"
	"citydash.app/internal/core/dashboard"
	"citydash.app/pkg/errors"
)

const chartWidth = 30

// TerminalPrinter writes snapshots to a terminal as text or YAML
type TerminalPrinter struct {
	out    io.Writer
	format config.OutputFormat
}

func NewTerminalPrinter(out io.Writer, format config.OutputFormat) (*TerminalPrinter, error) {
	if out == nil {
		return nil, errors.NewValidationError("output writer is required")
	}
	if !format.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported output format %q", format.String()))
	}
	return &TerminalPrinter{out: out, format: format}, nil
}

func (p *TerminalPrinter) Print(snapshot Snapshot) error {
	if p.format == config.OutputFormatYAML {
		return p.printYAML(snapshot)
	}
	return p.printText(snapshot)
}

func (p *TerminalPrinter) printYAML(snapshot Snapshot) error {
	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return encoder.Close()
}

func (p *TerminalPrinter) printText(snapshot Snapshot) error {
	var b strings.Builder

	for _, field := range snapshot.Fields {
		if field.Text == "" {
			continue
		}
		b.WriteString(field.Text)
		b.WriteByte('\n')
	}

	if len(snapshot.Forecast) > 0 {
		b.WriteString("\nForecast\n")
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, card := range snapshot.Forecast {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				card.Date, card.Temp, card.Description,
				card.MinTemp, card.MaxTemp, card.WindSpeed, card.Humidity)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if snapshot.Chart != nil && len(snapshot.Chart.Values) > 0 {
		b.WriteString("\nTemperature\n")
		writeBars(&b, *snapshot.Chart)
	}

	if len(snapshot.News) > 0 {
		b.WriteString("\nNews\n")
		for i, article := range snapshot.News {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, article.Title)
			if article.Description != "" {
				fmt.Fprintf(&b, "     %s\n", article.Description)
			}
			fmt.Fprintf(&b, "     %s\n", article.URL)
		}
	}

	fmt.Fprintf(&b, "\nBackground: %s\n", snapshot.BackgroundImage)

	_, err := io.WriteString(p.out, b.String())
	return err
}

// writeBars draws one horizontal bar per point, scaled to the largest magnitude
func writeBars(b *strings.Builder, chart dashboard.ChartData) {
	peak := 0.0
	for _, v := range chart.Values {
		peak = math.Max(peak, math.Abs(v))
	}

	labelWidth := 0
	for _, label := range chart.Labels {
		labelWidth = max(labelWidth, len(label))
	}

	for i, v := range chart.Values {
		label := ""
		if i < len(chart.Labels) {
			label = chart.Labels[i]
		}
		width := 0
		if peak > 0 {
			width = int(math.Round(math.Abs(v) / peak * chartWidth))
		}
		fmt.Fprintf(b, "  %-*s | %s %s°C\n", labelWidth, label, strings.Repeat("#", width), dashboard.FormatNumber(v))
	}
}
