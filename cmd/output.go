package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"furnidata-manager/core/furnidata"
	"furnidata-manager/feature/audit"
	"furnidata-manager/feature/catalog"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"
)

const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Output formats accepted by --output.
const (
	outputSummary = "summary"
	outputJSON    = "json"
	outputYAML    = "yaml"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func printSummary(w io.Writer, s *catalog.Summary) {
	fmt.Fprintln(w, "\n--- Furnidata Summary ---")
	fmt.Fprintf(w, "Source:         %s (%s)\n", s.Source.Location, s.Source.Kind)
	fmt.Fprintf(w, "Format:         %s\n", s.Format)
	fmt.Fprintf(w, "Decoded:        %d\n", s.Decoded)
	fmt.Fprintf(w, "Aliased:        %d\n", s.Aliased)
	fmt.Fprintf(w, "Total:          %d\n", s.Total)
	fmt.Fprintln(w, "-------------------------")
	fmt.Fprintf(w, "Placeable:      %d\n", s.Placeable)
	fmt.Fprintf(w, "Other:          %d\n", s.Other)
	fmt.Fprintf(w, "Rare:           %d\n", s.Rare)

	if len(s.FurniLines) > 0 {
		lines := make([]string, 0, len(s.FurniLines))
		for line := range s.FurniLines {
			lines = append(lines, line)
		}
		sort.Strings(lines)

		fmt.Fprintln(w, "\nFurni lines:")
		for _, line := range lines {
			fmt.Fprintf(w, "- %-24s %d\n", line, s.FurniLines[line])
		}
	}
	fmt.Fprintln(w, "-------------------------")
}

func printItem(w io.Writer, query string, item furnidata.Item) {
	fmt.Fprintln(w, "\n--- Furnidata Item ---")
	fmt.Fprintf(w, "Query:          %s\n", query)
	fmt.Fprintf(w, "ID:             %d\n", item.ID)
	fmt.Fprintf(w, "Type:           %s\n", item.Kind)
	fmt.Fprintf(w, "ClassName:      %s\n", item.ClassName)
	fmt.Fprintf(w, "FileName:       %s\n", item.FileName)
	fmt.Fprintf(w, "Alias:          %s\n", item.Alias)
	fmt.Fprintf(w, "Name:           %s\n", item.Name)
	fmt.Fprintf(w, "Description:    %s\n", item.Description)
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "Size:           %dx%d\n", item.XDim, item.YDim)
	fmt.Fprintf(w, "Revision:       %d\n", item.Revision)
	fmt.Fprintf(w, "Category:       %s\n", item.Category)
	fmt.Fprintf(w, "FurniLine:      %s\n", item.FurniLine)
	fmt.Fprintf(w, "Sit/Stand/Lay:  %v/%v/%v\n", item.CanSitOn, item.CanStandOn, item.CanLayOn)
	fmt.Fprintf(w, "Rare:           %v\n", item.Rare)
	fmt.Fprintln(w, "----------------------")
}

func printSuggestions(w io.Writer, notFound *catalog.NotFoundError) {
	fmt.Fprintf(w, "\nNo furnidata item matches %q.\n", notFound.Identifier)
	if len(notFound.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, "Did you mean:")
	for _, s := range notFound.Suggestions {
		fmt.Fprintf(w, "- %s\n", s)
	}
}

func printAudit(w io.Writer, r *audit.Report) {
	fmt.Fprintln(w, "\n--- Emulator Audit ---")
	fmt.Fprintf(w, "Source:         %s (%s)\n", r.Source.Location, r.Format)
	fmt.Fprintf(w, "Emulator:       %s\n", r.Emulator)
	fmt.Fprintf(w, "Furnidata:      %d\n", r.FurnidataItems)
	fmt.Fprintf(w, "Database:       %d\n", r.DatabaseItems)
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "Missing in DB:  %d\n", r.MissingInDatabase)
	fmt.Fprintf(w, "Missing in FD:  %d\n", r.MissingInFurnidata)
	fmt.Fprintf(w, "Mismatched:     %d\n", r.Mismatched)
	fmt.Fprintf(w, "Status:         %s\n", auditStatus(r))

	if len(r.Mismatches) > 0 {
		fmt.Fprintln(w, "\nMismatches:")
		for _, m := range r.Mismatches {
			fmt.Fprintf(w, "- %s\n", m)
		}
	}
	fmt.Fprintln(w, "----------------------")
}

func auditStatus(r *audit.Report) string {
	switch {
	case r.Matched:
		return colorGreen + "PASS" + colorReset
	case r.Mismatched == 0:
		// Only presence differences.
		return colorYellow + "WARNING" + colorReset
	default:
		return colorRed + "FAIL" + colorReset
	}
}

// printMetrics writes the furnidata_ series of g, one line per sample.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	fmt.Fprintln(w, "\nMetrics:")
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "furnidata_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%-40s %s\n", mf.GetName()+labelString(m), sampleValue(mf.GetType(), m))
		}
	}
	return nil
}

func labelString(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

func sampleValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%.6fs", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "-"
	}
}
