package report

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/pcblab/pcbrepair/internal/model"
)

// pieChartComponents caps how many BOM entries the quantity chart
// shows; beyond that the chart becomes unreadable.
const pieChartComponents = 10

// MarkdownWriter outputs a human-readable board summary in Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.BoardReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeBOM(md, report)
	w.writeFootprints(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the board identity table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.BoardReport) {
	md.H1("PCB Repair File Report")
	md.PlainText("")

	rows := [][]string{
		{"File", "`" + report.File + "`"},
		{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
	}
	if report.KeyVariant != "" {
		rows = append(rows, []string{"Encryption", report.KeyVariant})
	}
	if report.Digest != "" {
		rows = append(rows, []string{"SHA3-256", "`" + report.Digest + "`"})
	}
	if d := report.Description; d != nil {
		rows = append(rows,
			[]string{"Board Model", d.BoardModel},
			[]string{"Revision", d.Revision},
			[]string{"Extended Model", d.ExtendedBoardModel},
			[]string{"Extended Revision", d.ExtendedRevision},
			[]string{"Part Number", d.PartNumber},
		)
	}
	if c := report.Content; c != nil {
		rows = append(rows,
			[]string{"Units", c.Units.String()},
			[]string{"Symbols", strconv.Itoa(len(c.Symbols))},
			[]string{"Pins", strconv.Itoa(len(c.Pins))},
			[]string{"Test Vias", strconv.Itoa(len(c.TestVias))},
		)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.Error != "" {
		md.Warningf("Processing failed: %s", report.Error)
		md.PlainText("")
	}
}

// writeBOM writes the bill-of-materials table and the quantity chart.
func (w *MarkdownWriter) writeBOM(md *markdown.Markdown, report *model.BoardReport) {
	md.H2("Bill of Materials")
	md.PlainText("")

	if report.Description == nil || len(report.Description.Components) == 0 {
		md.PlainText("No bill of materials present.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Description.Components))
	for _, c := range report.Description.Components {
		rows = append(rows, []string{
			c.PartNumber,
			c.Description,
			strconv.FormatUint(c.Quantity, 10),
			strings.Join(c.Location, " "),
			c.PartNumber2,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Part Number", "Description", "Qty", "Location", "Alternate"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeQuantityChart(md, report.Description.Components)
}

// writeQuantityChart writes a mermaid pie chart of the most-used
// components.
func (w *MarkdownWriter) writeQuantityChart(md *markdown.Markdown, components []model.Component) {
	sorted := make([]model.Component, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})
	if len(sorted) > pieChartComponents {
		sorted = sorted[:pieChartComponents]
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Component Quantities"),
		piechart.WithShowData(true),
	)

	var plotted int
	for _, c := range sorted {
		if c.Quantity == 0 {
			continue
		}
		chart.LabelAndIntValue(c.PartNumber, c.Quantity)
		plotted++
	}
	if plotted == 0 {
		return
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFootprints writes the per-component footprint overview.
func (w *MarkdownWriter) writeFootprints(md *markdown.Markdown, report *model.BoardReport) {
	md.H2("Footprints")
	md.PlainText("")

	if len(report.Footprints) == 0 {
		md.PlainText("No footprints interpreted.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Footprints))
	for _, name := range report.FootprintNames() {
		rows = append(rows, []string{
			name,
			strconv.Itoa(len(report.Footprints[name].Pins)),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Refdes", "Pins"},
		Rows:   rows,
	})
	md.PlainText("")
}
