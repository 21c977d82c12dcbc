package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pcblab/pcbrepair/internal/model"
)

// KiCadExporter writes interpreted footprints as KiCad modules, one
// .kicad_mod file per component, into a .pretty library directory.
type KiCadExporter struct {
	// dir is the target library directory (conventionally ending in
	// ".pretty"). It is created if missing.
	dir string

	// now supplies the footprint version date; injectable for tests.
	now func() time.Time
}

// NewKiCadExporter creates an exporter targeting the given directory.
func NewKiCadExporter(dir string) *KiCadExporter {
	return &KiCadExporter{
		dir: dir,
		now: time.Now,
	}
}

// Export writes every footprint of the report and returns the paths of
// the files written, sorted by refdes.
func (e *KiCadExporter) Export(report *model.BoardReport) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0750); err != nil {
		return nil, fmt.Errorf("create footprint library: %w", err)
	}

	source := strings.TrimSuffix(filepath.Base(report.File), filepath.Ext(report.File))
	version := e.now().UTC().Format("20060102")

	written := make([]string, 0, len(report.Footprints))
	for _, name := range report.FootprintNames() {
		path := filepath.Join(e.dir, name+".kicad_mod")
		content := FormatFootprint(name, report.Footprints[name], source, version)

		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			return written, fmt.Errorf("write footprint %s: %w", name, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// FormatFootprint renders one footprint as a KiCad module s-expression.
// Pads are circular SMD pads sized by the pin radius; coordinates are
// already centered and in millimeters.
func FormatFootprint(name string, fp model.Footprint, source, version string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "(footprint %q\n", name)
	fmt.Fprintf(&b, "  (version %s)\n", version)
	b.WriteString("  (generator pcbrepair)\n")
	fmt.Fprintf(&b, "  (descr \"Automatically generated footprint from %s\")\n", source)
	b.WriteString("  (tags \"generated\")\n")

	b.WriteString("  (property \"Reference\" \"U\" (at 0 0) (effects (font (size 1 1) (thickness 0.15))))\n")
	b.WriteString("  (property \"Value\" \"U1\" (at 0 1.5) (effects (font (size 1 1) (thickness 0.15))))\n")

	b.WriteString("  (fp_text reference \"U\" (at 0 0) (layer \"F.SilkS\")\n")
	b.WriteString("    (effects (font (size 1 1) (thickness 0.15)))\n")
	b.WriteString("  )\n")
	b.WriteString("  (fp_text value \"U1\" (at 0 1.5) (layer \"F.Fab\")\n")
	b.WriteString("    (effects (font (size 1 1) (thickness 0.15)))\n")
	b.WriteString("  )\n")

	for _, pin := range fp.Pins {
		fmt.Fprintf(&b, "  (pad %q smd circle (at %s %s) (size %s %s) (layers F.Cu F.Paste F.Mask)\n",
			pin.Number, pin.XMM, pin.YMM, pin.RadiusMM, pin.RadiusMM)
		b.WriteString("  )\n")
	}

	b.WriteString(")\n")

	return b.String()
}
