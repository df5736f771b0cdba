package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultDumpFilename is used by DumpToFile when no path is given
const DefaultDumpFilename = "lightcast-dump.txt"

// writeMapGrid writes one symbol per cell, one row per line
func writeMapGrid(w io.Writer, s *Scene, symbol func(x, y int) rune) {
	for y := 0; y < s.Grid.Height(); y++ {
		for x := 0; x < s.Grid.Width(); x++ {
			fmt.Fprintf(w, "%c", symbol(x, y))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump of s: metadata, legend, the visibility
// map, the light-level map and per-cell light values. The format is plain
// "key: value" text with translated section titles.
func WriteDump(w io.Writer, s *Scene, labels *Labels) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, labels.Get("DUMP_TITLE"))
	fmt.Fprintln(bw)

	// --- Metadata ---
	fmt.Fprintln(bw, labels.Get("SECTION_METADATA"))
	fmt.Fprintf(bw, "grid_width: %d\n", s.Grid.Width())
	fmt.Fprintf(bw, "grid_height: %d\n", s.Grid.Height())
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(bw, "origin: %s\n", s.Origin)
	fmt.Fprintf(bw, "fov: %s\n", s.Kind)
	fmt.Fprintf(bw, "radius: %d\n", s.Radius)
	fmt.Fprintf(bw, "transparent_cells: %d\n", s.Grid.CountTransparent())
	fmt.Fprintf(bw, "visible_cells: %d\n", len(s.Visible))
	fmt.Fprintf(bw, "newly_revealed: %d\n", s.Revealed)
	fmt.Fprintf(bw, "light_sources: %d\n", len(s.Lights))
	fmt.Fprintf(bw, "lit_cells: %d\n", len(s.Lit))
	fmt.Fprintln(bw)

	// --- Legend ---
	fmt.Fprintln(bw, labels.Get("SECTION_LEGEND"))
	fmt.Fprintln(bw, labels.Get("LEGEND"))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, labels.Get("SECTION_VISIBILITY"))
	writeMapGrid(bw, s, s.visibilitySymbol)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, labels.Get("SECTION_LIGHT"))
	writeMapGrid(bw, s, s.lightSymbol)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, labels.Get("SECTION_LIGHTS"))
	if len(s.Lights) == 0 {
		fmt.Fprintf(bw, "  %s\n", labels.Get("NONE"))
	}
	for _, ls := range s.Lights {
		fmt.Fprintf(bw, "  x: %d y: %d color: %s\n", ls.At.X, ls.At.Y, ls.Color.Hex())
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, labels.Get("SECTION_LIT"))
	lit := s.LitCells()
	if len(lit) == 0 {
		fmt.Fprintf(bw, "  %s\n", labels.Get("NONE"))
	}
	for _, p := range lit {
		c := s.Lit[p]
		fmt.Fprintf(bw, "  x: %d y: %d color: %s value: %s visible: %v\n", p.X, p.Y, c.Hex(), c, s.Visible[p].Visibility > 0)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, labels.Get("DUMP_END"))
	return bw.Flush()
}

// DumpToFile writes the dump to path (DefaultDumpFilename when empty) and
// returns the absolute path written.
func DumpToFile(path string, s *Scene, labels *Labels) (string, error) {
	if s == nil || s.Grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, s, labels); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
