package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"

	"lightcast/pkg/engine/fov"
	"lightcast/pkg/engine/lighting"
	"lightcast/pkg/engine/terminal"
	"lightcast/pkg/engine/world"
)

const testMap = `
#######
#@.#..#
#.*...#
#######`

func testScene(t *testing.T) *Scene {
	t.Helper()
	mf := world.MustParseMap(testMap)
	f, err := fov.New(fov.KindPrecise, mf.Grid.LightPasses, fov.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	l := lighting.New(mf.Grid.Reflectivity, lighting.DefaultOptions()).SetFOV(f)
	var lights []LightSource
	for _, p := range mf.Lights {
		l.SetLight(p.X, p.Y, lighting.White)
		lights = append(lights, LightSource{At: p, Color: lighting.White})
	}
	return NewScene(mf.Grid, mf.Origin, 5, fov.KindPrecise, f, l, lights)
}

func TestNewScene(t *testing.T) {
	s := testScene(t)

	if v, ok := s.Visible[s.Origin]; !ok || v.Ring != 0 {
		t.Errorf("origin not visible at ring 0: %+v", v)
	}
	if s.Revealed <= 0 || s.Revealed > len(s.Visible) {
		t.Errorf("Revealed = %d with %d visible", s.Revealed, len(s.Visible))
	}
	if !s.Grid.GetCell(1, 1).Discovered {
		t.Error("origin cell not marked discovered")
	}
	if !s.IsLight(world.Pt(2, 2)) || s.IsLight(s.Origin) {
		t.Error("IsLight mismatch")
	}
	if got := s.LightLevel(world.Pt(2, 2)); got != 9 {
		t.Errorf("LightLevel at the light = %d, want 9", got)
	}
	if got := s.LightLevel(world.Pt(-5, -5)); got != -1 {
		t.Errorf("LightLevel off the map = %d, want -1", got)
	}

	cells := s.LitCells()
	if len(cells) != len(s.Lit) {
		t.Fatalf("LitCells returned %d of %d", len(cells), len(s.Lit))
	}
	for i := 1; i < len(cells); i++ {
		if comparePoints(cells[i-1], cells[i]) >= 0 {
			t.Fatalf("LitCells not in row-major order at %d: %v, %v", i, cells[i-1], cells[i])
		}
	}
}

func TestSceneWithoutLighting(t *testing.T) {
	mf := world.MustParseMap(testMap)
	f := fov.NewDiscrete(mf.Grid.LightPasses, fov.DefaultOptions())
	s := NewScene(mf.Grid, mf.Origin, 3, fov.KindDiscrete, f, nil, nil)
	if len(s.Lit) != 0 {
		t.Errorf("unlit scene has %d lit cells", len(s.Lit))
	}

	var buf bytes.Buffer
	if err := WriteDump(&buf, s, MustLoadLabels("en")); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "(none)"); got != 2 {
		t.Errorf("dump has %d empty sections, want 2", got)
	}
}

func TestWriteDump(t *testing.T) {
	s := testScene(t)
	var buf bytes.Buffer
	if err := WriteDump(&buf, s, MustLoadLabels("en")); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== LIGHTCAST DUMP",
		"--- Metadata ---",
		"grid_width: 7",
		"grid_height: 4",
		"origin: 1,1",
		"fov: precise",
		"radius: 5",
		"light_sources: 1",
		"x: 2 y: 2 color: #ffffff",
		"=== END DUMP ===",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	var sawOriginRow, sawLightRow bool
	for _, line := range lines {
		if strings.HasPrefix(line, "+@.") {
			sawOriginRow = true
		}
		if len(line) == 7 && line[2] == '9' {
			sawLightRow = true
		}
	}
	if !sawOriginRow {
		t.Errorf("visibility map has no origin row:\n%s", out)
	}
	if !sawLightRow {
		t.Errorf("light map has no full-intensity cell at the light:\n%s", out)
	}
}

func TestWriteDumpTranslated(t *testing.T) {
	s := testScene(t)
	var buf bytes.Buffer
	if err := WriteDump(&buf, s, MustLoadLabels("de")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "--- Metadaten ---") {
		t.Errorf("German dump missing translated section:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "grid_width: 7") {
		t.Error("metadata keys should not be translated")
	}
}

func TestDumpToFile(t *testing.T) {
	s := testScene(t)
	path := filepath.Join(t.TempDir(), "dump.txt")

	got, err := DumpToFile(path, s, nil)
	if err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}
	if got != path {
		t.Errorf("DumpToFile returned %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "DUMP_TITLE") {
		t.Error("nil labels should fall back to keys")
	}

	if _, err := DumpToFile(path, nil, nil); err == nil {
		t.Error("DumpToFile with no scene should fail")
	}
}

func TestWritePreview(t *testing.T) {
	old := color.Enable
	color.Disable()
	defer func() { color.Enable = old }()

	s := testScene(t)
	view := terminal.ViewportAround(s.Origin, 5, 3, s.Grid.Width(), s.Grid.Height())

	var buf bytes.Buffer
	if err := WritePreview(&buf, s, view, MustLoadLabels("en")); err != nil {
		t.Fatalf("WritePreview: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+view.Height {
		t.Fatalf("preview has %d lines, want %d:\n%s", len(lines), 1+view.Height, buf.String())
	}
	if !strings.HasPrefix(lines[0], "precise view from 1,1, radius 5") {
		t.Errorf("title = %q", lines[0])
	}
	for _, row := range lines[1:] {
		if n := len([]rune(row)); n != view.Width {
			t.Errorf("row %q has width %d, want %d", row, n, view.Width)
		}
	}
	if !strings.Contains(buf.String(), "@") {
		t.Error("preview does not show the origin")
	}
}

func TestLabels(t *testing.T) {
	for _, lang := range Languages() {
		l, err := LoadLabels(lang)
		if err != nil {
			t.Fatalf("LoadLabels(%q): %v", lang, err)
		}
		if got := l.Get("SECTION_METADATA"); got == "SECTION_METADATA" {
			t.Errorf("%s: SECTION_METADATA untranslated", lang)
		}
	}

	de, err := LoadLabels("de_DE.UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	if de.Language() != "de" {
		t.Errorf("Language = %q, want de", de.Language())
	}
	if got := de.Get("NONE"); got != "(keine)" {
		t.Errorf("de NONE = %q", got)
	}
	if got := de.Get("UNKNOWN_KEY"); got != "UNKNOWN_KEY" {
		t.Errorf("missing key = %q, want the key", got)
	}

	if _, err := LoadLabels("fr"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("LoadLabels(fr) err = %v, want ErrUnknownLanguage", err)
	}

	var none *Labels
	if got := none.Get("NONE"); got != "NONE" {
		t.Errorf("nil Labels Get = %q", got)
	}
}
