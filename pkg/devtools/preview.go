package devtools

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"lightcast/pkg/engine/terminal"
	"lightcast/pkg/engine/world"
)

// PreviewReservedRows is the number of terminal lines a preview uses beyond
// the map itself
const PreviewReservedRows = 3

var (
	styleOrigin = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	styleHidden = color.Style{color.FgDarkGray}
	styleUnlit  = color.Style{color.FgWhite}
	styleTitle  = color.Style{color.FgMagenta, color.OpBold}
)

// WritePreview renders the part of s inside view as coloured text. Lit cells
// are drawn on a true-colour background of their light; the origin and unlit
// cells use fixed styles.
func WritePreview(w io.Writer, s *Scene, view terminal.Viewport, labels *Labels) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, styleTitle.Sprint(labels.Get("PREVIEW_TITLE", string(s.Kind), s.Origin.String(), s.Radius, len(s.Visible), len(s.Lit))))
	for y := view.Y; y < view.Y+view.Height; y++ {
		for x := view.X; x < view.X+view.Width; x++ {
			fmt.Fprint(bw, previewCell(s, x, y))
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

func previewCell(s *Scene, x, y int) string {
	p := world.Pt(x, y)
	sym := string(s.visibilitySymbol(x, y))
	if sym == " " && !s.Grid.LightPasses(x, y) {
		sym = string(world.SymbolWall)
	}

	if p == s.Origin {
		return styleOrigin.Sprint(sym)
	}
	if c, ok := s.Lit[p]; ok {
		return c.ToRGB().ToBg().Sprint(sym)
	}
	if sym == " " || sym == string(world.SymbolWall) {
		return styleHidden.Sprint(sym)
	}
	return styleUnlit.Sprint(sym)
}
