package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Map symbols understood by ParseMap
const (
	SymbolWall   = '#'
	SymbolFloor  = '.'
	SymbolOrigin = '@'
	SymbolLight  = '*'
)

// ErrEmptyMap is returned when a map source contains no cells
var ErrEmptyMap = errors.New("map has no cells")

// MapFile is a grid loaded from text together with the markers found in it
type MapFile struct {
	Grid      *Grid
	Origin    Point
	HasOrigin bool
	Lights    []Point
}

// ParseMap reads a text map. '#' is a wall, '.' is floor, a digit d is floor
// with reflectivity d/10, '@' marks the viewer origin and '*' marks a light
// source (both on floor). Any other rune is a wall. Short lines are padded
// with walls to the width of the longest line.
func ParseMap(r io.Reader) (*MapFile, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, ErrEmptyMap
	}

	mf := &MapFile{Grid: NewGrid(width, len(lines))}
	for y, l := range lines {
		for x, ch := range []rune(l) {
			switch {
			case ch == SymbolFloor:
				mf.Grid.SetFloor(x, y)
			case ch >= '0' && ch <= '9':
				mf.Grid.SetFloor(x, y)
				mf.Grid.SetReflectivity(x, y, float64(ch-'0')/10)
			case ch == SymbolOrigin:
				mf.Grid.SetFloor(x, y)
				mf.Origin = Point{X: x, Y: y}
				mf.HasOrigin = true
			case ch == SymbolLight:
				mf.Grid.SetFloor(x, y)
				mf.Lights = append(mf.Lights, Point{X: x, Y: y})
			}
		}
	}
	return mf, nil
}

// ParseMapString is ParseMap over a string
func ParseMapString(s string) (*MapFile, error) {
	return ParseMap(strings.NewReader(s))
}

// MustParseMap is ParseMapString that panics on error. Intended for tests and
// built-in maps.
func MustParseMap(s string) *MapFile {
	mf, err := ParseMapString(s)
	if err != nil {
		panic(err)
	}
	return mf
}
