package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"lightcast/pkg/devtools"
	"lightcast/pkg/engine/fov"
	"lightcast/pkg/engine/lighting"
	"lightcast/pkg/engine/terminal"
	"lightcast/pkg/engine/world"
)

// demoMap is used when no -map is given. Digits are reflective floor.
const demoMap = `
##############################
#............#...............#
#..@.........#.......5555....#
#............#.......5..5....#
#.....####...........5..5..*.#
#.....#..#...........5555....#
#.....#..#...#...............#
#............#######.#########
#....*.......#...............#
#............#..3.........3..#
#######.######...............#
#............#.......*.......#
#..9......9..#...............#
#............................#
##############################`

// lightFlags collects repeated -light values
type lightFlags []string

func (l *lightFlags) String() string {
	return strings.Join(*l, " ")
}

func (l *lightFlags) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// config is the parsed command line
type config struct {
	mapPath   string
	kind      string
	radius    int
	x, y      int
	facing    string
	cone      int
	lights    lightFlags
	passes    int
	threshold float64
	lightRng  int
	topology  int
	dumpPath  string
	preview   bool
	lang      string
	verbose   bool
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	cfg := config{}
	fs.StringVar(&cfg.mapPath, "map", "", "text map to load (default: built-in demo map)")
	fs.StringVar(&cfg.kind, "fov", string(fov.KindPrecise), "field of view algorithm: discrete, precise or recursive")
	fs.IntVar(&cfg.radius, "radius", 8, "field of view radius")
	fs.IntVar(&cfg.x, "x", -1, "origin column (default: the @ marker)")
	fs.IntVar(&cfg.y, "y", -1, "origin row (default: the @ marker)")
	fs.StringVar(&cfg.facing, "facing", "", "direction to face with -fov recursive, e.g. north or sw")
	fs.IntVar(&cfg.cone, "cone", 90, "view width in degrees when -facing is set: 90 or 180")
	fs.Var(&cfg.lights, "light", `light source "x,y[,colour]", repeatable (colour defaults to white)`)
	fs.IntVar(&cfg.passes, "passes", lighting.DefaultPasses, "lighting passes")
	fs.Float64Var(&cfg.threshold, "threshold", lighting.DefaultEmissionThreshold, "emission threshold for reflected light")
	fs.IntVar(&cfg.lightRng, "range", lighting.DefaultRange, "light range")
	fs.IntVar(&cfg.topology, "topology", int(world.Topology8), "ring topology: 4, 6 or 8")
	fs.StringVar(&cfg.dumpPath, "dump", "", "write the debug dump to this file instead of stdout")
	fs.BoolVar(&cfg.preview, "preview", false, "print a coloured preview sized to the terminal")
	fs.StringVar(&cfg.lang, "lang", "en", "label language: "+strings.Join(devtools.Languages(), ", "))
	fs.BoolVar(&cfg.verbose, "v", false, "log lighting passes to stderr")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if !world.Topology(cfg.topology).IsValid() {
		return cfg, fmt.Errorf("invalid -topology %d", cfg.topology)
	}
	return cfg, nil
}

// parseLight reads "x,y" or "x,y,colour". The colour may itself contain
// commas ("x,y,255,128,0").
func parseLight(s string) (devtools.LightSource, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) < 2 {
		return devtools.LightSource{}, fmt.Errorf("light %q: want x,y[,colour]", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err := errors.Join(errX, errY); err != nil {
		return devtools.LightSource{}, fmt.Errorf("light %q: %w", s, err)
	}

	c := lighting.White
	if len(parts) == 3 {
		var err error
		if c, err = lighting.ParseColor(parts[2]); err != nil {
			return devtools.LightSource{}, fmt.Errorf("light %q: %w", s, err)
		}
	}
	return devtools.LightSource{At: world.Pt(x, y), Color: c}, nil
}

func loadMap(path string) (*world.MapFile, error) {
	if path == "" {
		return world.ParseMapString(demoMap)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mf, err := world.ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mf, nil
}

// buildFOV creates the configured algorithm, narrowed to a cone when facing
// is set
func buildFOV(cfg config, grid *world.Grid) (fov.Kind, fov.FOV, error) {
	kind, err := fov.ParseKind(cfg.kind)
	if err != nil {
		return "", nil, err
	}
	f, err := fov.New(kind, grid.LightPasses, fov.Options{Topology: world.Topology(cfg.topology)})
	if err != nil {
		return "", nil, err
	}
	if cfg.facing == "" {
		return kind, f, nil
	}

	dir, ok := world.ParseDirection(cfg.facing)
	if !ok {
		return "", nil, fmt.Errorf("invalid -facing %q", cfg.facing)
	}
	r, ok := f.(*fov.Recursive)
	if !ok {
		return "", nil, fmt.Errorf("-facing needs -fov %s", fov.KindRecursive)
	}
	return kind, r.Cone(dir, cfg.cone), nil
}

func run(cfg config, stdout io.Writer) error {
	mf, err := loadMap(cfg.mapPath)
	if err != nil {
		return err
	}
	if msg := mf.Grid.Validate(); msg != "" {
		return errors.New(msg)
	}

	origin := mf.Origin
	if cfg.x >= 0 {
		origin.X = cfg.x
	}
	if cfg.y >= 0 {
		origin.Y = cfg.y
	}
	if !mf.Grid.InBounds(origin.X, origin.Y) {
		return fmt.Errorf("origin %s is outside the %dx%d map", origin, mf.Grid.Width(), mf.Grid.Height())
	}

	labels, err := devtools.LoadLabels(cfg.lang)
	if err != nil {
		return err
	}

	kind, view, err := buildFOV(cfg, mf.Grid)
	if err != nil {
		return err
	}
	// Light spreads in every direction even when the viewer faces one way.
	lightFOV, err := fov.New(kind, mf.Grid.LightPasses, fov.Options{Topology: world.Topology(cfg.topology)})
	if err != nil {
		return err
	}

	var sources []devtools.LightSource
	for _, p := range mf.Lights {
		sources = append(sources, devtools.LightSource{At: p, Color: lighting.White})
	}
	for _, s := range cfg.lights {
		ls, err := parseLight(s)
		if err != nil {
			return err
		}
		sources = append(sources, ls)
	}

	opts := lighting.DefaultOptions()
	opts.Passes = cfg.passes
	opts.EmissionThreshold = cfg.threshold
	opts.Range = cfg.lightRng
	l := lighting.New(mf.Grid.Reflectivity, opts).SetFOV(lightFOV)
	for _, ls := range sources {
		l.SetLight(ls.At.X, ls.At.Y, ls.Color)
	}

	scene := devtools.NewScene(mf.Grid, origin, cfg.radius, kind, view, l, sources)

	if cfg.preview {
		vp := terminal.FitTerminal(origin, devtools.PreviewReservedRows, mf.Grid.Width(), mf.Grid.Height())
		if err := devtools.WritePreview(stdout, scene, vp, labels); err != nil {
			return err
		}
	}

	switch {
	case cfg.dumpPath != "":
		path, err := devtools.DumpToFile(cfg.dumpPath, scene, labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
	case !cfg.preview:
		return devtools.WriteDump(stdout, scene, labels)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lightcast: ")

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.verbose {
		lighting.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
