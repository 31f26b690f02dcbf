package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/pathgeom/dbg"
	"github.com/osuushi/pathgeom/geom"
	"github.com/osuushi/pathgeom/pathio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the geometry package. Paths are read from
// --input (or stdin) as newline separated "x y" points, with a blank line
// between paths, or from the polygons of an SVG document with --svg.
//
//	pathgeom area < shapes.txt
//	pathgeom contains 0 2 --input shapes.txt
//	pathgeom draw --svg --input shapes.svg --out shapes.png --query 3,4
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "pathgeom: %v\n", err)
		os.Exit(1)
	}
}

type cli struct {
	app        *kingpin.Application
	// Set when kingpin finished early, after printing help
	terminated bool

	configFile *string
	input      *string
	svg        *bool
	debug      *bool
	division   *string
	exact      *bool
	color      optionalBool

	area *kingpin.CmdClause

	contains *kingpin.CmdClause
	queryX   *int64
	queryY   *int64

	draw        *kingpin.CmdClause
	drawOut     *string
	drawScale   *float64
	drawPadding *int
	drawQueries *[]string
	drawImgcat  *bool
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("pathgeom", "Signed area and point containment for integer polygons.")}
	c.app.Terminate(func(int) { c.terminated = true })

	c.configFile = c.app.Flag("config", "YAML config file.").Short('c').String()
	c.input = c.app.Flag("input", "Read paths from this file instead of stdin.").Short('i').String()
	c.svg = c.app.Flag("svg", "Input is an SVG document.").Bool()
	c.debug = c.app.Flag("debug", "Log every path read.").Bool()
	c.division = c.app.Flag("division", "Crossing division for containment: truncate or real.").Enum("truncate", "real")
	c.exact = c.app.Flag("exact", "Shorthand for --division=real.").Bool()
	c.app.Flag("color", "Colorize output (--no-color to disable).").SetValue(&c.color)

	c.area = c.app.Command("area", "Print the signed area of each path.")

	c.contains = c.app.Command("contains", "Check whether a point is inside each path.")
	c.queryX = c.contains.Arg("x", "Query x coordinate.").Required().Int64()
	c.queryY = c.contains.Arg("y", "Query y coordinate.").Required().Int64()

	c.draw = c.app.Command("draw", "Render the paths to a PNG.")
	c.drawOut = c.draw.Flag("out", "PNG file to write.").Short('o').Required().String()
	c.drawScale = c.draw.Flag("scale", "Pixels per unit.").Float64()
	c.drawPadding = c.draw.Flag("padding", "Padding in pixels.").Int()
	c.drawQueries = c.draw.Flag("query", "Query point to mark, as x,y. Repeatable.").Short('q').Strings()
	c.drawImgcat = c.draw.Flag("imgcat", "Print the image to an iTerm compatible terminal.").Bool()
	return c
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := newCLI()
	c.app.UsageWriter(stderr)
	c.app.ErrorWriter(stderr)
	command, err := c.app.Parse(args)
	if c.terminated {
		return nil
	}
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *c.debug {
		log.SetLevel(logrus.DebugLevel)
	}

	config, err := LoadConfig(*c.configFile)
	if err != nil {
		return err
	}
	c.applyFlags(&config)
	mode, err := config.DivisionMode()
	if err != nil {
		return err
	}
	log.WithField("config", fmt.Sprintf("%+v", config)).Debug("configured")

	paths, err := c.readPaths(stdin)
	if err != nil {
		return err
	}
	for i, path := range paths {
		log.WithFields(logrus.Fields{
			"index": i,
			"name":  dbg.Name(path),
			"area":  path.Area(),
		}).Debugf("read path %# v", pretty.Formatter(path.Vertices()))
	}
	if len(paths) == 0 {
		log.Warn("no paths in input")
	}

	au := aurora.NewAurora(config.Color)
	switch command {
	case c.area.FullCommand():
		for i, path := range paths {
			fmt.Fprintf(stdout, "%s: %g\n", label(au, i, path), path.Area())
		}

	case c.contains.FullCommand():
		q := geom.Pt(*c.queryX, *c.queryY)
		for i, path := range paths {
			result := au.Red("outside")
			if path.ContainsPointWithMode(q, mode) {
				result = au.Green("inside")
			}
			fmt.Fprintf(stdout, "%s: %v %s\n", label(au, i, path), q, result)
		}

	case c.draw.FullCommand():
		queries := make([]geom.Point, 0, len(*c.drawQueries))
		for _, s := range *c.drawQueries {
			q, err := pathio.ParsePoint(s)
			if err != nil {
				return errors.Wrap(err, "--query")
			}
			queries = append(queries, q)
		}
		img := geom.Render(paths, queries, geom.RenderOptions{
			Scale:   config.Scale,
			Padding: config.Padding,
			Mode:    mode,
		})
		if err := geom.SavePNG(*c.drawOut, img); err != nil {
			return errors.Wrapf(err, "writing %s", *c.drawOut)
		}
		log.WithField("file", *c.drawOut).Info("wrote image")
		if *c.drawImgcat {
			if err := imgcat.CatFile(*c.drawOut, stdout); err != nil {
				return errors.Wrap(err, "imgcat")
			}
		}
	}
	return nil
}

// Flags that were given override the config file
func (c *cli) applyFlags(config *Config) {
	if *c.exact {
		config.Division = geom.RealDivision.String()
	}
	if *c.division != "" {
		config.Division = *c.division
	}
	if c.color.set {
		config.Color = c.color.value
	}
	if *c.drawScale > 0 {
		config.Scale = *c.drawScale
	}
	if *c.drawPadding != 0 {
		config.Padding = *c.drawPadding
	}
}

func (c *cli) readPaths(stdin io.Reader) ([]*geom.Path, error) {
	in := stdin
	if *c.input != "" {
		f, err := os.Open(*c.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	if *c.svg {
		return pathio.ReadSVG(in)
	}
	return pathio.ReadPaths(in)
}

func label(au aurora.Aurora, i int, path *geom.Path) string {
	return fmt.Sprintf("path %d %s", i, au.Cyan(dbg.Name(path)))
}

// Bool flag that remembers whether it was given, so that both --color and
// --no-color can override the config file.
type optionalBool struct {
	set   bool
	value bool
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

func (b *optionalBool) String() string {
	return strconv.FormatBool(b.value)
}

func (b *optionalBool) IsBoolFlag() bool {
	return true
}
