// Command spritemesh builds sprite meshes from the command line, for checking
// shapes without a host engine.
//
//	spritemesh build star.yaml --png star.png
//	spritemesh outline --svg logo.svg --yaml
//	printf '0 0\n2 0\n2 1\n' | spritemesh uv --strict
//
// Point input on stdin is newline separated "x y" pairs. For outlines, a blank
// line ends the polygon.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/spritemesh"
	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/shape"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

var (
	app     = kingpin.New("spritemesh", "Build procedural sprite meshes.")
	verbose = app.Flag("verbose", "Log build diagnostics to stderr.").Short('v').Bool()

	buildCmd  = app.Command("build", "Build a mesh from a YAML shape document.")
	buildFile = buildCmd.Arg("file", "Shape document. Reads stdin if omitted.").File()
	buildOut  = outputFlags(buildCmd)

	outlineCmd = app.Command("outline", "Build a mesh from a polygon outline.")
	outlineSVG = outlineCmd.Flag("svg", "Read the first polygon of an SVG file instead of stdin.").ExistingFile()
	outlineOut = outputFlags(outlineCmd)

	uvCmd    = app.Command("uv", "Print the bounds and UV unwrapping of points read from stdin.")
	uvStrict = uvCmd.Flag("strict", "Fail on empty or degenerate input instead of printing non-finite UVs.").Bool()
)

type output struct {
	noOptimize *bool
	yaml       *bool
	png        *string
	imgcat     *bool
	scale      *float64
}

func outputFlags(cmd *kingpin.CmdClause) output {
	return output{
		noOptimize: cmd.Flag("no-optimize", "Skip the topology optimization pass.").Bool(),
		yaml:       cmd.Flag("yaml", "Dump the mesh as YAML instead of a summary.").Bool(),
		png:        cmd.Flag("png", "Write a debug rendering to this path.").String(),
		imgcat:     cmd.Flag("imgcat", "Show the debug rendering inline (iTerm only).").Bool(),
		scale:      cmd.Flag("scale", "Pixels per unit in the debug rendering.").Default("50").Float64(),
	}
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		spritemesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	switch command {
	case buildCmd.FullCommand():
		in := io.Reader(os.Stdin)
		if *buildFile != nil {
			defer (*buildFile).Close()
			in = *buildFile
		}
		doc, err := decodeDocument(in)
		app.FatalIfError(err, "build")
		s, err := doc.Shape.Shape()
		app.FatalIfError(err, "build")
		opts := doc.Shape.Options()
		if *buildOut.noOptimize {
			opts.OptimizeMesh = false
		}
		sprite, err := spritemesh.New(s, opts)
		app.FatalIfError(err, "build")
		app.FatalIfError(doc.apply(sprite), "build")
		app.FatalIfError(buildOut.write(os.Stdout, sprite), "build")

	case outlineCmd.FullCommand():
		outline, err := readOutline(*outlineSVG)
		app.FatalIfError(err, "outline")
		opts := shape.DefaultBuildOptions()
		opts.OptimizeMesh = !*outlineOut.noOptimize
		sprite, err := spritemesh.New(outline, opts)
		app.FatalIfError(err, "outline")
		app.FatalIfError(outlineOut.write(os.Stdout, sprite), "outline")

	case uvCmd.FullCommand():
		points, err := readPoints(os.Stdin, false)
		app.FatalIfError(err, "uv")
		app.FatalIfError(printUV(os.Stdout, points, *uvStrict), "uv")
	}
}

func readOutline(svgPath string) (*shape.Outline, error) {
	if svgPath == "" {
		points, err := readPoints(os.Stdin, true)
		if err != nil {
			return nil, err
		}
		outline := &shape.Outline{Points: points}
		return outline, outline.Validate()
	}
	f, err := os.Open(svgPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return shape.OutlineFromSVG(f)
}

func (o output) write(w io.Writer, sprite *spritemesh.Sprite) error {
	if *o.yaml {
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		if err := encoder.Encode(sprite.Mesh); err != nil {
			return err
		}
	} else {
		printSummary(w, sprite)
	}

	if *o.png == "" && !*o.imgcat {
		return nil
	}
	path := *o.png
	if path == "" {
		path = "/tmp/spritemesh.png"
	}
	if err := sprite.Mesh.SavePNG(path, *o.scale); err != nil {
		return err
	}
	if *o.imgcat {
		return imgcat.CatFile(path, w)
	}
	return nil
}

func printSummary(w io.Writer, sprite *spritemesh.Sprite) {
	fmt.Fprintln(w, sprite.Mesh.String())
	c := sprite.Collider
	fmt.Fprintf(w, "  collider: %s at (%g, %g)\n", aurora.Cyan(c.Kind), c.Center.X, c.Center.Y)
	m := sprite.Material
	fmt.Fprintf(w, "  material: %s %s", aurora.Bold(m.Name), m.Color.Hex())
	if m.Textured() {
		fmt.Fprintf(w, " texture %s", m.Texture)
	}
	fmt.Fprintln(w)
}

func printUV(w io.Writer, points []geom.Point, strict bool) error {
	b := geom.Bounds(points)
	fmt.Fprintf(w, "bounds: [%g, %g] x [%g, %g]\n", b.MinX, b.MaxX, b.MinY, b.MaxY)

	var uvs []geom.UV
	if strict {
		var err error
		uvs, err = geom.UVUnwrapStrict(points)
		if err != nil {
			return err
		}
	} else {
		uvs = geom.UVUnwrap(points)
	}

	for i, uv := range uvs {
		line := fmt.Sprintf("%g %g -> %g %g", points[i].X, points[i].Y, uv.U, uv.V)
		if !uv.IsFinite() {
			fmt.Fprintln(w, aurora.Red(line))
			continue
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
