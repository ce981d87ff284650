// Command objinfo loads OBJ files and prints what they contain.
//
//	objinfo [-v] [-json] file...
//
// Files are loaded in parallel. The first file that fails to parse is
// reported together with its offending line and objinfo exits with
// status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/thedaneeffect/objloader/internal/geom"
	"github.com/thedaneeffect/objloader/internal/source"
	"github.com/thedaneeffect/objloader/obj"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type summary struct {
	name  string
	stats obj.Stats
	mesh  *geom.Mesh
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("objinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log each parse")
	jsonLog := fs.Bool("json", false, "write log records as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: objinfo [-v] [-json] file...")
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := obj.NewTextLogger(stderr, level)
	if *jsonLog {
		logger = obj.NewJSONLogger(stderr, level)
	}

	paths := fs.Args()
	results := make([]summary, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			s, err := load(path, logger)
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		report(stderr, err)
		return 1
	}

	for _, s := range results {
		lo, hi := s.mesh.Bounds()
		fmt.Fprintf(stdout, "%s: %d positions, %d normals, %d texcoords, %d faces, bounds %v %v\n",
			s.name, s.stats.Positions, s.stats.Normals, s.stats.TexCoords, s.stats.Faces, lo, hi)
	}
	return 0
}

func load(path string, logger *obj.Logger) (summary, error) {
	l := obj.New(obj.WithLogger(logger))
	if source.Compressed(path) {
		r, err := source.Open(path)
		if err != nil {
			return summary{}, err
		}
		defer r.Close()
		if err := l.ParseReader(path, r); err != nil {
			return summary{}, err
		}
	} else if err := l.Parse(path); err != nil {
		return summary{}, err
	}

	mesh, err := geom.FromLoader(l)
	if err != nil {
		return summary{}, fmt.Errorf("%s: %w", path, err)
	}
	return summary{name: path, stats: l.Stats(), mesh: mesh}, nil
}

func report(w io.Writer, err error) {
	fmt.Fprintf(w, "objinfo: %v\n", err)
	var perr *obj.Error
	if errors.As(err, &perr) && perr.Line > 0 && perr.Kind != obj.KindRead {
		fmt.Fprintf(w, "  Line %d: %s\n", perr.Line, perr.Text)
	}
}
