package obj

import (
	"errors"
	"os"
	"slices"
)

var errIsDirectory = errors.New("is a directory")

// Loader parses OBJ geometry into flat position, normal and texture
// coordinate lists plus triangle faces. A Loader is not safe for
// concurrent use; distinct Loaders are independent.
type Loader struct {
	positions []float32
	normals   []float32
	texCoords []float32
	faces     []Face
	lines     int

	opts options
}

// Stats summarizes the last parse.
type Stats struct {
	Lines     int
	Positions int
	Normals   int
	TexCoords int
	Faces     int
}

// New returns a Loader with empty containers.
func New(opts ...Option) *Loader {
	o := options{
		logger:      NoopLogger(),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader{opts: o}
}

// Parse reads the file at path. On failure the returned error is an
// *Error and the Loader holds no geometry.
func (l *Loader) Parse(path string) error {
	l.reset()
	l.lines = 0
	f, err := os.Open(path)
	if err == nil {
		var fi os.FileInfo
		if fi, err = f.Stat(); err == nil && fi.IsDir() {
			err = errIsDirectory
		}
		if err != nil {
			f.Close()
		}
	}
	if err != nil {
		err := &Error{Kind: KindFileOpen, Name: path, cause: err}
		l.opts.logger.WithName(path).LogParse(l.Stats(), err)
		return err
	}
	defer f.Close()
	return l.parseNamed(path, f)
}

// Positions returns a copy of the position list, three values per vertex.
func (l *Loader) Positions() []float32 { return slices.Clone(l.positions) }

// Normals returns a copy of the normal list, three values per normal.
func (l *Loader) Normals() []float32 { return slices.Clone(l.normals) }

// TexCoords returns a copy of the texture coordinate list, always three
// values (u, v, w) per entry.
func (l *Loader) TexCoords() []float32 { return slices.Clone(l.texCoords) }

// Faces returns a copy of the parsed faces.
func (l *Loader) Faces() []Face { return slices.Clone(l.faces) }

// Stats reports the counts of the last parse.
func (l *Loader) Stats() Stats {
	return Stats{
		Lines:     l.lines,
		Positions: len(l.positions) / 3,
		Normals:   len(l.normals) / 3,
		TexCoords: len(l.texCoords) / 3,
		Faces:     len(l.faces),
	}
}

// reset clears the containers. The line count is kept so that a failed
// parse still reports how far it got.
func (l *Loader) reset() {
	l.positions = nil
	l.normals = nil
	l.texCoords = nil
	l.faces = nil
}
