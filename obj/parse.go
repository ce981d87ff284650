package obj

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseReader reads OBJ data from r. name identifies the input in errors
// and log records.
func (l *Loader) ParseReader(name string, r io.Reader) error {
	l.reset()
	return l.parseNamed(name, r)
}

func (l *Loader) parseNamed(name string, r io.Reader) error {
	l.lines = 0
	var err error
	if perr := l.scan(name, r); perr != nil {
		l.reset()
		err = perr
	}
	l.opts.logger.WithName(name).LogParse(l.Stats(), err)
	return err
}

func (l *Loader) scan(name string, r io.Reader) *Error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, l.opts.maxLineSize)), l.opts.maxLineSize)
	for sc.Scan() {
		l.lines++
		text := sc.Text()
		if err := l.parseLine(text); err != nil {
			err.Name = name
			err.Line = l.lines
			err.Text = text
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return &Error{Kind: KindRead, Name: name, Line: l.lines + 1, cause: err}
	}
	return nil
}

// parseLine handles one physical line. The returned error still lacks
// its position.
func (l *Loader) parseLine(text string) *Error {
	line, _, _ := strings.Cut(text, "#")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	keyword, args := fields[0], fields[1:]
	switch keyword {
	case "v":
		v, err := parseVec3(args)
		if err != nil {
			return &Error{Kind: KindInvalidVertex, cause: err}
		}
		l.positions = append(l.positions, v[:]...)
	case "vn":
		n, err := parseVec3(args)
		if err != nil {
			return &Error{Kind: KindInvalidNormal, cause: err}
		}
		l.normals = append(l.normals, n[:]...)
	case "vt":
		t, err := parseTexCoord(args)
		if err != nil {
			return &Error{Kind: KindInvalidTexCoord, cause: err}
		}
		l.texCoords = append(l.texCoords, t[:]...)
	case "f":
		f, err := parseFace(args)
		if err != nil {
			return &Error{Kind: KindInvalidFace, cause: err}
		}
		l.faces = append(l.faces, f)
	default:
		return &Error{Kind: KindUnknownDirective, Keyword: keyword}
	}
	return nil
}

// arg returns args[i], or "" when the line is too short. A missing
// token then fails in the number or face parser.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseVec3(args []string) ([3]float32, error) {
	var v [3]float32
	for i := range v {
		f, err := parseFloat(arg(args, i))
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	if len(args) > len(v) {
		return v, fmt.Errorf("%w %q", ErrExtraTokens, strings.Join(args[len(v):], " "))
	}
	return v, nil
}

func parseTexCoord(args []string) ([3]float32, error) {
	var t [3]float32
	u, err := parseFloat(arg(args, 0))
	if err != nil {
		return t, err
	}
	t[0] = u
	for i := 1; i < len(t); i++ {
		tok := arg(args, i)
		if tok == "" {
			continue
		}
		f, err := parseFloat(tok)
		if err != nil {
			return t, err
		}
		t[i] = f
	}
	if len(args) > len(t) {
		return t, fmt.Errorf("%w %q", ErrExtraTokens, strings.Join(args[len(t):], " "))
	}
	return t, nil
}

// parseFace reads exactly three vertices. Each vertex after the first
// must carry the same kinds of references as the one before it.
func parseFace(args []string) (Face, error) {
	var f Face
	for i := range f {
		v, err := parseFaceVertex(arg(args, i))
		if err != nil {
			return f, fmt.Errorf("vertex %d: %w", i+1, err)
		}
		if i > 0 && !v.consistentWith(f[i-1]) {
			return f, fmt.Errorf("vertex %d (%s) after %s: %w", i+1, v, f[i-1], ErrInconsistentFaceReferences)
		}
		f[i] = v
	}
	if len(args) > len(f) {
		return f, fmt.Errorf("%w %q: only triangles are supported", ErrExtraTokens, strings.Join(args[len(f):], " "))
	}
	return f, nil
}
