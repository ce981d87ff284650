// Package obj parses the geometry subset of the Wavefront OBJ format.
//
// Four directives are understood:
//
//	v x y z        position
//	vn i j k       normal
//	vt u [v] [w]   texture coordinate, v and w default to 0
//	f a b c        triangle; each corner is p, p/t, p//n or p/t/n
//
// Everything from '#' to the end of a line is a comment. Any other
// directive is an error, as are faces with more than three corners and
// negative indices.
//
// Parsing stops at the first error. The error is an *Error carrying the
// line number and the original line text:
//
//	l := obj.New()
//	if err := l.Parse("model.obj"); err != nil {
//		var perr *obj.Error
//		if errors.As(err, &perr) {
//			fmt.Fprintf(os.Stderr, "Line %d: %s\n", perr.Line, perr.Text)
//		}
//		return err
//	}
//	positions := l.Positions()
package obj
