package obj

import (
	"strconv"
	"strings"
)

// Index is a 1-based reference that may be absent.
// The zero value is absent.
type Index struct {
	N     int
	Valid bool
}

// Some returns a present Index.
func Some(n int) Index { return Index{N: n, Valid: true} }

// Get returns the index and whether it is present.
func (i Index) Get() (int, bool) { return i.N, i.Valid }

func (i Index) String() string {
	if !i.Valid {
		return "-"
	}
	return strconv.Itoa(i.N)
}

// FaceVertex is one corner of a face. Position is always set.
type FaceVertex struct {
	Position int
	Texture  Index
	Normal   Index
}

func (v FaceVertex) String() string {
	switch {
	case v.Texture.Valid && v.Normal.Valid:
		return strconv.Itoa(v.Position) + "/" + v.Texture.String() + "/" + v.Normal.String()
	case v.Normal.Valid:
		return strconv.Itoa(v.Position) + "//" + v.Normal.String()
	case v.Texture.Valid:
		return strconv.Itoa(v.Position) + "/" + v.Texture.String()
	}
	return strconv.Itoa(v.Position)
}

// Face is a triangle.
type Face [3]FaceVertex

// parseFaceVertex decodes one of "p", "p/t", "p//n" or "p/t/n".
// An empty field means the vertex has no reference of that kind.
func parseFaceVertex(tok string) (FaceVertex, error) {
	var v FaceVertex

	pos, rest, more := strings.Cut(tok, "/")
	if pos == "" {
		return v, ErrMissingPositionIndex
	}
	p, err := parseIndex(pos)
	if err != nil {
		return v, err
	}
	v.Position = p
	if !more {
		return v, nil
	}

	tex, rest, more := strings.Cut(rest, "/")
	if tex != "" {
		t, err := parseIndex(tex)
		if err != nil {
			return v, err
		}
		v.Texture = Some(t)
	}
	if !more {
		return v, nil
	}

	if strings.Contains(rest, "/") {
		return v, ErrTooManyFields
	}
	if rest != "" {
		n, err := parseIndex(rest)
		if err != nil {
			return v, err
		}
		v.Normal = Some(n)
	}
	return v, nil
}

// consistentWith reports whether v and prev agree on which optional
// references they carry. A vertex may neither drop nor add a texture or
// normal reference relative to the one before it.
func (v FaceVertex) consistentWith(prev FaceVertex) bool {
	return v.Texture.Valid == prev.Texture.Valid && v.Normal.Valid == prev.Normal.Valid
}
