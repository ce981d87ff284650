package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireInside(t *testing.T, poly []vec4) {
	t.Helper()
	const eps = 1e-5
	for _, v := range poly {
		w := v[3] + eps
		require.True(t, v[0] >= -w && v[0] <= w, "x outside: %v", v)
		require.True(t, v[1] >= -w && v[1] <= w, "y outside: %v", v)
		require.True(t, v[2] >= -w && v[2] <= w, "z outside: %v", v)
	}
}

func TestInsideClipVolume(t *testing.T) {
	cases := []struct {
		v    vec4
		want bool
	}{
		{vec4{0, 0, 0, 1}, true},
		{vec4{1, -1, 1, 1}, true},
		{vec4{2, 0, 0, 2}, true},
		{vec4{1.5, 0, 0, 1}, false},
		{vec4{0, -1.5, 0, 1}, false},
		{vec4{0, 0, -2, 1}, false},
		{vec4{0, 0, 0, -1}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InsideClipVolume(tc.v), "%v", tc.v)
	}
}

func TestClipInsideIsUnchanged(t *testing.T) {
	a, b, c := vec4{0, 0, 0, 1}, vec4{0.5, 0, 0, 1}, vec4{0, 0.5, 0.5, 1}

	var cl Clipper
	assert.Equal(t, []vec4{a, b, c}, cl.Clip(a, b, c))
}

func TestClipOutside(t *testing.T) {
	var cl Clipper
	assert.Empty(t, cl.Clip(vec4{2, 0, 0, 1}, vec4{3, 0, 0, 1}, vec4{2, 1, 0, 1}))
	assert.Empty(t, cl.Clip(vec4{0, 0, 0, -1}, vec4{1, 0, 0, -1}, vec4{0, 1, 0, -1}))
}

func TestClipNearPlane(t *testing.T) {
	a, b, c := vec4{0, 0, -2, 1}, vec4{0.5, 0, 0, 1}, vec4{-0.5, 0.5, 0, 1}

	var cl Clipper
	poly := cl.Clip(a, b, c)
	want := []vec4{
		{-0.25, 0.25, -1, 1},
		{0.25, 0, -1, 1},
		b,
		c,
	}
	assert.Equal(t, want, poly)
	requireInside(t, poly)
}

func TestClipLargeTriangle(t *testing.T) {
	var cl Clipper
	poly := cl.Clip(vec4{-10, -10, 0, 1}, vec4{10, -10, 0, 1}, vec4{0, 10, 0, 1})
	require.GreaterOrEqual(t, len(poly), 3)
	assert.LessOrEqual(t, len(poly), MaxClipVertices)
	requireInside(t, poly)
}

func TestClipReusesScratch(t *testing.T) {
	var cl Clipper
	first := cl.Clip(vec4{0, 0, -2, 1}, vec4{0.5, 0, 0, 1}, vec4{-0.5, 0.5, 0, 1})
	require.Len(t, first, 4)

	allocs := testing.AllocsPerRun(10, func() {
		cl.Clip(vec4{-10, -10, 0, 1}, vec4{10, -10, 0, 1}, vec4{0, 10, 0, 1})
	})
	assert.Zero(t, allocs)
}

func TestFrontFacing(t *testing.T) {
	a, b, c := vec2{0, 0}, vec2{10, 0}, vec2{0, 10}

	// clockwise on a y-down screen
	assert.False(t, FrontFacing(a, b, c))
	assert.True(t, FrontFacing(a, c, b))
	assert.False(t, FrontFacing(a, a, b), "degenerate")
}
