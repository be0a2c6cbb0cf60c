package shapes_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes"
)

const epsilon = 1e-5

func TestProjection(t *testing.T) {
	p := shapes.Projection(500, 500)

	f := float32(1 / math.Tan(math.Pi/8)) // cot(22.5°)
	want := mgl32.Mat4{
		f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -100.1 / 99.9, -1,
		0, 0, -20.0 / 99.9, 0,
	}
	assert.True(t, p.ApproxEqualThreshold(want, epsilon), "got %v, want %v", p, want)

	// Deterministic across calls.
	assert.Equal(t, p, shapes.Projection(500, 500))
}

func TestProjectionAspect(t *testing.T) {
	square := shapes.Projection(500, 500)
	wide := shapes.Projection(1000, 500)

	assert.InDelta(t, square[0]/2, wide[0], epsilon, "x scale halves at 2:1")
	assert.InDelta(t, square[5], wide[5], epsilon, "y scale depends only on fov")
}

func TestModelViewsCompose(t *testing.T) {
	mvs := shapes.ModelViews(shapes.DefaultMeshes())
	require.Len(t, mvs, 3)

	want := []mgl32.Vec3{
		{-1.5, 1.0, -7.0},
		{1.5, 1.0, -7.0},
		{0.0, -1.5, -7.0},
	}
	for i, mv := range mvs {
		assert.True(t, mv.Col(3).Vec3().ApproxEqualThreshold(want[i], epsilon),
			"shape %d translation: got %v, want %v", i, mv.Col(3).Vec3(), want[i])
		assert.True(t, mv.Mat3().ApproxEqual(mgl32.Ident3()), "shape %d has no rotation", i)
	}

	// Cumulative composition, not independent resets.
	first := mgl32.Translate3D(-1.5, 1.0, -7.0)
	second := first.Mul4(mgl32.Translate3D(3.0, 0.0, 0.0))
	third := second.Mul4(mgl32.Translate3D(-1.5, -2.5, 0.0))
	assert.True(t, mvs[0].ApproxEqual(first))
	assert.True(t, mvs[1].ApproxEqual(second))
	assert.True(t, mvs[2].ApproxEqual(third))
}

func TestModelViewsEmpty(t *testing.T) {
	assert.Empty(t, shapes.ModelViews(nil))
}
