package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"
)

func TestMirrorReflectsThroughAnchor(t *testing.T) {
	cases := []struct {
		p1, p2 vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}},
		{vec.Vec2{X: 100, Y: 50}, vec.Vec2{X: 40, Y: 80}},
		{vec.Vec2{X: -3, Y: 7}, vec.Vec2{X: 12.5, Y: -20}},
		{vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 9, Y: 5}},
	}
	for _, tc := range cases {
		m := Mirror(tc.p1, tc.p2)

		d1 := tc.p2.Sub(tc.p1)
		d2 := m.Sub(tc.p1)
		cross := d1.X*d2.Y - d1.Y*d2.X
		assert.InDelta(t, 0, cross, 1e-9, "collinear with %v %v", tc.p1, tc.p2)
		assert.Less(t, d1.Dot(d2), 0.0, "opposite side of the anchor")
		assert.InDelta(t, d1.Length(), d2.Length(), 1e-9, "same distance")
	}

	tolEqualVec2(t, vec.Vec2{X: -10, Y: -10}, Mirror(vec.Vec2{}, vec.Vec2{X: 10, Y: 10}), 1e-12)
}

func TestMirrorVertical(t *testing.T) {
	m := Mirror(vec.Vec2{X: 20, Y: 30}, vec.Vec2{X: 20, Y: 45})
	assert.False(t, math.IsNaN(m.X) || math.IsNaN(m.Y))
	tolEqualVec2(t, vec.Vec2{X: 20, Y: 15}, m, 0)

	p := vec.Vec2{X: 4, Y: 4}
	tolEqualVec2(t, p, Mirror(p, p), 0)
}

func TestParseContinuity(t *testing.T) {
	for in, want := range map[string]Continuity{
		"continuity-0": C0,
		"continuity-1": C1,
		"continuity-2": C2,
		"1":            C1,
	} {
		got, err := ParseContinuity(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, "continuity-", got.String()[:11])
	}
	_, err := ParseContinuity("continuity-3")
	assert.ErrorIs(t, err, ErrUnknownContinuity)
}

func TestAdjacentControl(t *testing.T) {
	a := NewArena()
	c := makeCurve(t, a, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 10}, vec.Vec2{X: 30, Y: 0})

	id, ok := AdjacentControl(c, c.Start)
	assert.True(t, ok)
	assert.Equal(t, c.Controls[0], id)

	id, ok = AdjacentControl(c, c.End)
	assert.True(t, ok)
	assert.Equal(t, c.Controls[1], id)

	_, ok = AdjacentControl(c, c.Controls[0])
	assert.False(t, ok)
}
