package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDigitGrid(t *testing.T) {
	g, err := ParseDigitGrid([]byte("123\n456\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.W)
	assert.Equal(t, 2, g.H)
	assert.Equal(t, 6, g.At(Pt{2, 1}))
	assert.Equal(t, "123\n456", g.String())

	_, err = ParseDigitGrid([]byte("12\n345\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDigitGrid([]byte("1x\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDigitGrid(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNeighbours(t *testing.T) {
	g := NewGrid[int](3, 3)

	assert.ElementsMatch(t, []Pt{{1, 0}, {0, 1}}, g.Neighbours(Pt{0, 0}, Compass4))
	assert.Len(t, g.Neighbours(Pt{0, 0}, Compass8), 3)
	assert.Len(t, g.Neighbours(Pt{1, 1}, Compass8), 8)

	g.Toroidal = true
	assert.ElementsMatch(t, []Pt{{0, 2}, {2, 0}, {1, 0}, {0, 1}}, g.Neighbours(Pt{0, 0}, Compass4))
}

func TestWrap(t *testing.T) {
	g := NewGrid[byte](4, 3)
	assert.Equal(t, Pt{3, 2}, g.Wrap(Pt{-1, -1}))
	assert.Equal(t, Pt{0, 0}, g.Wrap(Pt{4, 3}))
}

func TestGetSetClonePad(t *testing.T) {
	g := NewGrid[int](2, 2)
	g.Set(Pt{1, 1}, 7)

	v, ok := g.Get(Pt{1, 1})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = g.Get(Pt{2, 0})
	assert.False(t, ok)

	c := g.Clone()
	c.Set(Pt{0, 0}, 1)
	assert.Equal(t, 0, g.At(Pt{0, 0}))

	p := g.Pad(1, 9)
	assert.Equal(t, 4, p.W)
	assert.Equal(t, 4, p.H)
	assert.Equal(t, 9, p.At(Pt{0, 0}))
	assert.Equal(t, 7, p.At(Pt{2, 2}))
	assert.Equal(t, 12, p.Count(func(v int) bool { return v == 9 }))
}

func TestDijkstra(t *testing.T) {
	g, err := ParseDigitGrid([]byte("116\n191\n611\n"))
	require.NoError(t, err)

	d, ok := g.Dijkstra(Pt{0, 0}, Pt{2, 2}, func(v int) int { return v })
	require.True(t, ok)
	// Either border route costs 1+6+1+1; the centre costs 9 on its own.
	assert.Equal(t, 9, d)
}

func TestPriorityQueueOrder(t *testing.T) {
	q := NewPriorityQueue[string]()
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 1)
	q.Push("z", 0)

	var got []string
	for q.Len() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []string{"z", "a", "b", "c"}, got)
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 7, Pt{1, 2}.MDist(Pt{-2, -2}))
	assert.Equal(t, Pt{3, 1}, Pt{1, 2}.Add(Pt{2, -1}))
	assert.Equal(t, Pt3Int{1, 1, 1}, Pt3Int{2, 3, 4}.Sub(Pt3Int{1, 2, 3}))
	assert.Equal(t, 6, Pt3Int{1, 2, 3}.MDist(Pt3Int{}))
	assert.Equal(t, "(1,2)", Pt{1, 2}.String())
}

func TestParseGraph(t *testing.T) {
	g, err := ParseGraph([]byte("start-A\nA-end\nstart-b\n"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "b"}, g.Neighbours("start"))
	assert.Equal(t, []string{"A", "b", "end", "start"}, g.Nodes())
	assert.True(t, g.Has("end"))

	_, err = ParseGraph([]byte("start\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPointNeighbours(t *testing.T) {
	p := Pt{5, 5}
	assert.Equal(t, []Pt{{5, 4}, {4, 5}, {6, 5}, {5, 6}}, p.Neighbours4())
	n8 := p.Neighbours8()
	require.Len(t, n8, 8)
	assert.Equal(t, Pt{4, 4}, n8[0])
	assert.Equal(t, Pt{6, 6}, n8[7])
	assert.Equal(t, 2, p.MDist(Pt{4, 4}))
}
