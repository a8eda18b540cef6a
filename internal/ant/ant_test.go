package ant

import (
	"math/big"
	"testing"

	"collatz-ant/internal/core"
	"collatz-ant/internal/lattice/hexagonal"
	"collatz-ant/internal/lattice/square"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSquare(t *testing.T, seed int64) *Ant {
	t.Helper()
	a, err := New(big.NewInt(seed), square.New())
	require.NoError(t, err)
	return a
}

func bigString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return v
}

func TestNewPlacesSeedAtOrigin(t *testing.T) {
	a := newSquare(t, 7)

	cell, ok := a.Grid().Get(core.Point{})
	require.True(t, ok)
	assert.Equal(t, "7", cell.Value.String())
	assert.Equal(t, Black, cell.Color)
	assert.Equal(t, core.Point{}, a.Position())
	assert.Equal(t, square.North, a.Heading())
	assert.Equal(t, 1, a.Grid().Len())

	cur := a.Current()
	assert.Equal(t, 0, cur.Index)
	assert.Equal(t, "7", cur.Value.String())
	assert.Equal(t, Black, cur.Color)
}

func TestNewCopiesSeed(t *testing.T) {
	seed := big.NewInt(7)
	a, err := New(seed, square.New())
	require.NoError(t, err)
	seed.SetInt64(8)
	assert.Equal(t, "7", a.Current().Value.String())
	assert.Equal(t, "7", a.Seed().String())
}

func TestNewRejectsNonPositiveSeed(t *testing.T) {
	for _, seed := range []*big.Int{big.NewInt(0), big.NewInt(-1), bigString(t, "-99999999999999999999"), nil} {
		a, err := New(seed, square.New())
		assert.Nil(t, a)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "seed", invalid.Field)
	}
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, "42", seed.String())

	seed, err = ParseSeed("99999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, "99999999999999999999", seed.String())

	for _, in := range []string{"0", "-5", "abc", "2.5", "", "1e3"} {
		_, err := ParseSeed(in)
		var invalid *InvalidInputError
		assert.ErrorAs(t, err, &invalid, "input %q", in)
	}
}

func TestSeedSevenSequence(t *testing.T) {
	a := newSquare(t, 7)
	want := []int64{22, 11, 34, 17, 52, 26, 13, 40, 20, 10, 5, 16, 8, 4, 2, 1, 4, 2, 1, 4, 2, 1}

	var got []int64
	for snap := range a.Run(len(want)) {
		got = append(got, snap.Value.Int64())
	}
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), a.Steps())
}

func TestSeedSevenPath(t *testing.T) {
	a := newSquare(t, 7)
	want := []core.Point{
		{X: -1, Y: 0}, {X: -1, Y: 1}, {X: -2, Y: 1}, {X: -2, Y: 2}, {X: -3, Y: 2},
		{X: -3, Y: 3}, {X: -2, Y: 3}, {X: -2, Y: 4}, {X: -1, Y: 4}, {X: -1, Y: 3},
	}
	for i, snap := range collect(a.Run(len(want))) {
		assert.Equal(t, i+1, snap.Index)
		assert.Equal(t, want[i], snap.Position, "step %d", i+1)
	}
}

func TestSeedOneFirstStep(t *testing.T) {
	a := newSquare(t, 1)

	snap := a.Step()
	assert.Equal(t, square.West, snap.Heading, "odd value turns left")
	assert.Equal(t, core.Point{X: -1, Y: 0}, snap.Position)
	assert.Equal(t, "4", snap.Value.String())
	assert.Equal(t, White, snap.Color)
}

func TestSeedOneCyclesForever(t *testing.T) {
	a := newSquare(t, 1)
	a.Run(12)(func(Snapshot) bool { return true })

	assert.Equal(t, core.Point{}, a.Position())
	assert.Equal(t, square.North, a.Heading())
	assert.Equal(t, "1", a.Current().Value.String())
	assert.Equal(t, 12, a.Grid().Len())

	assert.Equal(t, "4", a.Step().Value.String(), "value 1 is not terminal")
}

func TestStepProperties(t *testing.T) {
	lattices := []core.Lattice{square.New(), hexagonal.New()}
	for _, l := range lattices {
		for seed := int64(1); seed <= 60; seed++ {
			a, err := New(big.NewInt(seed), l)
			require.NoError(t, err)
			for i := 0; i < 40; i++ {
				before := a.Current()
				sizeBefore := a.Grid().Len()

				snap := a.Step()

				n := l.Directions()
				want := new(big.Int)
				if before.Value.Bit(0) == 1 {
					want.Add(want.Mul(before.Value, big.NewInt(3)), big.NewInt(1))
					assert.Equal(t, before.Heading.Left(n), snap.Heading)
				} else {
					want.Quo(before.Value, big.NewInt(2))
					assert.Equal(t, before.Heading.Right(n), snap.Heading)
				}
				assert.Zero(t, want.Cmp(snap.Value), "seed %d step %d", seed, snap.Index)
				assert.Equal(t, before.Position.Add(l.Offset(snap.Heading)), snap.Position)
				assert.Equal(t, ColorOf(snap.Value), snap.Color)
				assert.GreaterOrEqual(t, a.Grid().Len(), sizeBefore)

				cell, ok := a.Grid().Get(snap.Position)
				require.True(t, ok)
				assert.Same(t, snap.Value, cell.Value)
				assert.Equal(t, snap.Color, cell.Color)
			}
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first := collect(newSquare(t, 27).Run(300))
	second := collect(newSquare(t, 27).Run(300))
	require.Len(t, first, 300)
	require.Len(t, second, 300)
	for i := range first {
		assert.Equal(t, first[i].Position, second[i].Position)
		assert.Equal(t, first[i].Heading, second[i].Heading)
		assert.Zero(t, first[i].Value.Cmp(second[i].Value))
	}
}

func TestRunContinuesFromCurrentState(t *testing.T) {
	a := newSquare(t, 7)
	collect(a.Run(5))
	rest := collect(a.Run(3))

	require.Len(t, rest, 3)
	assert.Equal(t, 6, rest[0].Index)
	assert.Equal(t, "26", rest[0].Value.String())
}

func TestRunZeroSteps(t *testing.T) {
	a := newSquare(t, 7)
	assert.Empty(t, collect(a.Run(0)))
	assert.Equal(t, 0, a.Steps())
}

func TestRunStopsWhenConsumerStops(t *testing.T) {
	a := newSquare(t, 7)
	for snap := range a.Run(100) {
		if snap.Index == 4 {
			break
		}
	}
	assert.Equal(t, 4, a.Steps())
}

func TestTwentyDigitSeed(t *testing.T) {
	a, err := New(bigString(t, "99999999999999999999"), square.New())
	require.NoError(t, err)

	snaps := collect(a.Run(2))
	require.Len(t, snaps, 2)
	assert.Equal(t, "299999999999999999998", snaps[0].Value.String())
	assert.Equal(t, "149999999999999999999", snaps[1].Value.String())
}

func TestStepPastUint64(t *testing.T) {
	// 2^64 - 1 is odd, so the next value is 3*2^64 - 2.
	a, err := New(bigString(t, "18446744073709551615"), square.New())
	require.NoError(t, err)

	snap := a.Step()
	assert.Equal(t, "55340232221128654846", snap.Value.String())
	assert.Equal(t, White, snap.Color)
	assert.Equal(t, "27670116110564327423", a.Step().Value.String())
}

func TestNextDoesNotModifyInput(t *testing.T) {
	v := big.NewInt(7)
	assert.Equal(t, "22", Next(v).String())
	assert.Equal(t, "7", v.String())
	assert.Equal(t, "11", Next(big.NewInt(22)).String())
}

func collect(seq func(func(Snapshot) bool)) []Snapshot {
	var out []Snapshot
	seq(func(s Snapshot) bool {
		out = append(out, s)
		return true
	})
	return out
}
