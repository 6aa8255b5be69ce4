package decimal128

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_SignCombinations(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{1, 2, 3},
		{-1, -2, -3},
		{5, -3, 2},
		{-5, 3, -2},
		{3, -5, -2},
		{0, 0, 0},
		{0, 5, 5},
		{-5, 5, 0},
	}
	for _, c := range cases {
		got, err := Add(FromInt64(c.a), FromInt64(c.b))
		require.NoError(t, err)
		assert.Equal(t, FromInt64(c.want), got, "%d + %d", c.a, c.b)
	}
}

func TestAdd_Commutative(t *testing.T) {
	a := FromInt64(1 << 40)
	b := FromInt64(-(1 << 39))
	ab, err := Add(a, b)
	require.NoError(t, err)
	ba, err := Add(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestAdd_31BitShiftSeed(t *testing.T) {
	got, err := Add(FromInt64(1<<31), FromInt64(1<<31))
	require.NoError(t, err)
	assert.Equal(t, FromInt64(1<<32), got)
}

func TestAdd_MaxUnscaledSeed(t *testing.T) {
	got, err := Add(MaxUnscaled, MaxUnscaled)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	_ = got
}

func TestAdd_Overflow(t *testing.T) {
	_, err := Add(MaxUnscaled, FromInt64(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAddWithOverflow_NoOverflow(t *testing.T) {
	out, k := AddWithOverflow(FromInt64(1<<31), FromInt64(1<<31))
	assert.Equal(t, 0, k)
	assert.Equal(t, FromInt64(1<<32), out)
}

func TestAddWithOverflow_PositiveOverflow(t *testing.T) {
	out, k := AddWithOverflow(MaxUnscaled, MaxUnscaled)
	assert.Equal(t, 1, k)

	// decode(out) + k*2^127 must equal the true sum, 2*MaxUnscaled.
	pow127 := new(big.Int).Lsh(big.NewInt(1), 127)
	pow127.Mul(pow127, big.NewInt(int64(k)))
	got := new(big.Int).Add(ToBigInt(out), pow127)
	want := new(big.Int).Add(ToBigInt(MaxUnscaled), ToBigInt(MaxUnscaled))
	assert.Equal(t, 0, got.Cmp(want))
}

func TestAddWithOverflow_NegativeOverflow(t *testing.T) {
	_, k := AddWithOverflow(MinUnscaled, MinUnscaled)
	assert.Equal(t, -1, k)
}

func TestAddWithOverflow_OppositeSignsNeverOverflow(t *testing.T) {
	_, k := AddWithOverflow(MaxUnscaled, MinUnscaled)
	assert.Equal(t, 0, k)
}

func TestNegateThenAddIdentity(t *testing.T) {
	a := FromInt64(123456789)
	b := FromInt64(987654321)
	sum, err := Add(a, b)
	require.NoError(t, err)
	back, err := Add(sum, Negate(b))
	require.NoError(t, err)
	assert.Equal(t, a, back)
}
