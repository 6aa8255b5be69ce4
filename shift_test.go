package decimal128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftLeft_BitPattern(t *testing.T) {
	lo, hi := ShiftLeft(1, 0, 1)
	assert.Equal(t, uint64(2), lo)
	assert.Equal(t, uint64(0), hi)

	lo, hi = ShiftLeft(0, 0, 0)
	assert.Equal(t, uint64(0), lo)
	assert.Equal(t, uint64(0), hi)

	// A shift that crosses the lo/hi boundary carries into hi.
	lo, hi = ShiftLeft(1<<63, 0, 1)
	assert.Equal(t, uint64(0), lo)
	assert.Equal(t, uint64(1), hi)
}

func TestShiftLeftDestructive_Overflow(t *testing.T) {
	one := FromInt64(1)
	_, err := ShiftLeftDestructive(one, 200)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestShiftLeftDestructive_PreservesSign(t *testing.T) {
	d, err := ShiftLeftDestructive(FromInt64(-4), 1)
	require.NoError(t, err)
	assert.True(t, d.IsNegative())
	assert.Equal(t, "-8", ToUnscaledString(d))
}

func TestShiftRight_StickyBitRounding(t *testing.T) {
	cases := []struct {
		v       int64
		n       uint
		roundUp bool
		want    int64
	}{
		{1, 1, true, 1},
		{1, 1, false, 0},
		{-4, 3, true, -1},
		{-4, 3, false, 0},
		{0, 5, true, 0},
	}
	for _, c := range cases {
		got := ShiftRight(FromInt64(c.v), c.n, c.roundUp)
		want := FromInt64(c.want)
		assert.Equal(t, want, got, "shiftRight(%d, %d, %v)", c.v, c.n, c.roundUp)
	}
}

func TestShiftRight_ZeroCountIsNoOp(t *testing.T) {
	d := FromInt64(-12345)
	assert.Equal(t, d, ShiftRight(d, 0, true))
}

func TestShiftLeftMultiPrecision_SingleLimb(t *testing.T) {
	limbs := make([]uint32, 4)
	limbs[0] = 1
	// A shift of 1 still yields a used length of usedLength + ceil(n/32),
	// even though the extra limb ends up zero.
	n := ShiftLeftMultiPrecision(limbs, 1, 1)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint32(2), limbs[0])
	assert.Equal(t, uint32(0), limbs[1])
}

func TestShiftLeftMultiPrecision_CrossesLimbBoundary(t *testing.T) {
	limbs := make([]uint32, 4)
	limbs[0] = 1 << 31
	n := ShiftLeftMultiPrecision(limbs, 1, 1)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint32(0), limbs[0])
	assert.Equal(t, uint32(1), limbs[1])
}

func TestShiftLeftMultiPrecision_WholeLimbShift(t *testing.T) {
	limbs := make([]uint32, 4)
	limbs[0] = 0xFFFFFFFF
	n := ShiftLeftMultiPrecision(limbs, 1, 32)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint32(0), limbs[0])
	assert.Equal(t, uint32(0xFFFFFFFF), limbs[1])
}

func TestShiftRightMultiPrecision_MirrorsShiftLeft(t *testing.T) {
	limbs := []uint32{0, 1, 0, 0}
	n := ShiftRightMultiPrecision(limbs, 4, 32)
	require.Equal(t, 1, n)
	assert.Equal(t, uint32(1), limbs[0])
}

func TestShiftRightMultiPrecision_ResidualBits(t *testing.T) {
	limbs := []uint32{0, 2, 0, 0}
	n := ShiftRightMultiPrecision(limbs, 4, 33)
	require.Equal(t, 1, n)
	assert.Equal(t, uint32(1), limbs[0])
}

func TestShiftRightMultiPrecision_ShiftsEverythingOut(t *testing.T) {
	limbs := []uint32{1, 1, 1, 1}
	n := ShiftRightMultiPrecision(limbs, 4, 200)
	assert.Equal(t, 0, n)
	for _, l := range limbs {
		assert.Equal(t, uint32(0), l)
	}
}
