package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterWidth(t *testing.T) {
	assert.Equal(t, 16, registerWidth[int8]())
	assert.Equal(t, 16, registerWidth[uint8]())
	assert.Equal(t, 8, registerWidth[int16]())
	assert.Equal(t, 4, registerWidth[float32]())

	assert.False(t, isFloat[int8]())
	assert.False(t, isFloat[int16]())
	assert.True(t, isFloat[float32]())
}

func TestWidening(t *testing.T) {
	assert.Equal(t, int16(-1), widenInt8(-1))
	assert.Equal(t, int16(255), widenUint8(255))
	assert.Equal(t, int32(-32768), widenInt16(-32768))

	// Byte differences never overflow once widened.
	assert.Equal(t, int16(-255), widenUint8(0)-widenUint8(255))
	assert.Equal(t, int16(255), widenInt8(127)-widenInt8(-128))
}

func TestMadd(t *testing.T) {
	assert.Equal(t, int32(2*255*255), madd(255, 255, -255, -255))
	assert.Equal(t, int32(-7), madd(1, -3, 2, -2))
	assert.Equal(t, int64(1)<<31, maddWide(-32768, -32768, -32768, -32768))
}

func TestLaneKernelsCoverRegister(t *testing.T) {
	ones8 := []int8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	zeros8 := make([]int8, 16)
	assert.Equal(t, [4]float32{4, 4, 4, 4}, sqdfInt8{}.apply(ones8, zeros8))
	assert.Equal(t, [4]float32{4, 4, 4, 4}, mulInt8{}.apply(ones8, ones8))

	u := make([]uint8, 16)
	for i := range u {
		u[i] = uint8(i)
	}
	// Lane k holds elements 2k, 2k+1, 8+2k and 9+2k.
	got := mulUint8{}.apply(u, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})
	assert.Equal(t, [4]float32{0 + 1 + 8 + 9, 2 + 3 + 10 + 11, 4 + 5 + 12 + 13, 6 + 7 + 14 + 15}, got)

	w := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	zeros16 := make([]int16, 8)
	// Squared differences pair k with 4+k, products pair 2k with 2k+1.
	assert.Equal(t, [4]float32{1 + 25, 4 + 36, 9 + 49, 16 + 64}, sqdfInt16{}.apply(w, zeros16))
	assert.Equal(t, [4]float32{1 + 4, 9 + 16, 25 + 36, 49 + 64}, mulInt16{}.apply(w, w))

	f := []float32{1, 2, 3, 4}
	assert.Equal(t, [4]float32{1, 4, 9, 16}, mulFloat32{}.apply(f, f))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, sqdfFloat32{}.apply(f, f))
}
