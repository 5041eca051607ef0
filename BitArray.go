package Go_DSA

import (
	"math/bits"
)

// New BitArray able to hold at least size bits, all down.
func New(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed length array of bits. The zero value has length 0.
type BitArray struct {
	bits []uint
}

// Len is the number of addressable bits, a multiple of bits.UintSize.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Fill sets every bit to v.
func (u BitArray) Fill(v bool) {
	var w uint
	if v {
		w = ^w
	}
	for i := range u.bits {
		u.bits[i] = w
	}
}

// Count of the bits that are up.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}
