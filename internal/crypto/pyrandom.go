// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "math/bits"

// MT19937 parameters.
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// pyRandom is a Mersenne Twister seeded and sampled exactly like CPython's
// random module. Only the pieces used by key derivation are implemented:
// integer seeding, getrandbits for widths up to 32, randbelow and the pool
// branch of sample.
//
// A pyRandom is not safe for concurrent use; every derivation owns one.
type pyRandom struct {
	state [mtN]uint32
	index int
}

func newPyRandom(seed uint64) *pyRandom {
	r := new(pyRandom)
	r.seed(seed)
	return r
}

// seed mirrors random.seed(n) for a non-negative integer n: n is split into
// little-endian 32-bit words (at least one, so zero seeds with [0]) and fed
// to init_by_array.
func (r *pyRandom) seed(seed uint64) {
	key := []uint32{uint32(seed)}
	if hi := uint32(seed >> 32); hi != 0 {
		key = append(key, hi)
	}
	r.initByArray(key)
}

func (r *pyRandom) initGenrand(s uint32) {
	r.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := r.state[i-1]
		r.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	r.index = mtN
}

func (r *pyRandom) initByArray(key []uint32) {
	r.initGenrand(19650218)

	mt := &r.state
	i, j := 1, 0
	for k := max(mtN, len(key)); k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			mt[0] = mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := mtN - 1; k > 0; k-- {
		prev := mt[i-1]
		mt[i] = (mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			mt[0] = mt[mtN-1]
			i = 1
		}
	}

	// MSB is 1, assuring a non-zero initial array.
	mt[0] = 0x80000000
	r.index = mtN
}

// generate refills the whole state block.
func (r *pyRandom) generate() {
	mt := &r.state
	for kk := 0; kk < mtN; kk++ {
		y := (mt[kk] & mtUpperMask) | (mt[(kk+1)%mtN] & mtLowerMask)
		next := mt[(kk+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		mt[kk] = next
	}
	r.index = 0
}

// next32 returns the next tempered 32-bit output (genrand_uint32).
func (r *pyRandom) next32() uint32 {
	if r.index >= mtN {
		r.generate()
	}

	y := r.state[r.index]
	r.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

// getRandBits returns k random bits, 1 <= k <= 32.
func (r *pyRandom) getRandBits(k int) uint32 {
	return r.next32() >> (32 - k)
}

// below returns a uniform integer in [0, n) by rejection sampling over
// getRandBits(bitlen(n)). n must be positive.
func (r *pyRandom) below(n int) int {
	k := bits.Len(uint(n))
	v := int(r.getRandBits(k))
	for v >= n {
		v = int(r.getRandBits(k))
	}
	return v
}

// shuffle returns a permutation of src drawn without replacement, matching
// random.sample(src, len(src)). CPython switches to a set-based algorithm
// for populations above 21 elements; derived keys never reach that size.
func (r *pyRandom) shuffle(src []rune) []rune {
	n := len(src)
	pool := make([]rune, n)
	copy(pool, src)

	result := make([]rune, n)
	for i := 0; i < n; i++ {
		j := r.below(n - i)
		result[i] = pool[j]
		pool[j] = pool[n-i-1]
	}

	return result
}
