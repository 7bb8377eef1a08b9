package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
	"unsafe"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint64Spread returns a pseudo-random uint64 whose bit length is uniform in
// [0, 64], so small and large magnitudes are equally likely.
func (r *RNG) Uint64Spread() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spreadLocked()
}

func (r *RNG) spreadLocked() uint64 {
	n := r.rand.Intn(65)
	if n == 0 {
		return 0
	}
	return r.rand.Uint64() >> (64 - n)
}

// Int64Spread is Uint64Spread reinterpreted with a random sign.
func (r *RNG) Int64Spread() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	x := int64(r.spreadLocked() >> 1)
	if r.rand.Intn(2) == 0 {
		return -x - 1
	}
	return x
}

// U128Spread returns a pseudo-random uint128 whose bit length is uniform in
// [0, 128].
func (r *RNG) U128Spread() uint128.Uint128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.rand.Intn(129)
	hi, lo := r.rand.Uint64(), r.rand.Uint64()
	switch {
	case n == 0:
		hi, lo = 0, 0
	case n <= 64:
		hi, lo = 0, lo>>(64-n)
	default:
		hi >>= 128 - n
	}
	return uint128.New(lo, hi)
}

// Float64Spread returns a finite pseudo-random float64 with a random sign and
// a binary exponent in [-8, 132]. Half of the results are integral.
func (r *RNG) Float64Spread() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := math.Ldexp(0.5+r.rand.Float64()/2, r.rand.Intn(141)-8)
	if r.rand.Intn(2) == 0 {
		f = math.Trunc(f)
	}
	if r.rand.Intn(2) == 0 {
		f = -f
	}
	return f
}

// Bounds returns the smallest and largest value of T.
func Bounds[T constraints.Integer]() (lo, hi T) {
	if !signed[T]() {
		return 0, ^T(0)
	}
	hi = T(1)<<(bitSize[T]()-1) - 1
	return -hi - 1, hi
}

// Edges returns the boundary values of T and every power of two 2^k with its
// neighbours 2^k-1 and 2^k+1, negated as well for signed T, for k up to the
// width of T. The result is sorted and free of duplicates.
func Edges[T constraints.Integer]() []T {
	lo, hi := Bounds[T]()
	out := []T{lo, lo + 1, 0, 1, hi - 1, hi}
	if signed[T]() {
		var one T = 1
		out = append(out, -one)
	}
	size := bitSize[T]()
	for k := 1; k < size; k++ {
		p := T(1) << k
		if p <= 0 {
			break
		}
		out = append(out, p-1, p, p+1)
		if signed[T]() {
			out = append(out, -p+1, -p, -p-1)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Exhaustive returns every value of T in ascending order. It panics for T
// wider than 16 bits.
func Exhaustive[T constraints.Integer]() []T {
	if bitSize[T]() > 16 {
		panic("testutil: exhaustive sampling needs a type of at most 16 bits")
	}
	lo, hi := Bounds[T]()
	out := make([]T, 0, 1<<bitSize[T]())
	for v := lo; ; v++ {
		out = append(out, v)
		if v == hi {
			break
		}
	}
	return out
}

// SpecialFloats returns NaN, both infinities, signed zeros, simple fractions,
// the float32 and float64 limits and the powers of two that bound every
// integer width, with their float64 neighbours.
func SpecialFloats() []float64 {
	out := []float64{
		math.NaN(), math.Inf(1), math.Inf(-1),
		0, math.Copysign(0, -1), 0.5, -0.5, 1, -1, 2, 2.5, -2.5,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.MaxFloat32, -math.MaxFloat32,
		math.Nextafter(math.MaxFloat32, math.Inf(1)), math.Nextafter(-math.MaxFloat32, math.Inf(-1)),
		math.MaxFloat64, -math.MaxFloat64,
	}
	for _, k := range []int{7, 8, 15, 16, 31, 32, 63, 64, 127, 128} {
		p := math.Ldexp(1, k)
		for _, f := range []float64{p, -p} {
			out = append(out, f, math.Nextafter(f, 0), math.Nextafter(f, math.Inf(1)), math.Nextafter(f, math.Inf(-1)))
		}
		if k <= 53 {
			out = append(out, p-1, -p+1, p-0.5, -p+0.5)
		}
	}
	return out
}

func signed[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

func bitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}
