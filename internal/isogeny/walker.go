package isogeny

import (
	"errors"

	"github.com/adtrdlvm/c-sike/internal/curve"
	"github.com/adtrdlvm/c-sike/internal/params"
)

// This file implements the evaluation of a chain of small-degree
// isogenies phi = phi_(n-1) o ... o phi_0 of degree l^n, from a kernel
// point of order l^n. Each phi_i has for kernel [l^(n-1-i)]K_i, where K_i
// is the image of K through the previous steps. A strategy decides which
// intermediate multiples of K are kept (and pushed through the next
// isogenies) and which are recomputed; it describes a traversal of the
// binary tree whose leaves are the kernels of the phi_i.
//
// A strategy for a chain of n isogenies has n - 1 entries. Starting from
// the root kernel at height n, the walker descends by multiplying the
// current point by l^m, with m the next entry, and reduces the height by
// m; the point before the multiplication is saved. At height 1, the
// current point has order l and defines the next isogeny, through which
// all saved points are then mapped (their height decreasing by one).
// The most recently saved point becomes the current point, and the walk
// goes on until n isogenies have been computed.

var (
	// ErrMalformedKernel is returned when a leaf kernel point is the
	// point at infinity, i.e. the input kernel did not have full order.
	ErrMalformedKernel = errors.New("isogeny: malformed kernel point")

	// ErrInvalidStrategy is returned for a strategy that does not
	// describe a complete traversal of the isogeny tree, or for an
	// unsupported degree.
	ErrInvalidStrategy = errors.New("isogeny: invalid strategy")
)

// Walker evaluates isogeny chains of a fixed degree and length, with a
// fixed strategy. A Walker is immutable and safe for concurrent use.
type Walker struct {
	degree   uint
	height   int
	strategy []uint32
	depth    int
}

// A saved intermediate point, with the number of isogenies still to be
// applied to the kernel it is a multiple of.
type entry struct {
	P curve.ProjectivePoint
	h int
}

// NewWalker returns the walker for the isogeny chain of one party. It
// panics if the compiled-in strategy is malformed.
func NewWalker(dp *params.DomainParams) *Walker {
	w, err := NewWalkerWithStrategy(dp.Degree, dp.Strategy)
	if err != nil {
		panic(err)
	}
	if w.height != dp.Height {
		panic("isogeny: strategy does not match the chain length")
	}
	return w
}

// NewWalkerWithStrategy returns a walker for chains of degree^(len(strategy)+1)
// isogenies, with degree equal to 3 or 4. The strategy is copied.
func NewWalkerWithStrategy(degree uint, strategy []uint32) (*Walker, error) {
	if degree != 3 && degree != 4 {
		return nil, ErrInvalidStrategy
	}
	height := len(strategy) + 1
	depth, ok := simulate(strategy, height)
	if !ok {
		return nil, ErrInvalidStrategy
	}
	w := &Walker{
		degree:   degree,
		height:   height,
		strategy: make([]uint32, len(strategy)),
		depth:    depth,
	}
	copy(w.strategy, strategy)
	return w, nil
}

// Degree returns the degree of each isogeny of the chain.
func (w *Walker) Degree() uint {
	return w.degree
}

// Height returns the number of isogenies of the chain.
func (w *Walker) Height() int {
	return w.height
}

// Walk computes the chain of isogenies with kernel <K> from the curve E
// and returns the image curve. K MUST have exact order l^Height on E. The
// points in aux are replaced in place by their images on the final
// curve.
//
// The sequence of operations depends only on the strategy. If a leaf
// kernel turns out to be the point at infinity, the walk still completes
// and ErrMalformedKernel is returned; the contents of aux are then
// unspecified.
func (w *Walker) Walk(E *curve.ProjectiveCurveParameters, K *curve.ProjectivePoint, aux []curve.ProjectivePoint) (curve.ProjectiveCurveParameters, error) {
	var cc curve.CurveCoefficientsEquiv
	if w.degree == 4 {
		cc = curve.CalcCurveParamsEquiv4(E)
	} else {
		cc = curve.CalcCurveParamsEquiv3(E)
	}
	phi := curve.NewIsogeny(w.degree)

	stack := make([]entry, 0, w.depth)
	cur, h := *K, w.height
	si := 0
	var bad uint64
	for leaf := 0; leaf < w.height; leaf++ {
		for h > 1 {
			stack = append(stack, entry{P: cur, h: h})
			m := w.strategy[si]
			si++
			if w.degree == 4 {
				cur.Pow2k(&cur, &cc, 2*m)
			} else {
				cur.Pow3k(&cur, &cc, m)
			}
			h -= int(m)
		}

		bad |= uint64(cur.IsInfinity())
		cc = phi.GenerateCurve(&cur)
		for i := range stack {
			stack[i].P = phi.EvaluatePoint(&stack[i].P)
			stack[i].h--
		}
		for i := range aux {
			aux[i] = phi.EvaluatePoint(&aux[i])
		}

		if n := len(stack); n > 0 {
			cur, h = stack[n-1].P, stack[n-1].h
			stack = stack[:n-1]
		}
	}

	if bad != 0 {
		return curve.ProjectiveCurveParameters{}, ErrMalformedKernel
	}
	if w.degree == 4 {
		return curve.RecoverCurveCoefficients4(&cc), nil
	}
	return curve.RecoverCurveCoefficients3(&cc), nil
}

// ValidStrategy reports whether strategy describes a complete traversal
// of the tree for a chain of height isogenies.
func ValidStrategy(strategy []uint32, height int) bool {
	_, ok := simulate(strategy, height)
	return ok
}

// NaiveStrategy returns the strategy that recomputes every leaf kernel
// from the root: [height-1, height-2, ..., 1]. It saves a single point
// but needs a quadratic number of multiplications.
func NaiveStrategy(height int) []uint32 {
	if height < 1 {
		return nil
	}
	s := make([]uint32, height-1)
	for i := range s {
		s[i] = uint32(height - 1 - i)
	}
	return s
}

// Run the walk on heights only. Returns the maximum number of saved
// points, and whether the strategy is well-formed.
func simulate(strategy []uint32, height int) (int, bool) {
	if height < 1 || len(strategy) != height-1 {
		return 0, false
	}
	stack := make([]int, 0, 16)
	depth := 0
	h, si := height, 0
	for leaf := 0; leaf < height; leaf++ {
		for h > 1 {
			if si >= len(strategy) {
				return 0, false
			}
			m := strategy[si]
			si++
			if m < 1 || int64(m) >= int64(h) {
				return 0, false
			}
			stack = append(stack, h)
			if len(stack) > depth {
				depth = len(stack)
			}
			h -= int(m)
		}
		if h != 1 {
			return 0, false
		}
		for i := range stack {
			stack[i]--
		}
		n := len(stack)
		if n == 0 {
			if leaf != height-1 {
				return 0, false
			}
			break
		}
		h = stack[n-1]
		stack = stack[:n-1]
	}
	return depth, si == len(strategy) && len(stack) == 0
}
