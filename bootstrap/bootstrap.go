// Package bootstrap implements the pairwise bootstrap hypothesis test
// between two regional accessibility analyses: given per-origin arrays of
// bootstrap iteration values for the same point estimate under scenario A
// and scenario B, it reports how confidently B differs from A.
//
// Test is the naive O(Na*Nb) cross-product reference; TestSorted is an
// O((Na+Nb) log(Na+Nb)) accelerated path required to agree with Test to
// integer precision.
package bootstrap

import (
	"math"
	"sort"
)

// Test computes the two-tailed bootstrap p-value, scaled to [0,1e5] and
// rounded, between iteration arrays a and b. a[0] and b[0] hold each
// scenario's point estimate; a[1:] and b[1:] are bootstrap replicates.
func Test(a, b []int32) int32 {
	delta := b[0] - a[0]
	if delta == 0 {
		return 0
	}

	na := len(a) - 1
	nb := len(b) - 1

	var nPos, nNeg, nZero int64
	for i := 1; i <= na; i++ {
		for j := 1; j <= nb; j++ {
			d := b[j] - a[i]
			switch {
			case d > 0:
				nPos++
			case d < 0:
				nNeg++
			default:
				nZero++
			}
		}
	}

	return pValueX1e5(delta, nPos, nNeg, nZero, int64(na)*int64(nb))
}

// TestSorted is an accelerated path equivalent to Test: it sorts each
// replicate slice once, then counts how many (i,j) pairs satisfy
// b[j] > a[i] (respectively <, ==) via a merge over the two sorted slices
// instead of a full Na*Nb cross product.
func TestSorted(a, b []int32) int32 {
	delta := b[0] - a[0]
	if delta == 0 {
		return 0
	}

	na := len(a) - 1
	nb := len(b) - 1

	sa := make([]int32, na)
	copy(sa, a[1:])
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })

	sb := make([]int32, nb)
	copy(sb, b[1:])
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })

	nPos, nNeg, nZero := countPairsSorted(sa, sb)

	return pValueX1e5(delta, nPos, nNeg, nZero, int64(na)*int64(nb))
}

// countPairsSorted counts, for every pair (ai, bj) with ai in sa and bj in
// sb (both ascending-sorted), how many have bj > ai, bj < ai, bj == ai.
// For each bj, every sa value strictly less than bj contributes a positive
// difference and every sa value strictly greater contributes a negative
// one; a two-pointer sweep over sa as bj advances makes this O(na+nb)
// after the O(n log n) sorts, instead of O(na*nb).
func countPairsSorted(sa, sb []int32) (nPos, nNeg, nZero int64) {
	na := len(sa)

	lt := 0 // count of sa values < current bj
	eq := 0 // count of sa values == current bj
	i := 0  // next unconsumed index into sa

	for _, bj := range sb {
		for i < na && sa[i] < bj {
			lt++
			i++
		}

		eq = 0
		for k := i; k < na && sa[k] == bj; k++ {
			eq++
		}

		gt := na - lt - eq

		nPos += int64(lt)
		nZero += int64(eq)
		nNeg += int64(gt)
	}

	return nPos, nNeg, nZero
}

// pValueX1e5 applies the two-tailed rule — mirror the tail opposite delta's
// sign, clamp to [0,1] unconditionally — and scales to an integer in
// [0,1e5].
func pValueX1e5(delta int32, nPos, nNeg, nZero, total int64) int32 {
	var p float64
	if total == 0 {
		p = 0
	} else if delta < 0 {
		p = 2 * float64(nZero+nPos) / float64(total)
	} else {
		p = 2 * float64(nZero+nNeg) / float64(total)
	}

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return int32(math.Round((1 - p) * 1e5))
}
