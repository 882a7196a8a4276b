package sain

// Slot encoding for the shared output array SUF. Every entry is one of:
//
//   - 0: undefined.
//   - positive: a defined suffix start p = v-1 (the +1 offset keeps
//     position 0 distinguishable from "undefined", a licensed variation
//     on the raw sign/magnitude packing spec.md describes — see
//     DESIGN.md).
//   - negative: a finalized position p = ^v-1, tagged "do not re-induce
//     from" during the post-naming induction passes.
func encode(p int) int      { return p + 1 }
func decode(v int) int      { return v - 1 }
func encodeFinal(p int) int { return ^(p + 1) }
func decodeFinal(v int) int { return ^v - 1 }

// computeTypes runs the same reverse S/L classification LMSScanner uses
// for LMS detection, caching one bit per position instead of recomputing
// it inline during induction. spec.md's design notes permit an
// accessor-based reencoding of the tagging scheme "without changing
// memory layout, only API surface"; caching classification the same way
// is the analogous trade for induction, and keeps the L/S decision in
// Inducer unambiguous for runs of equal symbols.
func computeTypes(seq SeqView) []bool {
	n := seq.Len()
	isS := make([]bool, n)
	if n == 0 {
		return isS
	}
	sigma := seq.AlphabetSize()
	nextSymbol := unique(n, n, sigma)
	nextIsS := true
	for p := n - 1; p >= 0; p-- {
		c := seq.Get(p)
		curIsS := c < nextSymbol || (c == nextSymbol && nextIsS)
		isS[p] = curIsS
		nextSymbol = c
		nextIsS = curIsS
	}
	return isS
}

// Inducer (C5) implements the four induction variants: L- and S-type,
// each in a pre-naming form (run against the sparse LMS seed to produce
// an approximate order the Namer reads LMS positions off of) and a
// post-naming form (run against the fully-correct LMS order the
// Recursor reconstructs, producing the final suffix order).
type Inducer struct {
	seq   SeqView
	isS   []bool
	n     int
	sigma int
}

func NewInducer(seq SeqView, isS []bool) *Inducer {
	return &Inducer{
		seq:   seq,
		isS:   isS,
		n:     seq.Len(),
		sigma: seq.AlphabetSize(),
	}
}

// decodeSourceValue interprets a raw SUF slot as a source position for
// induction, or ok=false if the slot carries nothing to induce from.
func (in *Inducer) decodeSourceValue(v int) (p int, ok bool) {
	switch {
	case v == 0:
		return 0, false
	case v < 0:
		return decodeFinal(v), true
	default:
		return decode(v), true
	}
}

// InduceLPre performs the pre-naming L-induction pass (C5, §4.5.1):
// left-to-right over SUF, seeded only with the LMS positions the
// LMSScanner placed. It leaves every slot it reads intact rather than
// clearing it, because the Namer needs to rescan the resulting (still
// approximate, pre-recursion) order to read off LMS positions in their
// induced relative order. Special positions are never placed in a bucket.
func (in *Inducer) InduceLPre(bs *BucketState, suf []int) {
	bs.StartBuckets()
	lastc, bucketptr := -1, 0

	flush := func() {
		if lastc >= 0 {
			bs.fill[lastc] = bucketptr
		}
	}

	for i := 0; i < len(suf); i++ {
		v := suf[i]
		p, ok := in.decodeSourceValue(v)
		if !ok || p == 0 {
			continue
		}
		pp := p - 1
		if in.isS[pp] {
			continue
		}
		c := in.seq.Get(pp)
		if c >= in.sigma {
			continue
		}
		if c != lastc {
			flush()
			bucketptr = bs.fill[c]
			lastc = c
		}
		suf[bucketptr] = encode(pp)
		bucketptr++
	}
	flush()
}

// InduceSPre performs the pre-naming S-induction pass (§4.5.2):
// right-to-left, from tail fill pointers, after the special single-S
// seeding step.
func (in *Inducer) InduceSPre(bs *BucketState, suf []int) {
	bs.EndBuckets()
	in.seedSpecialS(bs, suf)

	lastc, bucketptr := -1, 0
	flush := func() {
		if lastc >= 0 {
			bs.fill[lastc] = bucketptr
		}
	}

	for i := len(suf) - 1; i >= 0; i-- {
		v := suf[i]
		p, ok := in.decodeSourceValue(v)
		if !ok || p == 0 {
			continue
		}
		pp := p - 1
		if !in.isS[pp] {
			continue
		}
		c := in.seq.Get(pp)
		if c >= in.sigma {
			continue
		}
		if c != lastc {
			flush()
			bs.fill[c]--
			bucketptr = bs.fill[c]
			lastc = c
		} else {
			bucketptr--
		}
		suf[bucketptr] = encode(pp)
	}
	flush()
}

// seedSpecialS seeds suffixes that precede the end of the sequence or a
// special-character range, which cannot be reached by scanning SUF
// because nothing points at them yet.
func (in *Inducer) seedSpecialS(bs *BucketState, suf []int) {
	seed := func(p int) {
		if p < 0 {
			return
		}
		c := in.seq.Get(p)
		if c >= in.sigma {
			return
		}
		bs.fill[c]--
		suf[bs.fill[c]] = encode(p)
	}

	seed(in.n - 1)

	sp, ok := in.seq.(SpecialRangeProvider)
	if !ok {
		return
	}
	it := sp.SpecialRanges()
	for {
		r, more := it.Next()
		if !more {
			break
		}
		if r.Start > 0 {
			seed(r.Start - 1)
		}
	}
}

// InduceLPost performs the final L-induction pass (§4.5.3): identical to
// InduceLPre except it induces only from positive slots, skipping
// negative (finalized) ones.
func (in *Inducer) InduceLPost(bs *BucketState, suf []int) {
	bs.StartBuckets()
	lastc, bucketptr := -1, 0
	flush := func() {
		if lastc >= 0 {
			bs.fill[lastc] = bucketptr
		}
	}

	for i := 0; i < len(suf); i++ {
		v := suf[i]
		if v <= 0 {
			continue
		}
		p := decode(v)
		if p == 0 {
			continue
		}
		pp := p - 1
		if in.isS[pp] {
			continue
		}
		c := in.seq.Get(pp)
		if c >= in.sigma {
			continue
		}
		if c != lastc {
			flush()
			bucketptr = bs.fill[c]
			lastc = c
		}
		suf[bucketptr] = encode(pp)
		bucketptr++
	}
	flush()
}

// InduceSPost performs the final S-induction pass (§4.5.3), producing
// the finished order.
func (in *Inducer) InduceSPost(bs *BucketState, suf []int) {
	bs.EndBuckets()
	in.seedSpecialS(bs, suf)

	lastc, bucketptr := -1, 0
	flush := func() {
		if lastc >= 0 {
			bs.fill[lastc] = bucketptr
		}
	}

	for i := len(suf) - 1; i >= 0; i-- {
		v := suf[i]
		if v <= 0 {
			continue
		}
		p := decode(v)
		if p == 0 {
			continue
		}
		pp := p - 1
		if !in.isS[pp] {
			continue
		}
		c := in.seq.Get(pp)
		if c >= in.sigma {
			continue
		}
		if c != lastc {
			flush()
			bs.fill[c]--
			bucketptr = bs.fill[c]
			lastc = c
		} else {
			bucketptr--
		}
		suf[bucketptr] = encode(pp)
	}
	flush()
}
