package sain

import "github.com/pkg/errors"

// BucketState holds per-symbol bucket sizes and fill pointers (C2). Both
// arrays may alias into the unused tail of the shared output array SUF
// rather than being independently allocated; Aliased flags record which,
// so a caller knows not to expect an independent backing array.
type BucketState struct {
	size []int
	fill []int

	sizeAliased bool
	fillAliased bool

	sigma int
}

// NewBucketState allocates size and fill, preferring to alias each into
// the unused tail of suf (the region [firstusable, suftabentries)) in
// the order size, fill, per spec.md §4.2. It returns the BucketState and
// the shrunken suftabentries boundary reflecting what it claimed.
func NewBucketState(seq SeqView, suf []int, firstusable, suftabentries int) (*BucketState, int) {
	sigma := seq.AlphabetSize()
	bs := &BucketState{sigma: sigma}

	end := suftabentries

	if try := end - sigma; try >= firstusable {
		bs.size = suf[try:end]
		bs.sizeAliased = true
		end = try
	} else {
		bs.size = make([]int, sigma)
		logFallback("size", sigma, firstusable, end)
	}
	zero(bs.size)

	if try := end - sigma; try >= firstusable {
		bs.fill = suf[try:end]
		bs.fillAliased = true
		end = try
	} else {
		bs.fill = make([]int, sigma)
		logFallback("fill", sigma, firstusable, end)
	}
	zero(bs.fill)

	return bs, end
}

// logFallback records that a BucketState array could not be claimed from
// the workspace tail and fell back to an independent allocation. This is
// never a correctness problem, only a missed locality optimization, so it
// logs at Warn rather than propagating an error.
func logFallback(name string, want, firstusable, end int) {
	err := errors.WithMessage(ErrWorkspaceAliasFallback, name)
	logger.WithError(err).
		WithField("want", want).
		WithField("available", end-firstusable).
		Warn("sain: bucket array allocated independently")
}

func zero(a []int) {
	for i := range a {
		a[i] = 0
	}
}

// ComputeSizes tallies size[c] = count of occurrences of symbol c in
// seq's non-special positions, by scanning once. Encoded backends whose
// collaborator already tracks per-symbol counts should prefer
// EncodedSequence.CharCount directly; this scan is the generic fallback
// used for Plain and IntArray backends.
func (bs *BucketState) ComputeSizes(seq SeqView) {
	n := seq.Len()
	for i := 0; i < n; i++ {
		c := seq.Get(i)
		if c < bs.sigma {
			bs.size[c]++
		}
	}
}

// StartBuckets resets fill to head pointers: fill[c] = sum of size[d]
// for d < c.
func (bs *BucketState) StartBuckets() {
	sum := 0
	for c := 0; c < bs.sigma; c++ {
		bs.fill[c] = sum
		sum += bs.size[c]
	}
}

// EndBuckets resets fill to one-past-tail pointers: fill[c] = sum of
// size[d] for d <= c.
func (bs *BucketState) EndBuckets() {
	sum := 0
	for c := 0; c < bs.sigma; c++ {
		sum += bs.size[c]
		bs.fill[c] = sum
	}
}
