package sain

import (
	"fmt"

	"github.com/pkg/errors"
)

// engineConfig carries the resolved Option settings through the
// recursive descent.
type engineConfig struct {
	intermediateCheck bool
	finalCheck        bool
	verbose           bool
	timer             Timer
	stats             []levelStat
}

// levelStat is one row of the verbose per-level statistics table.
type levelStat struct {
	level    int
	length   int
	alphabet int
	countLMS int
}

// runLevel drives one recursion level (C7, Recursor): it seeds LMS
// positions, runs the pre-naming induction pair, names the resulting
// LMS substrings, recurses on the named subsequence unless every name
// is already unique, expands the recursive result back to original LMS
// positions, and finishes with the post-naming induction pair.
//
// suf is the shared workspace; on entry suf[0:seq.Len()) is assumed
// zeroed. protectedBelow is the boundary below which this level must
// not claim bucket-alias space (it holds ancestors' live data);
// availableTop bounds how far into suf's tail bucket aliasing may reach.
// On return, suf[0:seq.Len()) holds the sorted suffix order for seq.
func runLevel(seq SeqView, suf []int, protectedBelow, availableTop int, cfg *engineConfig, level int) {
	n := seq.Len()
	if n == 0 {
		return
	}
	if n == 1 {
		suf[0] = 0
		return
	}

	sigma := seq.AlphabetSize()
	isS := computeTypes(seq)
	namer := NewNamer(seq, isS)
	scanner := NewLMSScanner(seq)

	// This level's own output occupies suf[0:n); bucket aliasing must
	// never claim any part of it, on top of whatever ancestors already
	// protect.
	ownProtected := protectedBelow
	if n > ownProtected {
		ownProtected = n
	}

	bs, _ := NewBucketState(seq, suf, ownProtected, availableTop)
	if enc, ok := seq.(*EncodedSeqView); ok {
		fillSizesFromEncoded(bs, enc)
	} else {
		bs.ComputeSizes(seq)
	}

	bs.EndBuckets()

	var wb *WriteBuffer
	if sigma <= 256 {
		wb = NewWriteBuffer(suf, bs, sigma)
	}

	countLMS := scanner.Seed(bs, wb, suf, nil)
	if wb != nil {
		wb.FlushAll()
	}

	cfg.progress(level, "insert Sstar suffixes")

	inducer := NewInducer(seq, isS)
	cfg.progress(level, "induce L suffixes")
	inducer.InduceLPre(bs, suf[:n])
	cfg.progress(level, "induce S suffixes")
	inducer.InduceSPre(bs, suf[:n])

	front := countLMS
	if 2*front > n {
		panic(errors.New("sain: LMS count exceeds workspace, invariant 2*count_LMS <= N violated"))
	}

	cfg.progress(level, "moverStar2front")
	got := namer.MoveLMSToFront(suf, n)
	if got != countLMS {
		panic(fmt.Sprintf("sain: LMS compaction count mismatch: scanner=%d namer=%d", countLMS, got))
	}

	cfg.progress(level, "assignSstarlength")
	scanner.ComputeLengths(suf, front)

	cfg.progress(level, "assignSstarnames")
	numberOfNames := namer.AssignNames(suf, front)

	cfg.progress(level, "movenames2front")
	namer.MoveNamesToFront(suf, front, n)

	if cfg.verbose {
		cfg.stats = append(cfg.stats, levelStat{level: level, length: n, alphabet: sigma, countLMS: countLMS})
	}

	if numberOfNames == front {
		// Every LMS substring is unique: the name sequence is already
		// the inverse permutation of sorted rank -> text-order index.
		// Invert it directly instead of recursing.
		for i := 0; i < front; i++ {
			rank := suf[front+i]
			suf[rank] = i
		}
		rebuildBucketStats(seq, bs)
	} else {
		// The child's own region suf[0:front) still holds this level's
		// compacted LMS list, which expandOrderToOriginal recomputes;
		// clear it so the child starts from a zeroed region.
		for i := 0; i < front; i++ {
			suf[i] = 0
		}
		subData := suf[front : 2*front]
		subSeq := NewIntArraySeqView(subData, numberOfNames)
		childProtected := 2 * front
		if childProtected < protectedBelow {
			childProtected = protectedBelow
		}
		runLevel(subSeq, suf, childProtected, availableTop, cfg, level+1)
	}

	cfg.progress(level, "expandorder2original")
	expandOrderToOriginal(seq, suf, front)

	if cfg.intermediateCheck {
		checkOrder(seq, suf[:front], "post-recursion LMS order")
	}

	cfg.progress(level, "insert sorted Sstar suffixes")
	bs2, _ := NewBucketState(seq, suf, ownProtected, availableTop)
	if enc, ok := seq.(*EncodedSeqView); ok {
		fillSizesFromEncoded(bs2, enc)
	} else {
		bs2.ComputeSizes(seq)
	}
	insertSortedLMSSuffixes(seq, bs2, suf, front)

	cfg.progress(level, "induce L suffixes")
	inducer.InduceLPost(bs2, suf)
	cfg.progress(level, "induce S suffixes")
	inducer.InduceSPost(bs2, suf)

	for i := 0; i < n; i++ {
		if v := suf[i]; v > 0 {
			suf[i] = decode(v)
		}
	}

	if cfg.intermediateCheck {
		checkOrder(seq, suf[:nonspecialCount(seq)], "post-induction suffix order")
	}
}

// nonspecialCount returns the number of positions this level's bucket
// arithmetic actually sorts in place: every position for Plain and
// IntArray backends, or n minus the special-character count for
// Encoded. Bucket fill pointers are derived from size[], which already
// excludes specials, so indices [nonspecialCount(seq), seq.Len()) are
// never written by induction and stay at the zero sentinel.
func nonspecialCount(seq SeqView) int {
	if enc, ok := seq.(*EncodedSeqView); ok {
		return enc.Len() - enc.encseq.SpecialCharacters()
	}
	return seq.Len()
}

// fillSizesFromEncoded fills bs.size from the collaborator's own
// per-symbol counts instead of rescanning, when the backing sequence is
// an EncodedSequence exposing CharCount. In the complement read modes
// view symbol c counts the underlying symbol sigma-1-c, matching
// EncodedSeqView.Get.
func fillSizesFromEncoded(bs *BucketState, enc *EncodedSeqView) {
	for c := 0; c < bs.sigma; c++ {
		src := c
		if enc.readmode.isComplement() {
			src = bs.sigma - 1 - c
		}
		bs.size[c] = enc.encseq.CharCount(src)
	}
}

// rebuildBucketStats reconstructs bucketsize by rescanning seq. runLevel
// calls it after the unique-names shortcut skips recursion; the later
// insertSortedLMSSuffixes step works on a separately built BucketState.
func rebuildBucketStats(seq SeqView, bs *BucketState) {
	zero(bs.size)
	bs.ComputeSizes(seq)
}

// expandOrderToOriginal rescans seq (a second reverse LMS pass) to
// materialize the LMS-position list in ascending original text order into
// the second half of suf, then rewrites suf[i] := lmsPositions[suf[i]]
// for i in [0, front), turning sorted indices-into-the-LMS-list into
// sorted original positions. The rescan itself visits positions in
// descending order, so it writes back to front (largest position first)
// to land the list in ascending order, matching gt_sain's
// gt_sain_expandorder2original and the ascending text-order convention
// MoveNamesToFront already produces for the recursion's own input.
func expandOrderToOriginal(seq SeqView, suf []int, front int) {
	n := seq.Len()
	sigma := seq.AlphabetSize()
	nextSymbol := unique(n, n, sigma)
	nextIsS := true
	writeidx := front - 1
	for p := n - 1; p >= 0; p-- {
		c := seq.Get(p)
		curIsS := c < nextSymbol || (c == nextSymbol && nextIsS)
		if !curIsS && nextIsS && nextSymbol < sigma {
			suf[front+writeidx] = p + 1
			writeidx--
		}
		nextSymbol = c
		nextIsS = curIsS
	}
	// suf[front:front+front) now holds LMS positions in ascending
	// original text order; suf[0:front) holds sorted indices into that
	// list.
	for i := 0; i < front; i++ {
		suf[i] = suf[front+suf[i]]
	}
}

// insertSortedLMSSuffixes distributes the now fully-sorted LMS positions
// (suf[0:front)) into their character buckets from the tail inward,
// clearing the slack in between, so the post-naming induction pair can
// finish sorting every non-special suffix.
func insertSortedLMSSuffixes(seq SeqView, bs *BucketState, suf []int, front int) {
	n := seq.Len()
	positions := make([]int, front)
	copy(positions, suf[:front])

	for i := 0; i < n; i++ {
		suf[i] = 0
	}

	bs.EndBuckets()
	for i := front - 1; i >= 0; i-- {
		p := positions[i]
		c := seq.Get(p)
		if c >= bs.sigma {
			continue
		}
		bs.fill[c]--
		suf[bs.fill[c]] = encode(p)
	}
}

func (cfg *engineConfig) progress(level int, phase string) {
	if cfg.timer != nil {
		cfg.timer.ShowProgress(fmt.Sprintf("level %d: %s", level, phase))
	}
}
