package sain

import "fmt"

// FillTail (C8) is only meaningful for Encoded backends, and only run
// when the caller requested final verification. It walks
// view.SpecialRanges() — in the view's own read direction, since every
// position already written to suf is a view-space index, not a raw
// underlying one — and appends every special position consecutively into
// suf[nonspecial:], then writes the final empty-suffix sentinel
// suf[n] = n. It panics if the number of special positions appended does
// not match the sequence's own accounting, mirroring the C source's
// assertion.
func FillTail(view *EncodedSeqView, suf []int, nonspecial int) {
	n := view.Len()
	i := nonspecial

	it := view.SpecialRanges()
	for {
		r, more := it.Next()
		if !more {
			break
		}
		for p := r.Start; p < r.End; p++ {
			suf[i] = p
			i++
		}
	}

	want := view.encseq.SpecialCharacters()
	if got := i - nonspecial; got != want {
		panic(fmt.Sprintf("sain: tail fill appended %d special positions, encseq reports %d", got, want))
	}
	suf[n] = n
}
