package sain

import "testing"

func TestBucketStateStartEndBuckets(t *testing.T) {
	seq := NewPlainSeqView([]byte("banana"))
	suf := make([]int, 32)
	bs, _ := NewBucketState(seq, suf, 0, len(suf))
	bs.ComputeSizes(seq)

	bs.StartBuckets()
	// 'a' occurs 3 times, 'b' once, 'n' twice; StartBuckets gives head
	// pointers in ascending symbol order.
	prevSum := 0
	for c := 0; c < bs.sigma; c++ {
		if bs.size[c] == 0 {
			continue
		}
		if bs.fill[c] != prevSum {
			t.Errorf("StartBuckets: fill[%d] = %d, want %d", c, bs.fill[c], prevSum)
		}
		prevSum += bs.size[c]
	}

	bs.EndBuckets()
	prevSum = 0
	for c := 0; c < bs.sigma; c++ {
		prevSum += bs.size[c]
		if bs.fill[c] != prevSum {
			t.Errorf("EndBuckets: fill[%d] = %d, want %d", c, bs.fill[c], prevSum)
		}
	}
}

func TestBucketStateAliasesWorkspaceTail(t *testing.T) {
	seq := NewPlainSeqView([]byte("banana"))
	suf := make([]int, 4096)
	bs, end := NewBucketState(seq, suf, 0, len(suf))

	if !bs.sizeAliased || !bs.fillAliased {
		t.Fatalf("expected size and fill to alias into a workspace of this size")
	}
	if end >= len(suf) {
		t.Errorf("NewBucketState did not shrink the available boundary: end=%d", end)
	}
}

func TestBucketStateFallsBackWhenWorkspaceTooSmall(t *testing.T) {
	seq := NewPlainSeqView([]byte("banana"))
	suf := make([]int, 4)
	bs, end := NewBucketState(seq, suf, 0, len(suf))

	if bs.sizeAliased || bs.fillAliased {
		t.Fatalf("expected independent allocation when the workspace tail is too small")
	}
	if end != len(suf) {
		t.Errorf("independent allocation should not shrink the available boundary: end=%d", end)
	}
}
