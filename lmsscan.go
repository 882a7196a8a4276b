package sain

// LMSScanner (C4) performs the single reverse pass over a SeqView that
// classifies each position as S-type or L-type and detects LMS
// positions (S-type positions whose left neighbor is L-type), without
// ever materializing a full type array: only the running "next" symbol
// and its S/L-ness are kept.
type LMSScanner struct {
	seq SeqView
}

func NewLMSScanner(seq SeqView) *LMSScanner {
	return &LMSScanner{seq: seq}
}

// Seed performs the reverse LMS-detection pass and writes each LMS
// position into its symbol's bucket from the tail, via wb when a
// WriteBuffer is in use or directly through bs.fill otherwise. When
// sstarFirstCharCount is non-nil it is incremented per LMS symbol
// (runLevel passes nil). It returns the total LMS count.
func (s *LMSScanner) Seed(bs *BucketState, wb *WriteBuffer, suf []int, sstarFirstCharCount []int) int {
	n := s.seq.Len()
	sigma := s.seq.AlphabetSize()

	nextSymbol := unique(n, n, sigma)
	nextIsS := true
	countLMS := 0

	for p := n - 1; p >= 0; p-- {
		c := s.seq.Get(p)
		curIsS := c < nextSymbol || (c == nextSymbol && nextIsS)
		if !curIsS && nextIsS && nextSymbol < sigma {
			countLMS++
			if sstarFirstCharCount != nil {
				sstarFirstCharCount[nextSymbol]++
			}
			pos := p + 1
			if wb != nil {
				wb.Push(nextSymbol, encode(pos))
			} else {
				bs.fill[nextSymbol]--
				suf[bs.fill[nextSymbol]] = encode(pos)
			}
		}
		nextSymbol = c
		nextIsS = curIsS
	}
	return countLMS
}

// ComputeLengths repeats the reverse LMS-detection pass without seeding,
// instead writing each LMS substring's length into the second half of
// suf at lentab[(p+1)/2] = previousLMS - p, the layout assign_names
// later reads (positions differ by >= 2 so the (p+1)/2 slots never
// collide).
func (s *LMSScanner) ComputeLengths(suf []int, countLMS int) {
	n := s.seq.Len()
	sigma := s.seq.AlphabetSize()

	nextSymbol := unique(n, n, sigma)
	nextIsS := true
	previousLMS := n

	for p := n - 1; p >= 0; p-- {
		c := s.seq.Get(p)
		curIsS := c < nextSymbol || (c == nextSymbol && nextIsS)
		if !curIsS && nextIsS && nextSymbol < sigma {
			pos := p + 1
			suf[countLMS+pos/2] = previousLMS - pos
			previousLMS = pos
		}
		nextSymbol = c
		nextIsS = curIsS
	}
}
