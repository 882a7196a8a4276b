package sain

// Namer (C6) compacts the LMS positions the pre-naming induction pair
// left scattered through SUF's induced (approximate) order to the
// front, assigns each a name by comparing adjacent LMS substrings in
// that induced order, then repacks the names into original left-to-right
// text order — the input the Recursor needs, since recursion sorts the
// LMS substrings by recursing on their occurrence order, not their
// induced order.
type Namer struct {
	seq SeqView
	isS []bool
}

func NewNamer(seq SeqView, isS []bool) *Namer {
	return &Namer{seq: seq, isS: isS}
}

func (nm *Namer) isLMS(p int) bool {
	return p > 0 && nm.isS[p] && !nm.isS[p-1]
}

// MoveLMSToFront scans suf[0:n) (the array left by the pre-naming
// induction pair) left to right, compacting every LMS position to the
// front in the order encountered and zeroing the remainder of the
// scanned region. It returns the number of LMS positions found, which
// must equal the count LMSScanner.Seed reported.
func (nm *Namer) MoveLMSToFront(suf []int, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		v := suf[i]
		if v <= 0 {
			continue
		}
		p := decode(v)
		if nm.isLMS(p) {
			suf[count] = p
			count++
		}
	}
	for i := count; i < n; i++ {
		suf[i] = 0
	}
	return count
}

// compareLMSSubstrings reports whether the length-symbols-long
// substrings starting at a and b are identical.
func compareLMSSubstrings(seq SeqView, a, b, length int) bool {
	for i := 0; i < length; i++ {
		if seq.Get(a+i) != seq.Get(b+i) {
			return false
		}
	}
	return true
}

// AssignNames scans the front-compacted LMS positions (suf[0:front)),
// reads each one's length from the lentab LMSScanner.ComputeLengths
// wrote into suf[front:front+n/2], and assigns names by comparing
// adjacent substrings for equal length and content. It writes each
// name+1 into suf[front + p/2] (the +1 keeps 0 meaning "empty" for
// MoveNamesToFront). It returns the number of distinct names assigned.
func (nm *Namer) AssignNames(suf []int, front int) int {
	if front == 0 {
		return 0
	}
	name := 0
	prevPos, prevLen := -1, -1
	for j := 0; j < front; j++ {
		p := suf[j]
		length := suf[front+p/2]
		if j > 0 && length == prevLen && compareLMSSubstrings(nm.seq, prevPos, p, length) {
			// same name as previous
		} else if j > 0 {
			name++
		}
		suf[front+p/2] = name + 1
		prevPos, prevLen = p, length
	}
	return name + 1
}

// MoveNamesToFront collects the non-zero name entries left in
// suf[front:front+n/2] (indexed by original position/2, so already in
// text order) and packs them contiguously into suf[front:front+front),
// stripping the +1 offset AssignNames applied.
func (nm *Namer) MoveNamesToFront(suf []int, front, n int) {
	dst := front
	limit := n/2 + 1
	for i := 0; i < limit && front+i < len(suf); i++ {
		v := suf[front+i]
		if v == 0 {
			continue
		}
		suf[dst] = v - 1
		dst++
	}
}
