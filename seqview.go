package sain

// ReadMode selects the direction (and, for encoded sequences over a
// complementable alphabet, the strand) in which a SeqView exposes the
// underlying sequence. GenomeTools' GtReadmode supports the same four
// combinations via GT_ISDIRREVERSE/GT_ISDIRCOMPLEMENT; spec.md only
// mentions forward/reverse, complement is a supplement recovered from
// the C source and generalized past DNA (complementing symbol c against
// alphabetSize-1-c rather than a fixed base table).
type ReadMode int

const (
	Forward ReadMode = iota
	Reverse
	Complement
	ReverseComplement
)

func (r ReadMode) isReverse() bool {
	return r == Reverse || r == ReverseComplement
}

func (r ReadMode) isComplement() bool {
	return r == Complement || r == ReverseComplement
}

// SeqView provides uniform, read-only, constant-time character access
// over one of three backends: a plain byte sequence, an encoded sequence
// with special (unsortable) positions, or the recursive integer-alphabet
// sequence produced by naming LMS substrings at the level above.
//
// Get returns either a regular symbol in [0, AlphabetSize()), or, for the
// Encoded backend, a position-unique sentinel value strictly greater
// than every regular symbol when the position is special.
type SeqView interface {
	Get(i int) int
	Len() int
	AlphabetSize() int
}

// SpecialRangeProvider is implemented by SeqView backends that carry
// special positions. It exposes a restartable ordered enumeration of
// maximal [start, end) intervals of special positions, in the direction
// implied by the backend's ReadMode.
type SpecialRangeProvider interface {
	SpecialRanges() SpecialRangeIterator
}

// unique returns the position-unique sentinel for a special position p
// in a sequence of total length n over an alphabet of size sigma, per
// spec.md's "TOTAL_LENGTH - position + sigma" so that distinct specials
// compare distinct and all specials rank above every ordinary symbol.
func unique(n, p, sigma int) int {
	return n - p + sigma
}

// PlainSeqView is the Plain backend (C1): a raw byte sequence with
// sigma = 256 and no special positions.
type PlainSeqView struct {
	seq []byte
}

func NewPlainSeqView(seq []byte) *PlainSeqView {
	return &PlainSeqView{seq: seq}
}

func (v *PlainSeqView) Get(i int) int      { return int(v.seq[i]) }
func (v *PlainSeqView) Len() int           { return len(v.seq) }
func (v *PlainSeqView) AlphabetSize() int  { return 256 }

// EncodedSeqView is the Encoded backend (C1): wraps an EncodedSequence
// collaborator, applying the requested ReadMode's direction and
// complement to every access, and returning the unique() sentinel for
// special positions.
type EncodedSeqView struct {
	encseq   EncodedSequence
	readmode ReadMode
	n        int
	sigma    int
}

func NewEncodedSeqView(encseq EncodedSequence, readmode ReadMode) *EncodedSeqView {
	return &EncodedSeqView{
		encseq:   encseq,
		readmode: readmode,
		n:        encseq.TotalLength(),
		sigma:    encseq.AlphabetSize(),
	}
}

func (v *EncodedSeqView) Len() int          { return v.n }
func (v *EncodedSeqView) AlphabetSize() int { return v.sigma }

func (v *EncodedSeqView) underlying(i int) int {
	if v.readmode.isReverse() {
		return v.n - 1 - i
	}
	return i
}

func (v *EncodedSeqView) Get(i int) int {
	p := v.underlying(i)
	c := v.encseq.GetEncodedChar(p, v.readmode)
	if c == SpecialSymbol {
		return unique(v.n, i, v.sigma)
	}
	if v.readmode.isComplement() {
		c = v.sigma - 1 - c
	}
	return c
}

func (v *EncodedSeqView) SpecialRanges() SpecialRangeIterator {
	return v.encseq.SpecialRanges(v.readmode)
}

// IntArraySeqView is the IntArray backend (C1): the recursive layer's
// input, an integer sequence over whatever alphabet the previous level's
// Namer assigned. It never carries special positions.
type IntArraySeqView struct {
	data  []int
	sigma int
}

func NewIntArraySeqView(data []int, sigma int) *IntArraySeqView {
	return &IntArraySeqView{data: data, sigma: sigma}
}

func (v *IntArraySeqView) Get(i int) int      { return v.data[i] }
func (v *IntArraySeqView) Len() int           { return len(v.data) }
func (v *IntArraySeqView) AlphabetSize() int  { return v.sigma }
