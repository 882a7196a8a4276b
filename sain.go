package sain

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
)

// logger is the package-level structured logger. It defaults to Warn
// level so a library consumer sees nothing unless WithVerbose is set or
// a workspace-aliasing fallback actually occurs.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

// Timer receives a description before each named construction phase.
// A nil Timer (the default) means no progress reporting.
type Timer interface {
	ShowProgress(description string)
}

// Option configures a sort call. See WithIntermediateCheck,
// WithFinalCheck, WithVerbose and WithTimer.
type Option func(*engineConfig)

// WithIntermediateCheck runs the order-check oracle after each
// recursion level's LMS ordering and after its post-induction pass,
// panicking with an *OrderViolation on the first violation found.
func WithIntermediateCheck() Option {
	return func(c *engineConfig) { c.intermediateCheck = true }
}

// WithFinalCheck runs TailFiller after the top-level post-induction pass,
// then order-checks the sorted non-special prefix and confirms the
// trailing empty-suffix sentinel; the appended special tail is not
// order-checked. Only meaningful for
// SortSuffixesEncoded; SortSuffixesPlain has no special positions to
// fill and, matching the source's unconditional finalcheck=false for
// its plain entry point, ignores this option.
func WithFinalCheck() Option {
	return func(c *engineConfig) { c.finalCheck = true }
}

// WithVerbose collects per-level statistics (count of LMS positions and
// their ratio to the level's length) and, once the sort completes,
// renders them as a table via renderStats to os.Stdout.
func WithVerbose() Option {
	return func(c *engineConfig) { c.verbose = true }
}

// WithTimer registers a progress collaborator invoked before each named
// construction phase.
func WithTimer(t Timer) Option {
	return func(c *engineConfig) { c.timer = t }
}

func newEngineConfig(opts []Option) *engineConfig {
	cfg := &engineConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// renderStats prints the recursion's per-level statistics as a table when
// WithVerbose collected any, replacing a raw Printf/log line per level
// with a single readable summary once the whole sort completes.
func renderStats(cfg *engineConfig) {
	if !cfg.verbose || len(cfg.stats) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"level", "length", "alphabet", "count_lms", "lms/length"})
	for _, s := range cfg.stats {
		ratio := 0.0
		if s.length > 0 {
			ratio = float64(s.countLMS) / float64(s.length)
		}
		t.AppendRow(table.Row{s.level, s.length, s.alphabet, s.countLMS, fmt.Sprintf("%.3f", ratio)})
	}
	t.Render()
}

// maxAddressableLen caps the sequence length at 2^(IntSize-2)-2, far
// below the int range, so the n+1-entry workspace and every +1-offset
// slot value (see induce.go) stay representable.
func maxAddressableLen() int {
	bits := strconv.IntSize
	return 1<<(bits-2) - 2
}

// SortSuffixesPlain sorts the suffix array of a plain byte sequence
// (alphabet size 256, no special positions). It returns a permutation
// of [0, len(seq)) in lexicographic order of the suffixes it starts.
//
// There are no recoverable error returns: invariant violations panic,
// matching the source's plain entry point, which never performs the
// (encoded-only) final verification pass.
func SortSuffixesPlain(seq []byte, opts ...Option) []int {
	n := len(seq)
	if n > maxAddressableLen() {
		panic(ErrUnsupportedIntSize)
	}
	cfg := newEngineConfig(opts)
	suf := make([]int, n+1)
	view := NewPlainSeqView(seq)
	runLevel(view, suf, 0, n+1, cfg, 0)
	renderStats(cfg)
	return suf[:n]
}

// SortSuffixesEncoded sorts the suffix array of an EncodedSequence,
// which may contain special (unsortable) positions. Non-special
// suffixes are sorted in place; when WithFinalCheck is set, special
// positions are appended afterward (in the order TailFiller defines),
// the sorted non-special prefix is verified against the order-check
// oracle and the trailing empty-suffix sentinel suf[n] == n is
// confirmed; the special tail itself is not order-checked. Without
// WithFinalCheck the
// returned slice covers only the sorted non-special prefix.
func SortSuffixesEncoded(encseq EncodedSequence, readmode ReadMode, opts ...Option) []int {
	n := encseq.TotalLength()
	if n > maxAddressableLen() {
		panic(ErrUnsupportedIntSize)
	}
	cfg := newEngineConfig(opts)
	suf := make([]int, n+1)
	view := NewEncodedSeqView(encseq, readmode)
	runLevel(view, suf, 0, n+1, cfg, 0)
	renderStats(cfg)

	nonspecial := nonspecialCount(view)
	if !cfg.finalCheck {
		return suf[:nonspecial]
	}

	cfg.progress(0, "fill tail suffixes")
	FillTail(view, suf, nonspecial)
	// Special positions are appended in ascending view-index order (see FillTail),
	// a deterministic tail convention, not a lexicographic sort: the
	// unique-sentinel scheme that lets compareSuffixes treat every special
	// position as distinct also makes it decrease with position, so
	// checking order across the appended tail against that convention
	// would reject FillTail's own correct output. Only the sortable
	// prefix is checked here.
	cfg.progress(0, "check suffix order")
	checkOrder(view, suf[:nonspecial], "final suffix order")
	if suf[n] != n {
		panic(&OrderViolation{Label: "final sentinel", Index: n, A: suf[n], B: n})
	}
	return suf[:n+1]
}
