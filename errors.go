package sain

import "errors"

// ErrUnsupportedIntSize is the panic value raised by SortSuffixesPlain
// and SortSuffixesEncoded when the platform's int width cannot represent
// the position range required by a sequence of the given length. The
// teacher's suffix array builder carries the same guard against
// strconv.IntSize; this module keeps it because it is a
// build-configuration precondition, not an algorithmic invariant, and so
// is the one error value with a stable identity in an otherwise
// panic-on-bug core (see the OrderViolation / invariant-violation panics
// elsewhere) — callers recover and inspect it with errors.Is instead of
// a checked return.
var ErrUnsupportedIntSize = errors.New("sain: platform int size cannot address a sequence of this length")

// ErrWorkspaceAliasFallback is wrapped with errors.WithMessage and logged
// (never returned) whenever a BucketState array cannot be claimed from
// the shared workspace tail and falls back to an independent allocation.
var ErrWorkspaceAliasFallback = errors.New("sain: insufficient workspace for aliasing")
