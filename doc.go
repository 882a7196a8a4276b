// Package sain implements a linear-time suffix array constructor using
// SA-IS (Suffix Array by Induced Sorting).
//
// Given a sequence of symbols it produces a permutation of suffix start
// positions in lexicographic order: the foundational primitive for
// full-text indexes, BWT construction and LCP computation over
// biological sequences.
//
// The algorithm combines a recursive reduction over LMS substrings with
// induction passes that distribute positions into per-symbol buckets,
// reusing the output array itself as scratch space via a +1-offset slot
// encoding (see DESIGN.md): every defined entry stores position+1, so 0
// is left unambiguously free to mean "undefined". Two entry points are
// exposed: SortSuffixesPlain for raw byte sequences and
// SortSuffixesEncoded for sequences that may contain special
// (unsortable) positions, such as wildcard bases.
package sain
