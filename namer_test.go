package sain

import "testing"

func TestIsLMS(t *testing.T) {
	// "banana": type per position (S if suffix(i) < suffix(i+1), the
	// end-of-sequence sentinel classified as larger than every symbol,
	// as computeTypes does, so the last position is always S-type):
	// b=L a=S n=L a=S n=L a=S. LMS positions are every S-type
	// position immediately preceded by an L-type one: 1, 3 and 5.
	seq := NewPlainSeqView([]byte("banana"))
	isS := computeTypes(seq)
	nm := NewNamer(seq, isS)

	var lms []int
	for i := 0; i < seq.Len(); i++ {
		if nm.isLMS(i) {
			lms = append(lms, i)
		}
	}
	want := []int{1, 3, 5}
	if len(lms) != len(want) {
		t.Fatalf("isLMS positions = %v, want %v", lms, want)
	}
	for i := range want {
		if lms[i] != want[i] {
			t.Errorf("isLMS positions = %v, want %v", lms, want)
			break
		}
	}
}

func TestCompareLMSSubstrings(t *testing.T) {
	seq := NewPlainSeqView([]byte("abcabc"))
	if !compareLMSSubstrings(seq, 0, 3, 3) {
		t.Error("expected \"abc\" at 0 and 3 to compare equal")
	}
	if compareLMSSubstrings(seq, 0, 1, 3) {
		t.Error("expected \"abc\" at 0 and \"bca\" at 1 to differ")
	}
}
