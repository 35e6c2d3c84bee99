package fmindex

import (
	"bytes"
	"testing"
)

func TestBackwardSearchFindsExactMatch(t *testing.T) {
	ix := BuildFixture([]FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
		{SeqID: 1, Bases: "ACGTACGTAAAACGTA"},
	}, 4)

	pattern := []byte("ACGTACGT")
	sp, ep := uint64(0), ix.Len()-1
	l := ix.BackwardSearch(pattern, len(pattern), &sp, &ep)
	if l != len(pattern) {
		t.Fatalf("BackwardSearch matched %d bases, want %d", l, len(pattern))
	}
	if ep < sp {
		t.Fatalf("empty interval [%d,%d] for a pattern present in both refs", sp, ep)
	}
	// "ACGTACGT" occurs in both toy references, so the interval should
	// resolve (via BackwardToSampledSA) to both seq 0 and seq 1.
	seen := map[uint64]bool{}
	for j := sp; j <= ep; j++ {
		seqID, _ := ix.BackwardToSampledSA(j)
		seen[seqID] = true
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("expected hits on both sequences, got %v", seen)
	}
}

func TestBackwardSearchStopsOnMismatch(t *testing.T) {
	ix := BuildFixture([]FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
	}, 4)

	pattern := []byte("TTTTACGT") // suffix "TACGT" matches; "TTACGT" does not occur
	sp, ep := uint64(0), ix.Len()-1
	l := ix.BackwardSearch(pattern, len(pattern), &sp, &ep)
	if l == 0 || l >= len(pattern) {
		t.Fatalf("expected a partial match shorter than the full pattern, got l=%d", l)
	}
}

func TestBackwardSearchStopsOnNonACGT(t *testing.T) {
	ix := BuildFixture([]FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
	}, 4)

	pattern := []byte("ACGTNCGT")
	sp, ep := uint64(0), ix.Len()-1
	l := ix.BackwardSearch(pattern, len(pattern), &sp, &ep)
	if l != 3 {
		t.Fatalf("expected extension to stop right at the N, l=%d", l)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ix := BuildFixture([]FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
		{SeqID: 1, Bases: "ACGTACGTAAAACGTA"},
	}, 4)

	var buf bytes.Buffer
	if err := ix.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != ix.Len() {
		t.Fatalf("Len mismatch after round-trip: %d vs %d", loaded.Len(), ix.Len())
	}

	pattern := []byte("AAAACGTA")
	spA, epA := uint64(0), ix.Len()-1
	lA := ix.BackwardSearch(pattern, len(pattern), &spA, &epA)
	spB, epB := uint64(0), loaded.Len()-1
	lB := loaded.BackwardSearch(pattern, len(pattern), &spB, &epB)
	if lA != lB || spA != spB || epA != epB {
		t.Fatalf("round-tripped index disagrees: (%d,%d,%d) vs (%d,%d,%d)", lA, spA, epA, lB, spB, epB)
	}
}

func TestBackwardSearchDeterministic(t *testing.T) {
	ix := BuildFixture([]FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
		{SeqID: 1, Bases: "ACGTACGTAAAACGTA"},
	}, 4)
	pattern := []byte("ACGTACGT")

	sp1, ep1 := uint64(0), ix.Len()-1
	l1 := ix.BackwardSearch(pattern, len(pattern), &sp1, &ep1)

	sp2, ep2 := uint64(0), ix.Len()-1
	l2 := ix.BackwardSearch(pattern, len(pattern), &sp2, &ep2)

	if l1 != l2 || sp1 != sp2 || ep1 != ep2 {
		t.Fatalf("BackwardSearch is not deterministic: (%d,%d,%d) vs (%d,%d,%d)", l1, sp1, ep1, l2, sp2, ep2)
	}
}
