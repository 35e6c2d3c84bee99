package seq

import "testing"

func TestReverseComplement(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"ACGTACGT", "ACGTACGT"},
		{"GATTACA", "TGTAATC"},
		{"NNNN", "NNNN"},
		{"", ""},
	}
	for _, c := range cases {
		got := ReverseComplementString(c.in)
		if got != c.want {
			t.Errorf("ReverseComplementString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	s := "ACGTTTGCA"
	rc := ReverseComplementString(s)
	back := ReverseComplementString(rc)
	if back != s {
		t.Errorf("revcomp(revcomp(%q)) = %q", s, back)
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, b := range []byte{'A', 'C', 'G', 'T'} {
		if Decode(Encode(b)) != b {
			t.Errorf("Decode(Encode(%q)) != %q", b, b)
		}
	}
	if Encode('N') != CodeInvalid {
		t.Errorf("Encode('N') should be CodeInvalid")
	}
}
