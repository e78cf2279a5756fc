package scrambler

import "testing"

func TestProcessIsInvolution(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog 0123456789")

	tx := New()
	scrambled := make([]byte, len(data))
	for i, b := range data {
		scrambled[i] = tx.Process(b)
	}

	rx := New()
	recovered := make([]byte, len(data))
	for i, b := range scrambled {
		recovered[i] = rx.Process(b)
	}

	for i := range data {
		if recovered[i] != data[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, recovered[i], data[i])
		}
	}
}

func TestProcessChangesRepeatedBytes(t *testing.T) {
	s := New()
	var out [8]byte
	for i := range out {
		out[i] = s.Process(0)
	}

	allSame := true
	for i := 1; i < len(out); i++ {
		if out[i] != out[0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Errorf("expected scrambled run of zero bytes to vary, got constant %#x", out[0])
	}
}

func TestInitRestartsSequence(t *testing.T) {
	s := New()
	first := s.Process(0xAB)
	s.Init()
	second := s.Process(0xAB)
	if first != second {
		t.Errorf("expected Init to restart the sequence deterministically: %#x != %#x", first, second)
	}
}
