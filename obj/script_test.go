package obj

import "testing"

func TestScriptTempo(t *testing.T) {
	src := []byte(`
if int(t) % 4 < 2 {
	tempo = speed
} else {
	tempo = -speed
}
`)
	s, err := NewScript(src, 30)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		now  float64
		want float64
	}{
		{0, 30},
		{1.5, 30},
		{2.0, -30},
		{3.9, -30},
		{4.0, 30},
	}
	for _, tc := range cases {
		if got := s.Tempo(tc.now, 0, 0); got != tc.want {
			t.Fatalf("Tempo(t=%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript([]byte(`tempo = `), 30); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestNilScriptKeepsTempo(t *testing.T) {
	var s *Script
	if got := s.Tempo(1, 2, 45); got != 45 {
		t.Fatalf("nil script should keep the incoming tempo, got %v", got)
	}
}
