package util

import "testing"

func TestShouldShowProgress(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Fatalf("no must win over force")
	}
	if !ShouldShowProgress(true, false) {
		t.Fatalf("force must enable progress")
	}
	// with neither flag the outcome depends on the terminal; it only
	// must not panic under go test's piped stdio
	_ = ShouldShowProgress(false, false)
}

func TestProgressCounting(t *testing.T) {
	p := NewProgress(3, false)
	p.Advance()
	p.Advance()
	if got := p.done.Load(); got != 2 {
		t.Fatalf("done: got %d want 2", got)
	}
	p.Advance()
	p.Done()
}

func TestPercent(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{1, 0, 100},
		{1, 3, 33},
	}
	for _, tt := range tests {
		if got := percent(tt.a, tt.b); got != tt.want {
			t.Fatalf("percent(%d, %d): got %d want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
