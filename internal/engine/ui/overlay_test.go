package ui

import "testing"

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-4096, "-4,096"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.bytes); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestOverlayFPS(t *testing.T) {
	d := NewDebugOverlay()

	// 125ms frames are exact in binary, so four of them close a 0.5s window.
	for i := 0; i < 4; i++ {
		d.Update(125)
	}
	if got := d.FPS(); got != 8 {
		t.Errorf("FPS = %v, want 8", got)
	}
	if d.FrameTime() != 125 {
		t.Errorf("FrameTime = %v, want 125", d.FrameTime())
	}

	d.Update(125)
	if got := d.FPS(); got != 8 {
		t.Errorf("FPS changed before the next window: %v", got)
	}
}

func TestOverlayDefaults(t *testing.T) {
	d := NewDebugOverlay()
	if !d.Enabled || !d.ShowFPS || !d.ShowMesh || d.ShowMemory {
		t.Errorf("unexpected defaults: %+v", d)
	}
}
