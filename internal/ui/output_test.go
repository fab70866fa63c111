package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestMessagePrefixes(t *testing.T) {
	tests := []struct {
		name  string
		print func(u *UI)
		want  string
	}{
		{"info", func(u *UI) { u.Infof("wrote %d files", 7) }, "[INFO] wrote 7 files\n"},
		{"success", func(u *UI) { u.Success("done") }, "[✓] done\n"},
		{"warning", func(u *UI) { u.Warningf("%s missing", "notes.txt") }, "[WARNING] notes.txt missing\n"},
		{"error", func(u *UI) { u.Errorf("write %s failed", "x") }, "[ERROR] write x failed\n"},
		{"plain", func(u *UI) { u.Print("plain") }, "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewWithWriter(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf).Header("Fixture Status")

	out := buf.String()
	if !strings.Contains(out, "  Fixture Status\n") {
		t.Errorf("Header() output missing title: %q", out)
	}
	if strings.Count(out, strings.Repeat("=", lineWidth)) != 2 {
		t.Errorf("Header() output should contain two borders: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Header() output contains ANSI escapes: %q", out)
	}
}
