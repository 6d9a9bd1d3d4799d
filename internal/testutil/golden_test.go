package testutil

import (
	"testing"
)

func TestFirstDiff(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		got      string
		line     int
		wantLine string
		gotLine  string
		differ   bool
	}{
		{"equal", "a\nb\n", "a\nb\n", 0, "", "", false},
		{"changed line", "Enter your choice: \nNo tasks available.\n", "Enter your choice: \nNo tasks.\n", 2, "No tasks available.", "No tasks.", true},
		{"got shorter", "a\nb\nc", "a\nb", 3, "c", "", true},
		{"got longer", "a", "a\nextra", 2, "", "extra", true},
		{"missing trailing newline", "a\n", "a", 2, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, wantLine, gotLine, differ := FirstDiff([]byte(tt.want), []byte(tt.got))
			if differ != tt.differ || line != tt.line || wantLine != tt.wantLine || gotLine != tt.gotLine {
				t.Errorf("expected (%d, %q, %q, %v), got (%d, %q, %q, %v)",
					tt.line, tt.wantLine, tt.gotLine, tt.differ, line, wantLine, gotLine, differ)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	got := string(normalizeNewlines([]byte("Enter Title: \r\nTask created successfully!\r\n")))
	expected := "Enter Title: \nTask created successfully!\n"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestGolden_CRLFTranscriptMatches(t *testing.T) {
	// Runs in the package dir, so testdata/ resolves to internal/testutil/testdata.
	GoldenString(t, "crlf_transcript", "Ending session.. Goodbye!\r\n")
}
