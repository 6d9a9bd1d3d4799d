package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// Golden compares a session transcript against testdata/{name}.golden.
// Line endings are normalised to \n on both sides, so golden files checked
// out with CRLF still match. If GOLDEN_UPDATE is set, the file is rewritten.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")
	got = normalizeNewlines(got)

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, got, 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", goldenPath, err, got)
	}
	want = normalizeNewlines(want)

	if line, wantLine, gotLine, differ := FirstDiff(want, got); differ {
		t.Errorf("%s: transcript differs from %s at line %d\nwant: %q\ngot:  %q",
			t.Name(), goldenPath, line, wantLine, gotLine)
	}
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}

// FirstDiff returns the 1-based number of the first line where want and got
// differ, with both lines. A missing line is reported as "".
// Lines are split on \n; a trailing newline counts as an empty last line.
func FirstDiff(want, got []byte) (line int, wantLine, gotLine string, differ bool) {
	if bytes.Equal(want, got) {
		return 0, "", "", false
	}

	wantLines := bytes.Split(want, []byte("\n"))
	gotLines := bytes.Split(got, []byte("\n"))
	for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
		var w, g []byte
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if i >= len(wantLines) || i >= len(gotLines) || !bytes.Equal(w, g) {
			return i + 1, string(w), string(g), true
		}
	}
	return 0, "", "", false
}

func normalizeNewlines(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}
