package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func setupCLI(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI integration test in short mode")
	}
	t.Setenv("HIFZ_DB_TYPE", "sqlite-pure")
	t.Setenv("HIFZ_DB_PATH", filepath.Join(t.TempDir(), "hifz_cli.db"))
	t.Setenv("HIFZ_MIGRATIONS_PATH", "../../migrations")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{}
	defer a.close()
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("hifz %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestCompareAndMasteryFlow(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "compare", "--surah", "1", "--verse", "1",
		"--text", "بسم الله الرحمن الرحيم", "--input", "بسم الله الرحيم")
	if !strings.Contains(out, "75%") || !strings.Contains(out, "(3/4 words)") {
		t.Errorf("unexpected compare output:\n%s", out)
	}
	if !strings.Contains(out, "1 error logged") {
		t.Errorf("expected the deletion to be logged:\n%s", out)
	}

	out = mustRun(t, "errors", "summary")
	if !strings.Contains(out, "1:1") || !strings.Contains(out, "1 error") {
		t.Errorf("unexpected summary output:\n%s", out)
	}

	out = mustRun(t, "drill", "record", "--surah", "1", "--verse", "1", "--score", "95")
	if !strings.Contains(out, "mastered") {
		t.Errorf("unexpected drill output:\n%s", out)
	}

	out = mustRun(t, "mastery", "stats")
	if !strings.Contains(out, "total 1, new 0, practicing 0, mastered 1") {
		t.Errorf("unexpected stats output:\n%s", out)
	}

	out = mustRun(t, "mastery", "level", "--surah", "2", "--verse", "1")
	if !strings.Contains(out, "not tracked") {
		t.Errorf("unexpected level output:\n%s", out)
	}
}

func TestReviewFlow(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "review", "log", "--section", "1", "--score", "80")
	if !strings.Contains(out, "juz 1 running average 80") {
		t.Errorf("unexpected review log output:\n%s", out)
	}

	out = mustRun(t, "review", "next", "--sections", "1", "--verses", "2:200")
	if !strings.Contains(out, "Review juz 2") {
		t.Errorf("expected the never reviewed juz to be picked:\n%s", out)
	}
}

func TestCommandValidation(t *testing.T) {
	setupCLI(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "compare without verse", args: []string{"compare", "--text", "بسم"}},
		{name: "clear without confirmation", args: []string{"errors", "clear"}},
		{name: "drill score out of range", args: []string{"drill", "record", "--surah", "1", "--verse", "1", "--score", "101"}},
		{name: "review section out of range", args: []string{"review", "log", "--section", "31", "--score", "50"}},
		{name: "import without input", args: []string{"backup", "import"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Errorf("expected hifz %s to fail", strings.Join(tt.args, " "))
			}
		})
	}
}
