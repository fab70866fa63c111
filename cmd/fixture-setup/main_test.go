package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootGeneratesIntoWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	want := "Test files created:\n" +
		"  config.json (58 bytes)\n" +
		"  data.csv (55 bytes)\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("output =\n%s\nwant prefix\n%s", out, want)
	}
	if n := strings.Count(out, "\n"); n != 8 {
		t.Errorf("output has %d lines, want 8", n)
	}

	if _, err := os.Stat(filepath.Join(dir, "test_files", "shell_script.sh")); err != nil {
		t.Errorf("shell_script.sh not created: %v", err)
	}
}

func TestRootFailsWhenDestinationIsFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "test_files"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	out, err := execute(t)
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "test_files") {
		t.Errorf("error %q does not name the path", err)
	}
	if out != "" {
		t.Errorf("report written despite failure: %q", out)
	}
}

func TestReportCommandDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if _, err := execute(t, "report"); err == nil {
		t.Fatal("report on missing directory: error = nil, want error")
	}
	if _, err := os.Stat(filepath.Join(dir, "test_files")); !os.IsNotExist(err) {
		t.Errorf("report created the directory: %v", err)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := execute(t, "extra"); err == nil {
		t.Error("Execute() with positional argument: error = nil, want error")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup, equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) failed: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
