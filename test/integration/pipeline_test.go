package integration

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/harrison/fstools/internal/cmd"
	"github.com/harrison/fstools/internal/finder"
	"github.com/harrison/fstools/internal/selector"
)

var fixtureRoot = filepath.Join("fixtures", "projects")

func TestFindPlanScripts(t *testing.T) {
	matches, err := finder.Find(fixtureRoot, "plan.sh")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{
		filepath.Join(fixtureRoot, "api", "plan.sh"),
		filepath.Join(fixtureRoot, "plan.sh"),
		filepath.Join(fixtureRoot, "web", "scripts", "plan.sh"),
	}
	got := append([]string(nil), matches...)
	sort.Strings(got)

	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("matches = %v, want %v (docs/plan.sh is a directory and must be skipped)", got, want)
	}
}

func TestFindThenSelect(t *testing.T) {
	matches, err := finder.Find(fixtureRoot, "plan.sh")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	out := &bytes.Buffer{}
	sel, err := selector.Select(matches, bufio.NewReader(strings.NewReader("7\n2\n")), out)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	idx, ok := sel.Index()
	if !ok || idx != 2 {
		t.Fatalf("selection = %v, want index 2", sel)
	}

	output := out.String()
	for i, match := range matches {
		line := strconv.Itoa(i) + ": " + match + "\n"
		if strings.Count(output, line) != 1 {
			t.Errorf("expected option line %q exactly once in %q", line, output)
		}
	}
	if !strings.Contains(output, "Please enter only a number from 0 to 2") {
		t.Errorf("expected a re-prompt for out-of-range input, got %q", output)
	}
}

func TestCommandsEndToEnd(t *testing.T) {
	t.Setenv("FSTOOLS_HOME", t.TempDir())

	findCmd := cmd.NewFindFileCommand()
	found := &bytes.Buffer{}
	findCmd.SetOut(found)
	findCmd.SetErr(&bytes.Buffer{})
	findCmd.SetArgs([]string{fixtureRoot, "scripts/plan.sh"})
	if err := findCmd.Execute(); err != nil {
		t.Fatalf("findfile failed: %v", err)
	}

	options := strings.Fields(found.String())
	if len(options) != 1 {
		t.Fatalf("expected exactly one scripts/plan.sh, got %v", options)
	}

	// One option is selected without reading stdin
	selectCmd := cmd.NewSelectFileCommand()
	menu := &bytes.Buffer{}
	result := &bytes.Buffer{}
	selectCmd.SetOut(menu)
	selectCmd.SetErr(result)
	selectCmd.SetIn(strings.NewReader(""))
	selectCmd.SetArgs(options)
	if err := selectCmd.Execute(); err != nil {
		t.Fatalf("selectfile failed: %v", err)
	}

	if menu.Len() != 0 {
		t.Errorf("expected no menu for a single option, got %q", menu.String())
	}
	if result.String() != filepath.Join(fixtureRoot, "web", "scripts", "plan.sh") {
		t.Errorf("selected %q", result.String())
	}

	script, err := os.ReadFile(result.String())
	if err != nil {
		t.Fatalf("selected path is not readable: %v", err)
	}
	if !strings.Contains(string(script), "echo web") {
		t.Errorf("unexpected script content %q", script)
	}
}
