package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestRunParse(t *testing.T) {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()
	color.NoColor = true

	tests := []struct {
		name       string
		grammar    string
		paths      []string
		wantFailed int
		wantLines  []string
	}{
		{
			"user posts",
			"user-posts",
			[]string{"/users/jdegoes/posts/123", "/users/jdegoes/posts/abc"},
			1,
			[]string{
				"/users/jdegoes/posts/123\tname=\"jdegoes\" id=123 rest=\"\"",
				"/users/jdegoes/posts/abc\tno match",
			},
		},
		{
			"resource",
			"resource",
			[]string{"/orgs/7/members"},
			0,
			[]string{"/orgs/7/members\tkind=\"orgs\" id=7 rest=\"/members\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			failed, err := runParse(&buf, tt.grammar, tt.paths)
			if err != nil {
				t.Fatalf("runParse() error = %v", err)
			}
			if failed != tt.wantFailed {
				t.Errorf("failed = %d, want %d", failed, tt.wantFailed)
			}
			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(got) != len(tt.wantLines) {
				t.Fatalf("got %d lines, want %d:\n%s", len(got), len(tt.wantLines), buf.String())
			}
			for i := range got {
				if got[i] != tt.wantLines[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.wantLines[i])
				}
			}
		})
	}
}

func TestRunParseUnknownGrammar(t *testing.T) {
	if _, err := runParse(&bytes.Buffer{}, "nope", []string{"/"}); err == nil {
		t.Error("runParse() accepted an unknown grammar")
	}
}

func TestParseCmdExitStatus(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"parse", "--no-color", "/users/a/posts/1", "/nope"})

	if err := root.Execute(); err == nil {
		t.Error("Execute() succeeded with an unmatched path")
	}
}

func TestBenchCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(cfgPath, []byte("count: 1\nbench_time: 1ms\ncases: [classic]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"bench", "--config", cfgPath, "--case", "hardcoded"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "hardcoded") || strings.Contains(out.String(), "classic") {
		t.Errorf("flag did not override config cases:\n%s", out.String())
	}
}

func TestUserPostsCasesAgree(t *testing.T) {
	cases := userPostsCases()
	for _, input := range []string{"/users/jdegoes/posts/123", "/users/x/posts/abc", ""} {
		want, wantRest, wantOK := cases[0].Parse(input)
		for _, c := range cases[1:] {
			got, rest, ok := c.Parse(input)
			if got != want || rest != wantRest || ok != wantOK {
				t.Errorf("%s disagrees with %s on %q", c.Name, cases[0].Name, input)
			}
		}
	}
}
