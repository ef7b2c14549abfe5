package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInteractiveSession(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseInteractiveCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out, errOut bytes.Buffer
	cmd.in = strings.NewReader("shape=circle color=blue\nbogus\nobjects\nstate\nsave\nexit\nshape=text\n")
	cmd.out = &out
	cmd.errOut = &errOut

	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"*  0: circle", "tool=pen color=#0000ff size=5 surface=800x400", "saved "} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(errOut.String(), `unknown operation "bogus"`) {
		t.Errorf("expected an error for the bad line, got %q", errOut.String())
	}
	if strings.Contains(got, "textbox") {
		t.Errorf("input after exit should be ignored")
	}
	if _, err := os.Stat(filepath.Join(r.saveDir, "canvas-drawing.png")); err != nil {
		t.Fatalf("expected saved drawing: %v", err)
	}
}

func TestInteractiveEndOfInput(t *testing.T) {
	cmd, err := parseInteractiveCmd(nil, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.in = strings.NewReader("objects\n")
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "no objects") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
