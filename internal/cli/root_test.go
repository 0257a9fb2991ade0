package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{"serve": false, "process": false, "watch": false, "version": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "minutes ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestProcessRequiresFile(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process"})

	if err := root.Execute(); err == nil {
		t.Error("process without arguments should fail")
	}
}

func TestMissingConfig(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "a.mp3"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("Execute() error = %v, want config error", err)
	}
}
