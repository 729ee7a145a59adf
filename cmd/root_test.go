package cmd

import (
	"bytes"
	"context"
	"testing"
)

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"once", "windows", "config", "serve", "version"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"config", "string"},
		{"format", "string"},
		{"pretty", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flags := serveCmd.Flags()

	tests := []struct {
		name     string
		flagType string
		def      string
	}{
		{"transport", "string", "stdio"},
		{"port", "int", "8080"},
		{"cache-ttl", "int", "250"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
		if f.DefValue != tt.def {
			t.Errorf("flag %q: expected default %q, got %q", tt.name, tt.def, f.DefValue)
		}
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "unexpected"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRootCommand_BadFormat(t *testing.T) {
	_, err := execute(t, "version", "--format", "xml")
	if err == nil {
		t.Error("expected error for unknown format")
	}
	// Flag values persist on the global command between runs.
	if _, err := execute(t, "version", "--format", "yaml"); err != nil {
		t.Fatal(err)
	}
}
