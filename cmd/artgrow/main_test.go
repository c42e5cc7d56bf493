package main

import "testing"

func TestRootCommandShape(t *testing.T) {
	for _, name := range []string{"data-dir", "log-dir"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}

	found := false
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "version" {
			found = true
		}
	}
	if !found {
		t.Error("missing version subcommand")
	}
}
