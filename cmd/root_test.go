package cmd

import "testing"

func TestRootCommandTree(t *testing.T) {
	root := GetRootCmd()

	want := []string{"add", "config", "export", "list", "remove", "version"}
	registered := make(map[string]bool)

	for _, c := range root.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q is not registered on the root command", name)
		}
	}
}

func TestConfigCommandTree(t *testing.T) {
	for _, c := range configCmd.Commands() {
		if c.Name() == "set" {
			return
		}
	}

	t.Error("'config set' is not registered under the config command")
}
