package cmd

import "testing"

func TestInspectCommandValidatesRegistry(t *testing.T) {
	if err := runRoot(t, "inspect"); err != nil {
		t.Fatalf("inspect command failed: %v", err)
	}
}

func TestInspectCommandWithRegistryFlag(t *testing.T) {
	if err := runRoot(t, "inspect", "--registry"); err != nil {
		t.Fatalf("inspect --registry failed: %v", err)
	}
}
