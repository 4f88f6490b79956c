// +build integration

package main

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestCommandsAgainstLiveAPI builds the binary and runs the read-only
// commands against the real iTunes Search API.
// Run with: go test -tags=integration -v .
func TestCommandsAgainstLiveAPI(t *testing.T) {
	buildCmd := exec.Command("go", "build", "-o", "storefront_test", ".")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	defer os.Remove("storefront_test")

	home := t.TempDir()
	run := func(args ...string) string {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		cmd := exec.CommandContext(ctx, "./storefront_test", args...)
		cmd.Env = append(os.Environ(),
			"HOME="+home,
			"STOREFRONT_FAVORITES_BACKEND=bolt",
		)
		out, err := cmd.Output()
		if err != nil {
			t.Fatalf("storefront %s failed: %v", strings.Join(args, " "), err)
		}
		return string(out)
	}

	out := run("overview")
	if !strings.Contains(out, "Songs (") || !strings.Contains(out, "Albums (") {
		t.Errorf("unexpected overview output:\n%s", out)
	}

	out = run("list", "tracks", "--pages", "2")
	if !strings.Contains(out, "Songs (") {
		t.Errorf("unexpected list output:\n%s", out)
	}

	if out := run("like", "1"); out != "Liked 1\n" {
		t.Errorf("unexpected like output %q", out)
	}
	if out := run("likes"); out != "1\n" {
		t.Errorf("unexpected likes output %q", out)
	}
}
