// Package testsupport holds shared helpers for tests: a build-once
// artgrow binary and environment setup for testscript sessions.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce   sync.Once
	artgrowPath string
	buildErr    error
)

// BuildArtgrow builds the artgrow binary once and returns its path.
func BuildArtgrow(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "artgrow-bin-")
		if err != nil {
			buildErr = err
			return
		}

		artgrowPath = filepath.Join(binDir, "artgrow")
		cmd := exec.Command("go", "build", "-o", artgrowPath, "./cmd/artgrow")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build artgrow: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return artgrowPath
}

// SetupScriptEnv configures common environment variables for testscript.
// HOME points inside the script's work dir and the AI key is cleared so
// sessions never reach a real endpoint.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("ARTGROW", BuildArtgrow(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "share", "artgrow"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("OPENAI_API_KEY", "")
	env.Setenv("ARTGROW_MODEL", "")
	env.Setenv("ARTGROW_BASE_URL", "")
	env.Setenv("ARTGROW_DATA_DIR", "")
	env.Setenv("ARTGROW_LOG_DIR", "")
	return nil
}

// SetupTestHome creates a temp home directory and sets HOME.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "share", "artgrow"), 0o755); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	return homeDir
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
