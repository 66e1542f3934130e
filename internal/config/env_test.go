package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	return path
}

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		prev, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadEnvFile_SetsVariables(t *testing.T) {
	unsetForTest(t, "ESCORT_TEST_A", "ESCORT_TEST_B")
	path := writeEnvFile(t, "ESCORT_TEST_A=alpha\nESCORT_TEST_B=beta\n")

	LoadEnvFile(path)

	if got := os.Getenv("ESCORT_TEST_A"); got != "alpha" {
		t.Errorf("ESCORT_TEST_A = %q, want %q", got, "alpha")
	}
	if got := os.Getenv("ESCORT_TEST_B"); got != "beta" {
		t.Errorf("ESCORT_TEST_B = %q, want %q", got, "beta")
	}
}

func TestLoadEnvFile_DoesNotOverrideExisting(t *testing.T) {
	t.Setenv("ESCORT_TEST_A", "from-process")
	path := writeEnvFile(t, "ESCORT_TEST_A=from-file\n")

	LoadEnvFile(path)

	if got := os.Getenv("ESCORT_TEST_A"); got != "from-process" {
		t.Errorf("ESCORT_TEST_A = %q, want %q", got, "from-process")
	}
}

func TestLoadEnvFile_Idempotent(t *testing.T) {
	unsetForTest(t, "ESCORT_TEST_A", "ESCORT_TEST_B")
	path := writeEnvFile(t, "ESCORT_TEST_A=alpha\nESCORT_TEST_B=beta\n")

	LoadEnvFile(path)
	first := snapshot("ESCORT_TEST_A", "ESCORT_TEST_B")

	for i := 0; i < 3; i++ {
		LoadEnvFile(path)
	}
	second := snapshot("ESCORT_TEST_A", "ESCORT_TEST_B")

	for key, value := range first {
		if second[key] != value {
			t.Errorf("%s changed from %q to %q after reload", key, value, second[key])
		}
	}
}

func TestLoadEnvFile_MissingOrMalformed(t *testing.T) {
	unsetForTest(t, "ESCORT_TEST_C")

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.env") },
		},
		{
			name: "directory instead of file",
			path: func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "malformed content",
			path: func(t *testing.T) string { return writeEnvFile(t, "ESCORT_TEST_C='unterminated\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(os.Environ())
			LoadEnvFile(tt.path(t))
			if after := len(os.Environ()); after < before {
				t.Errorf("environment shrank from %d to %d entries", before, after)
			}
		})
	}
}

func snapshot(keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = os.Getenv(key)
	}
	return out
}
