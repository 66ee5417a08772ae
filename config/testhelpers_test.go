package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
}

// relativeTo returns dir relative to the working directory, as LoadWithEnv joins search paths onto it.
func relativeTo(t *testing.T, dir string) string {
	t.Helper()
	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}
