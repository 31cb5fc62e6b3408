package configtest

import (
	"os"
	"strings"
	"testing"

	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config"
	"github.com/stretchr/testify/require"
)

func fromFile(t testing.TB, path string) *config.Config {
	var p config.Prm

	c, err := config.New(p,
		config.WithConfigFile(path),
	)
	require.NoError(t, err)

	return c
}

// ForEachFileType passes configs read from next files:
//   - `<pref>.yaml`;
//   - `<pref>.json`.
func ForEachFileType(t testing.TB, pref string, f func(*config.Config)) {
	for _, p := range []string{pref + ".yaml", pref + ".json"} {
		f(fromFile(t, p))
	}
}

// EmptyConfig returns config without any values and sections.
func EmptyConfig(t testing.TB) *config.Config {
	var p config.Prm

	c, err := config.New(p)
	require.NoError(t, err)

	return c
}

// ForEnvFileType sets environment variables from `<pref>.env` file for the
// test duration and passes config with no file to f.
func ForEnvFileType(t *testing.T, pref string, f func(*config.Config)) {
	data, err := os.ReadFile(pref + ".env")
	require.NoError(t, err)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		require.True(t, ok, "invalid env line %q", line)
		t.Setenv(k, v)
	}

	f(EmptyConfig(t))
}
