package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirFlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config", dir)
}

func TestResolveConfigDirEnvBeatsDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config", dir)
}

func TestResolveConfigDirDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg/config", "spark"), dir)
		return
	}

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestResolveDataDirPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		configValue string
		env         string
		want        string
	}{
		{
			name:        "flag beats config and env",
			flag:        "/flag/data",
			configValue: "/config/data",
			env:         "/env/data",
			want:        "/flag/data",
		},
		{
			name:        "config beats env",
			configValue: "/config/data",
			env:         "/env/data",
			want:        "/config/data",
		},
		{
			name: "env beats default",
			env:  "/env/data",
			want: "/env/data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.env)

			dir, err := ResolveDataDir(tt.flag, tt.configValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestResolveDataDirDefaultsToCWD(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	wd := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	dir, err := ResolveDataDir("", "")
	require.NoError(t, err)
	// Compare resolved paths; t.TempDir may sit behind a symlink.
	wantReal, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, wantReal, gotReal)
}
