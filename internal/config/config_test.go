package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/some/path"},
		Auth: AuthConfig{
			LoginRatePerMinute: 20,
			LoginRateBurst:     10,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"WARN", true}, // case insensitive
		{"trace", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_RateLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.LoginRatePerMinute = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Auth.LoginRateBurst = -1
	assert.Error(t, cfg.Validate())
}

func TestDerivedPaths(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, filepath.Join("/some/path", "store"), cfg.StorePath())
	assert.Equal(t, filepath.Join("/some/path", "search"), cfg.SearchPath())
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("INKWELL_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "INKWELL_TEST_KEY", "fallback"))
	assert.Equal(t, "from-env", getConfigValue("", "INKWELL_TEST_KEY", "fallback"))

	os.Unsetenv("INKWELL_TEST_KEY")
	assert.Equal(t, "fallback", getConfigValue("", "INKWELL_TEST_KEY", "fallback"))
}

func TestGetIntConfigValue(t *testing.T) {
	t.Setenv("INKWELL_TEST_INT", "42")
	assert.Equal(t, 42, getIntConfigValue("", "INKWELL_TEST_INT", 7))

	t.Setenv("INKWELL_TEST_INT", "not a number")
	assert.Equal(t, 7, getIntConfigValue("", "INKWELL_TEST_INT", 7))

	os.Unsetenv("INKWELL_TEST_INT")
	assert.Equal(t, 7, getIntConfigValue("", "INKWELL_TEST_INT", 7))
}

func TestExpandPath(t *testing.T) {
	t.Run("empty uses default", func(t *testing.T) {
		got, err := expandPath("", "/default")
		require.NoError(t, err)
		assert.Equal(t, "/default", got)
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := expandPath("~/inkwell", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "inkwell"), got)
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := expandPath("relative/dir", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	content := "# comment\nINKWELL_ENVFILE_A=hello\nINKWELL_ENVFILE_B=\"quoted\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("INKWELL_ENVFILE_A")
		os.Unsetenv("INKWELL_ENVFILE_B")
	})

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "hello", os.Getenv("INKWELL_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("INKWELL_ENVFILE_B"))

	t.Run("existing env vars win", func(t *testing.T) {
		t.Setenv("INKWELL_ENVFILE_A", "preset")
		require.NoError(t, loadEnvFile(envPath))
		assert.Equal(t, "preset", os.Getenv("INKWELL_ENVFILE_A"))
	})

	t.Run("malformed line", func(t *testing.T) {
		badPath := filepath.Join(dir, "bad.env")
		require.NoError(t, os.WriteFile(badPath, []byte("not-a-pair\n"), 0o600))
		assert.Error(t, loadEnvFile(badPath))
	})
}
