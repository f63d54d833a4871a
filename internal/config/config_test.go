package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		src       string
		environ   []string
		expected  Settings
		expectErr bool
	}{
		{
			name:     "empty file sets nothing",
			src:      ``,
			expected: Settings{},
		},
		{
			name: "all blocks",
			src: `
numbering {
  maintain = true
  reset    = false
}
output {
  show   = true
  format = "yaml"
}
logging {
  level  = "debug"
  format = "json"
}
`,
			expected: Settings{
				Maintain:   ptr(true),
				Reset:      ptr(false),
				Show:       ptr(true),
				ShowFormat: ptr("yaml"),
				LogLevel:   ptr("debug"),
				LogFormat:  ptr("json"),
			},
		},
		{
			name:     "partial block leaves other attributes unset",
			src:      "numbering {\n  reset = true\n}\n",
			expected: Settings{Reset: ptr(true)},
		},
		{
			name:     "environment is available as env",
			src:      "logging {\n  level = env.REABANK_LEVEL\n}\n",
			environ:  []string{"REABANK_LEVEL=warn", "MALFORMED"},
			expected: Settings{LogLevel: ptr("warn")},
		},
		{
			name:      "syntax error",
			src:       "numbering {",
			expectErr: true,
		},
		{
			name:      "unknown block",
			src:       "banks {}\n",
			expectErr: true,
		},
		{
			name:      "wrong attribute type",
			src:       "numbering {\n  maintain = \"sometimes\"\n}\n",
			expectErr: true,
		},
		{
			name:      "missing env variable",
			src:       "logging {\n  level = env.NOPE\n}\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := Parse([]byte(tc.src), "reabank.hcl", tc.environ)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("explicit file is read", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.hcl")
		require.NoError(t, os.WriteFile(path, []byte("numbering {\n  maintain = true\n}\n"), 0o644))

		s, err := LoadFile(ctx, path, nil)

		require.NoError(t, err)
		assert.Equal(t, Settings{Maintain: ptr(true)}, s)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(ctx, filepath.Join(t.TempDir(), "nope.hcl"), nil)
		require.Error(t, err)
	})
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("reads recognised variables", func(t *testing.T) {
		t.Parallel()
		s, err := FromEnv([]string{
			"REABANK_MAINTAIN=true",
			"REABANK_RESET=0",
			"REABANK_SHOW=1",
			"REABANK_SHOW_FORMAT=JSON",
			"REABANK_LOG_LEVEL=debug",
			"REABANK_LOG_FORMAT=text",
			"HOME=/root",
		})
		require.NoError(t, err)
		assert.Equal(t, Settings{
			Maintain:   ptr(true),
			Reset:      ptr(false),
			Show:       ptr(true),
			ShowFormat: ptr("json"),
			LogLevel:   ptr("debug"),
			LogFormat:  ptr("text"),
		}, s)
	})

	t.Run("empty values are unset", func(t *testing.T) {
		t.Parallel()
		s, err := FromEnv([]string{"REABANK_MAINTAIN=", "REABANK_LOG_LEVEL=  "})
		require.NoError(t, err)
		assert.Equal(t, Settings{}, s)
	})

	t.Run("bad boolean is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := FromEnv([]string{"REABANK_RESET=maybe"})
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	// Mutates the process environment, so not parallel.
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REABANK_TEST_DOTENV_A=from-file\nREABANK_TEST_DOTENV_B=from-file\n"), 0o644))
	t.Setenv("REABANK_TEST_DOTENV_A", "from-env")
	t.Cleanup(func() { os.Unsetenv("REABANK_TEST_DOTENV_B") })

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("REABANK_TEST_DOTENV_A"))
	assert.Equal(t, "from-file", os.Getenv("REABANK_TEST_DOTENV_B"))
}

func TestSettings_Merge(t *testing.T) {
	t.Parallel()

	base := Settings{Maintain: ptr(true), LogLevel: ptr("info")}
	over := Settings{Maintain: ptr(false), ShowFormat: ptr("yaml")}

	merged := base.Merge(over)

	assert.Equal(t, Settings{Maintain: ptr(false), LogLevel: ptr("info"), ShowFormat: ptr("yaml")}, merged)
	assert.True(t, *base.Maintain, "Merge must not modify the receiver")
}
