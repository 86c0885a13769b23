package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", ":7000"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", ":7000"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "order preserved",
			args:    []string{"-s", "k1", "-x", "1", "-a", ":8080"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-s", "k1", "-a", ":8080"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next arg is another flag",
			args:    []string{"-c", "-a", ":1"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "nil args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short flag", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		os.Args = []string{"bin", "-a", ":7000", "-c", "server.json"}
		assert.Equal(t, "server.json", ConfigFilePath())
	})

	t.Run("long flag with equals", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		os.Args = []string{"bin", "-config=other.json"}
		assert.Equal(t, "other.json", ConfigFilePath())
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/etc/hotelbook.json")
		os.Args = []string{"bin"}
		assert.Equal(t, "/etc/hotelbook.json", ConfigFilePath())
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/etc/hotelbook.json")
		os.Args = []string{"bin", "-c", "local.json"}
		assert.Equal(t, "local.json", ConfigFilePath())
	})

	t.Run("nothing", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		os.Args = []string{"bin"}
		assert.Empty(t, ConfigFilePath())
	})
}
