package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperpulsex/hyperpulse/internal/config"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := config.Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}, env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":5000", opts.Port)
	assert.Equal(t, 5*time.Second, opts.ConnectTimeout)
	assert.Equal(t, "workouts.synced", opts.WorkoutTopic)
	assert.Equal(t, time.Hour, opts.RepairInterval)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Empty(t, opts.DatabaseDSN)
	assert.Empty(t, opts.KafkaBrokers)
}

func TestLoad_Flags(t *testing.T) {
	args := []string{
		"-c", filepath.Join(t.TempDir(), "missing.json"),
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/fit",
		"-l", "debug",
		"-connect-timeout", "2s",
		"-kafka-brokers", "k1:9092, k2:9092",
		"-workout-topic", "custom",
		"-repair-interval", "0",
		"-tls-cert", "server.crt",
		"-tls-key", "server.key",
	}
	opts, err := config.Load(args, env(nil))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", opts.Port)
	assert.Equal(t, "postgres://localhost/fit", opts.DatabaseDSN)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, 2*time.Second, opts.ConnectTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, opts.KafkaBrokers)
	assert.Equal(t, "custom", opts.WorkoutTopic)
	assert.Zero(t, opts.RepairInterval)
	assert.Equal(t, "server.crt", opts.TLSCert)
	assert.Equal(t, "server.key", opts.TLSKey)
}

func TestLoad_FileThenFlagsThenEnv(t *testing.T) {
	path := writeConfig(t, `{
		"server_address": ":7000",
		"database_dsn": "postgres://file/db",
		"log_level": "warn",
		"connect_timeout": "10s",
		"kafka_brokers": ["file:9092"],
		"repair_interval": "30m"
	}`)

	opts, err := config.Load([]string{"-config", path, "-d", "postgres://flag/db"}, env(map[string]string{
		"LOG_LEVEL":     "error",
		"KAFKA_BROKERS": "env1:9092,env2:9092",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":7000", opts.Port)
	assert.Equal(t, "postgres://flag/db", opts.DatabaseDSN)
	assert.Equal(t, "error", opts.LogLevel)
	assert.Equal(t, 10*time.Second, opts.ConnectTimeout)
	assert.Equal(t, []string{"env1:9092", "env2:9092"}, opts.KafkaBrokers)
	assert.Equal(t, 30*time.Minute, opts.RepairInterval)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, `{"workout_topic": "from-file"}`)

	opts, err := config.Load(nil, env(map[string]string{"CONFIG": path}))
	require.NoError(t, err)
	assert.Equal(t, "from-file", opts.WorkoutTopic)
}

func TestLoad_PortEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	opts, err := config.Load([]string{"-c", missing}, env(map[string]string{"PORT": "8081"}))
	require.NoError(t, err)
	assert.Equal(t, ":8081", opts.Port)

	opts, err = config.Load([]string{"-c", missing}, env(map[string]string{"PORT": "8081", "SERVER_ADDRESS": "0.0.0.0:9999"}))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", opts.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		_, err := config.Load([]string{"-c", writeConfig(t, "{")}, env(nil))
		assert.Error(t, err)
	})

	t.Run("bad duration in file", func(t *testing.T) {
		_, err := config.Load([]string{"-c", writeConfig(t, `{"connect_timeout": "soon"}`)}, env(nil))
		assert.ErrorContains(t, err, "connect_timeout")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := config.Load([]string{"-nope"}, env(nil))
		assert.Error(t, err)
	})
}
