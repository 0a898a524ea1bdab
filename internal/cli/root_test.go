package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC) }

// run executes pulsectl with a sqlmock-backed store.
func run(t *testing.T, setup func(mock sqlmock.Sqlmock), args ...string) (string, error) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	setup(mock)
	mock.ExpectClose()

	open := func(dsn string, timeout time.Duration) (*sql.DB, error) {
		return conn, nil
	}

	out := &bytes.Buffer{}
	cmd := newRootCommand(open, fixedNow)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err = cmd.Execute()
	if err == nil {
		assert.NoError(t, mock.ExpectationsWereMet())
	}
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "pulsectl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"seed", "repair", "ping", "day", "cert"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	timeout := cmd.PersistentFlags().Lookup("connect-timeout")
	require.NotNil(t, timeout)
	assert.Equal(t, "5s", timeout.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("dsn"))
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, func(sqlmock.Sqlmock) {}, "ping", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestConnectError(t *testing.T) {
	cmd := newRootCommand(func(string, time.Duration) (*sql.DB, error) {
		return nil, errors.New("dial tcp: refused")
	}, fixedNow)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"repair"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
exercises:
  - {title: Wall Sit, subtitle: Quads, goals: [Toning], equipmentNeeded: [None]}
  - {title: Step-ups, subtitle: Legs, goals: [Toning], equipmentNeeded: [Bench], location: Gym}
`), 0o600))

	out, err := run(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO exercises`)).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO exercises`)).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}, "seed", "--file", path)

	require.NoError(t, err)
	assert.Equal(t, "seeded 2 exercises\n", out)
}

func TestSeedInvalidFileDoesNotConnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exercises: []\n"), 0o600))

	connected := false
	cmd := newRootCommand(func(string, time.Duration) (*sql.DB, error) {
		connected = true
		return nil, errors.New("unexpected")
	}, fixedNow)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed", "-f", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
	assert.False(t, connected)
}

func TestRepair(t *testing.T) {
	out, err := run(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE workouts SET exercise_name = $1 WHERE exercise_name = ''`)).
			WithArgs("Unknown Exercise").
			WillReturnResult(sqlmock.NewResult(0, 3))
	}, "repair", "--format", "json")

	require.NoError(t, err)
	var got map[string]int64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 3, got["repaired"])
}

func TestPing(t *testing.T) {
	out, err := run(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM exercises`)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM workouts`)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	}, "ping")

	require.NoError(t, err)
	assert.Equal(t, "connected\nusers: 2\nexercises: 10\nworkouts: 7\n", out)
}

func TestDay(t *testing.T) {
	t.Run("defaults to yesterday", func(t *testing.T) {
		out, err := run(t, func(mock sqlmock.Sqlmock) {
			mock.ExpectQuery(regexp.QuoteMeta(`FROM workouts WHERE client_timestamp LIKE $1`)).
				WithArgs("2025-03-01%").
				WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(4, 3))
		}, "day")

		require.NoError(t, err)
		assert.Equal(t, "date: 2025-03-01\nworkouts: 4\nwith reps: 3\n", out)
	})

	t.Run("explicit date as json", func(t *testing.T) {
		out, err := run(t, func(mock sqlmock.Sqlmock) {
			mock.ExpectQuery(regexp.QuoteMeta(`FROM workouts WHERE client_timestamp LIKE $1`)).
				WithArgs("2025-01-31%").
				WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(1, 0))
		}, "day", "--date", "2025-01-31", "--format", "json")

		require.NoError(t, err)
		var got DayReport
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, DayReport{Date: "2025-01-31", Workouts: 1, WithReps: 0}, got)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := run(t, func(sqlmock.Sqlmock) {}, "day", "--date", "31/01/2025")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date")
	})
}

func TestCert(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")

	out := &bytes.Buffer{}
	cmd := newRootCommand(func(string, time.Duration) (*sql.DB, error) {
		return nil, errors.New("cert must not connect")
	}, fixedNow)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"cert", "--out", dir, "--host", "api.local"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), filepath.Join(dir, "server.crt"))
	assert.FileExists(t, filepath.Join(dir, "server.key"))
}
