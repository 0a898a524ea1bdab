// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON file and environment
// variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Defaults applied before any source is read.
const (
	DefaultAddress        = ":5000"
	DefaultConnectTimeout = 5 * time.Second
	DefaultWorkoutTopic   = "workouts.synced"
	DefaultRepairInterval = time.Hour
	DefaultLogLevel       = "info"
	DefaultConfigPath     = "config.json"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// Config is the path to the Config file.
	Config string

	// LogLevel is the zap level name.
	LogLevel string

	// ConnectTimeout bounds the initial database connection.
	ConnectTimeout time.Duration

	// KafkaBrokers enables workout events when not empty.
	KafkaBrokers []string

	// WorkoutTopic is the Kafka topic for workout events.
	WorkoutTopic string

	// RepairInterval is the period of the workout repair job; 0 disables it.
	RepairInterval time.Duration

	// TLSCert and TLSKey switch the server to HTTPS when both are set.
	TLSCert string
	TLSKey  string
}

// fileOptions mirrors Options in the JSON config file.
type fileOptions struct {
	ServerAddress  string   `json:"server_address"`
	DatabaseDSN    string   `json:"database_dsn"`
	LogLevel       string   `json:"log_level"`
	ConnectTimeout string   `json:"connect_timeout"`
	KafkaBrokers   []string `json:"kafka_brokers"`
	WorkoutTopic   string   `json:"workout_topic"`
	RepairInterval string   `json:"repair_interval"`
	TLSCert        string   `json:"tls_cert"`
	TLSKey         string   `json:"tls_key"`
}

// Parse reads the process flags and environment. It exits on invalid input.
func Parse() *Options {
	opts, err := Load(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("error while loading config: %v", err)
	}
	return opts
}

// Load builds Options from args, the config file and getenv.
// Precedence, lowest first: defaults, config file, flags, environment.
func Load(args []string, getenv func(string) string) (*Options, error) {
	opts := &Options{
		Port:           DefaultAddress,
		Config:         DefaultConfigPath,
		LogLevel:       DefaultLogLevel,
		ConnectTimeout: DefaultConnectTimeout,
		WorkoutTopic:   DefaultWorkoutTopic,
		RepairInterval: DefaultRepairInterval,
	}

	flags := &Options{}
	var brokers string
	fs := flag.NewFlagSet("hyperpulse", flag.ContinueOnError)
	fs.StringVar(&flags.Port, "a", opts.Port, "run on ip:port server")
	fs.StringVar(&flags.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&flags.Config, "config", opts.Config, "path to config file")
	fs.StringVar(&flags.Config, "c", opts.Config, "path to config file (shorthand)")
	fs.StringVar(&flags.LogLevel, "l", opts.LogLevel, "log level")
	fs.DurationVar(&flags.ConnectTimeout, "connect-timeout", opts.ConnectTimeout, "database connect timeout")
	fs.StringVar(&brokers, "kafka-brokers", "", "comma separated kafka brokers")
	fs.StringVar(&flags.WorkoutTopic, "workout-topic", opts.WorkoutTopic, "kafka topic for workout events")
	fs.DurationVar(&flags.RepairInterval, "repair-interval", opts.RepairInterval, "workout repair period, 0 disables")
	fs.StringVar(&flags.TLSCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&flags.TLSKey, "tls-key", "", "TLS key file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts.Config = flags.Config
	if configPath := getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}
	if err := applyFile(opts, opts.Config); err != nil {
		return nil, err
	}

	if set["a"] {
		opts.Port = flags.Port
	}
	if set["d"] {
		opts.DatabaseDSN = flags.DatabaseDSN
	}
	if set["l"] {
		opts.LogLevel = flags.LogLevel
	}
	if set["connect-timeout"] {
		opts.ConnectTimeout = flags.ConnectTimeout
	}
	if set["kafka-brokers"] {
		opts.KafkaBrokers = splitList(brokers)
	}
	if set["workout-topic"] {
		opts.WorkoutTopic = flags.WorkoutTopic
	}
	if set["repair-interval"] {
		opts.RepairInterval = flags.RepairInterval
	}
	if set["tls-cert"] {
		opts.TLSCert = flags.TLSCert
	}
	if set["tls-key"] {
		opts.TLSKey = flags.TLSKey
	}

	// Override with environment variables if set
	if port := getenv("PORT"); port != "" {
		opts.Port = ":" + port
	}
	if serverAddress := getenv("SERVER_ADDRESS"); serverAddress != "" {
		opts.Port = serverAddress
	}
	if dsn := getenv("DATABASE_DSN"); dsn != "" {
		opts.DatabaseDSN = dsn
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		opts.LogLevel = level
	}
	if brokers := getenv("KAFKA_BROKERS"); brokers != "" {
		opts.KafkaBrokers = splitList(brokers)
	}
	if topic := getenv("WORKOUT_TOPIC"); topic != "" {
		opts.WorkoutTopic = topic
	}

	return opts, nil
}

// applyFile merges the JSON config file at path into opts.
// A missing file is not an error.
func applyFile(opts *Options, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fo fileOptions
	if err := json.Unmarshal(data, &fo); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fo.ServerAddress != "" {
		opts.Port = fo.ServerAddress
	}
	if fo.DatabaseDSN != "" {
		opts.DatabaseDSN = fo.DatabaseDSN
	}
	if fo.LogLevel != "" {
		opts.LogLevel = fo.LogLevel
	}
	if fo.ConnectTimeout != "" {
		d, err := time.ParseDuration(fo.ConnectTimeout)
		if err != nil {
			return fmt.Errorf("parse connect_timeout: %w", err)
		}
		opts.ConnectTimeout = d
	}
	if len(fo.KafkaBrokers) > 0 {
		opts.KafkaBrokers = fo.KafkaBrokers
	}
	if fo.WorkoutTopic != "" {
		opts.WorkoutTopic = fo.WorkoutTopic
	}
	if fo.RepairInterval != "" {
		d, err := time.ParseDuration(fo.RepairInterval)
		if err != nil {
			return fmt.Errorf("parse repair_interval: %w", err)
		}
		opts.RepairInterval = d
	}
	if fo.TLSCert != "" {
		opts.TLSCert = fo.TLSCert
	}
	if fo.TLSKey != "" {
		opts.TLSKey = fo.TLSKey
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
