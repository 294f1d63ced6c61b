package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/zhulik/wildkmp/pkg/kmp"
	"github.com/zhulik/wildkmp/pkg/randseq"
)

type LockerType string

const (
	LockerLocal LockerType = "local"
	LockerRedis LockerType = "redis"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	Wildcard  string `env:"WILDCARD"  envDefault:"?"`
	Separator string `env:"SEPARATOR" envDefault:"#"`

	ResultsPath string `env:"RESULTS_PATH" envDefault:"./results"`
	PlanPath    string `env:"PLAN_PATH"`
	BenchRuns   int    `env:"BENCH_RUNS"   envDefault:"5"`
	// Seed 0 seeds the sweep from the clock.
	Seed uint64 `env:"SEED" envDefault:"0"`

	Locker       LockerType `env:"LOCKER"        envDefault:"local"`
	RedisAddress string     `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	ResultsS3Endpoint        string `env:"RESULTS_S3_ENDPOINT"`
	ResultsS3Bucket          string `env:"RESULTS_S3_BUCKET"`
	ResultsS3AccessKeyID     string `env:"RESULTS_S3_ACCESS_KEY_ID"`
	ResultsS3SecretAccessKey string `env:"RESULTS_S3_SECRET_ACCESS_KEY"`
	ResultsS3Secure          bool   `env:"RESULTS_S3_SECURE" envDefault:"true"`

	Port            int `env:"PORT"              envDefault:"8080"`
	HealthCheckPort int `env:"HEALTH_CHECK_PORT" envDefault:"8081"`

	symbols kmp.Symbols
}

func (c *Config) Init(_ context.Context) error {
	if c.Environment != "" {
		// already initialized manually
		return c.Validate()
	}

	err := env.Parse(c)
	if err != nil {
		return fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	return c.Validate()
}

// Validate checks the settings env tags cannot express and prepares the
// comparator.
func (c *Config) Validate() error {
	wildcard, err := ParseSymbol(c.Wildcard)
	if err != nil {
		return fmt.Errorf("%w: WILDCARD: %w", ErrInvalidConfig, err)
	}

	separator, err := ParseSymbol(c.Separator)
	if err != nil {
		return fmt.Errorf("%w: SEPARATOR: %w", ErrInvalidConfig, err)
	}

	// Generated texts draw from the capital letters, which must stay plain.
	letters, _ := randseq.Alphabet(randseq.MaxAlphabetSize)
	if strings.IndexByte(letters, wildcard) >= 0 || strings.IndexByte(letters, separator) >= 0 {
		return fmt.Errorf("%w: WILDCARD and SEPARATOR must not be one of %s", ErrInvalidConfig, letters)
	}

	c.symbols, err = kmp.Wildcard(wildcard, separator)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.BenchRuns < 1 {
		return fmt.Errorf("%w: BENCH_RUNS must be positive, got %d", ErrInvalidConfig, c.BenchRuns)
	}

	switch c.Locker {
	case LockerLocal, LockerRedis:
	default:
		return fmt.Errorf("%w: unknown LOCKER %q", ErrInvalidConfig, c.Locker)
	}

	if c.ResultsS3Endpoint != "" && c.ResultsS3Bucket == "" {
		return fmt.Errorf("%w: RESULTS_S3_BUCKET is required with RESULTS_S3_ENDPOINT", ErrInvalidConfig)
	}

	return nil
}

// Symbols returns the comparator described by WILDCARD and SEPARATOR.
func (c *Config) Symbols() kmp.Symbols {
	return c.symbols
}
