// Package config provides shared configuration utilities and the gameplay tuning.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 returns the environment variable parsed as an int64.
// ok is false when the variable is unset or not a valid integer.
func GetEnvInt64(key string) (n int64, ok bool) {
	value, set := os.LookupEnv(key)
	if !set {
		return 0, false
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SeedFromEnv returns TANKFALL_SEED, or 0 (meaning random) when it is unset
// or invalid.
func SeedFromEnv() uint64 {
	n, ok := GetEnvInt64(EnvSeed)
	if !ok {
		return 0
	}
	return uint64(n)
}
