package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LookupFunc reads a variable from the build environment.
type LookupFunc func(key string) (string, bool)

// Resolver applies env > CLI > default precedence to settings.
type Resolver struct {
	logger *zap.Logger
	lookup LookupFunc
}

// NewResolver creates a Resolver reading the process environment.
func NewResolver(logger *zap.Logger) Resolver {
	return NewResolverWithLookup(logger, os.LookupEnv)
}

// NewResolverWithLookup creates a Resolver reading variables through lookup.
func NewResolverWithLookup(logger *zap.Logger, lookup LookupFunc) Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return Resolver{logger: logger, lookup: lookup}
}

// Lookup returns the trimmed value of an environment variable. Variables that
// are set but blank count as unset.
func (r Resolver) Lookup(key string) (string, bool) {
	if r.lookup == nil {
		r.lookup = os.LookupEnv
	}
	val, ok := r.lookup(key)
	val = strings.TrimSpace(val)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

func (r Resolver) logConflict(setting, envVal, cliVal string) {
	if r.logger == nil {
		return
	}
	r.logger.Warn(
		"config: conflict for "+setting,
		zap.String("env", envVal),
		zap.String("cli", cliVal),
		zap.String("decision", "using env value"),
	)
}

// String resolves a string setting using the precedence rules.
func (r Resolver) String(setting, envKey, cliVal string, cliSet bool, defaultVal string) string {
	envVal, envSet := r.Lookup(envKey)
	if envSet && cliSet && envVal != cliVal {
		r.logConflict(setting, envVal, cliVal)
	}
	if envSet {
		return envVal
	}
	if cliSet {
		return cliVal
	}
	return defaultVal
}

// Bool resolves a boolean setting.
func (r Resolver) Bool(setting, envKey string, cliVal bool, cliSet bool, defaultVal bool) (bool, error) {
	envVal, envSet := r.Lookup(envKey)
	if !envSet {
		if cliSet {
			return cliVal, nil
		}
		return defaultVal, nil
	}

	parsed, err := strconv.ParseBool(envVal)
	if err != nil {
		return false, fmt.Errorf("config %s: invalid boolean %q: %w", setting, envVal, err)
	}

	if cliSet && parsed != cliVal {
		r.logConflict(setting, envVal, strconv.FormatBool(cliVal))
	}

	return parsed, nil
}
