package config

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestResolver_String_PrefersEnvAndLogsConflict(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	resolver := NewResolverWithLookup(zap.New(core), mapLookup(map[string]string{"LBI_PROFILE": " release "}))

	val := resolver.String("profile", "LBI_PROFILE", "debug", true, "")

	if val != "release" {
		t.Errorf("expected env value 'release', got %q", val)
	}

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}

	entry := logs.All()[0]
	if entry.Message != "config: conflict for profile" {
		t.Errorf("unexpected log message: %q", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["env"] != "release" {
		t.Errorf("expected env field to be 'release', got %q", fields["env"])
	}
	if fields["cli"] != "debug" {
		t.Errorf("expected cli field to be 'debug', got %q", fields["cli"])
	}
}

func TestResolver_String_FallsBackToCLIThenDefault(t *testing.T) {
	resolver := NewResolverWithLookup(zap.NewNop(), mapLookup(map[string]string{"LBI_PROFILE": "   "}))

	if val := resolver.String("profile", "LBI_PROFILE", "debug", true, "fallback"); val != "debug" {
		t.Errorf("expected cli value 'debug', got %q", val)
	}
	if val := resolver.String("profile", "LBI_PROFILE", "", false, "fallback"); val != "fallback" {
		t.Errorf("expected default value 'fallback', got %q", val)
	}
}

func TestResolver_Bool(t *testing.T) {
	resolver := NewResolverWithLookup(zap.NewNop(), mapLookup(map[string]string{"ON": "true", "BAD": "maybe"}))

	val, err := resolver.Bool("on", "ON", false, false, false)
	if err != nil || !val {
		t.Fatalf("expected true, got %v (%v)", val, err)
	}

	if _, err := resolver.Bool("bad", "BAD", false, false, false); err == nil {
		t.Fatal("expected invalid boolean error")
	}

	val, err = resolver.Bool("unset", "UNSET", true, true, false)
	if err != nil || !val {
		t.Fatalf("expected cli value true, got %v (%v)", val, err)
	}
}

func TestResolver_UsesProcessEnvironment(t *testing.T) {
	t.Setenv("LBI_TEST_TARGET", "linux/amd64")

	resolver := NewResolver(nil)
	if val, ok := resolver.Lookup("LBI_TEST_TARGET"); !ok || val != "linux/amd64" {
		t.Fatalf("expected process env value, got %q (%v)", val, ok)
	}
}
