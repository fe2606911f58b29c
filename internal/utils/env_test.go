package utils

import (
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		if got := GetEnv("ROOMLINE_TEST_UNSET", "fallback", nil); got != "fallback" {
			t.Errorf("expected fallback, got %q", got)
		}
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("ROOMLINE_TEST_SET", "value")
		if got := GetEnv("ROOMLINE_TEST_SET", "fallback", nil); got != "value" {
			t.Errorf("expected value, got %q", got)
		}
	})
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		if got := GetEnvAsInt("ROOMLINE_TEST_UNSET_INT", 42, nil); got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("ROOMLINE_TEST_SET_INT", "7")
		if got := GetEnvAsInt("ROOMLINE_TEST_SET_INT", 42, nil); got != 7 {
			t.Errorf("expected 7, got %d", got)
		}
	})

	t.Run("Unparseable", func(t *testing.T) {
		t.Setenv("ROOMLINE_TEST_BAD_INT", "nope")
		if got := GetEnvAsInt("ROOMLINE_TEST_BAD_INT", 42, nil); got != 42 {
			t.Errorf("expected default 42 for bad int, got %d", got)
		}
	})
}
