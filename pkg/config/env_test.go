package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := GetEnvString("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnvString() = %q, want value", got)
	}
	if got := GetEnvString("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString() = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")

	if got := GetEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt() = %d, want 42", got)
	}
	if got := GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt() with bad value = %d, want default 7", got)
	}
	if got := GetEnvInt("TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("GetEnvInt() unset = %d, want default 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"0", false},
		{"false", false},
		{"yes", false}, // invalid, falls back to default false
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := GetEnvBool("TEST_BOOL", false); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_DURATION_BAD", "soon")

	if got := GetEnvDuration("TEST_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration() = %v, want 90s", got)
	}
	if got := GetEnvDuration("TEST_DURATION_BAD", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration() with bad value = %v, want default 1s", got)
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "a, b ,,c")
	got := GetEnvStringList("TEST_LIST", []string{"x"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("GetEnvStringList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetEnvStringList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := GetEnvStringList("TEST_LIST_UNSET", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Errorf("GetEnvStringList() unset = %v, want [x]", got)
	}
}

func TestValidateDurations(t *testing.T) {
	if err := ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("ValidatePositiveDuration(1s) = %v", err)
	}
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("ValidatePositiveDuration(0) = nil, want error")
	}

	if err := ValidateDurationRange(30*time.Second, time.Second, time.Minute); err != nil {
		t.Errorf("ValidateDurationRange(in range) = %v", err)
	}
	if err := ValidateDurationRange(2*time.Minute, time.Second, time.Minute); err == nil {
		t.Error("ValidateDurationRange(above max) = nil, want error")
	}
	if err := ValidateDurationRange(time.Second, time.Minute, time.Second); err == nil {
		t.Error("ValidateDurationRange(min > max) = nil, want error")
	}

	if err := ValidateNonNegativeDuration(0); err != nil {
		t.Errorf("ValidateNonNegativeDuration(0) = %v", err)
	}
	if err := ValidateNonNegativeDuration(-time.Second); err == nil {
		t.Error("ValidateNonNegativeDuration(-1s) = nil, want error")
	}
}
