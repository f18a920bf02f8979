package config

import (
	"reflect"
	"testing"
)

// TestGetEnv ensures set variables win over the default and unset ones
// fall back.
func TestGetEnv(t *testing.T) {
	t.Setenv("TK_TEST_STRING", "targetkart")

	if got := GetEnv("TK_TEST_STRING", "fallback"); got != "targetkart" {
		t.Fatalf("got %q, want targetkart", got)
	}
	if got := GetEnv("TK_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
}

// TestGetEnvAsBool ensures parse failures and unset variables both fall
// back to the default.
func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TK_TEST_BOOL", "true")
	t.Setenv("TK_TEST_BOOL_BAD", "yep")

	if !GetEnvAsBool("TK_TEST_BOOL", false) {
		t.Fatal("got false for a true variable")
	}
	if GetEnvAsBool("TK_TEST_BOOL_BAD", false) {
		t.Fatal("unparseable value did not fall back to default")
	}
	if !GetEnvAsBool("TK_TEST_BOOL_UNSET", true) {
		t.Fatal("unset variable did not fall back to default")
	}
}

// TestGetEnvAsInt ensures numeric parsing with fallback on garbage.
func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TK_TEST_INT", "250")
	t.Setenv("TK_TEST_INT_BAD", "lots")

	if got := GetEnvAsInt("TK_TEST_INT", 500); got != 250 {
		t.Fatalf("got %d, want 250", got)
	}
	if got := GetEnvAsInt("TK_TEST_INT_BAD", 500); got != 500 {
		t.Fatalf("got %d for garbage, want default 500", got)
	}
}

// TestGetEnvAsSlice ensures separator splitting and the unset fallback.
func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TK_TEST_SLICE", "imported,q3")

	got := GetEnvAsSlice("TK_TEST_SLICE", ",", nil)
	if !reflect.DeepEqual(got, []string{"imported", "q3"}) {
		t.Fatalf("got %v, want [imported q3]", got)
	}

	fallback := []string{"localhost:3000"}
	if got := GetEnvAsSlice("TK_TEST_SLICE_UNSET", ",", fallback); !reflect.DeepEqual(got, fallback) {
		t.Fatalf("got %v, want the fallback", got)
	}
}
