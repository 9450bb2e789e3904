package config

import (
	"reflect"
	"strings"
	"testing"
)

type envTestConfig struct {
	Seed    int64    `env:"YATZY_TEST_SEED" envDefault:"123"`
	Players []string `env:"YATZY_TEST_PLAYERS" envDefault:"Alva,Bo"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 123 {
		t.Fatalf("expected default seed 123, got %d", cfg.Seed)
	}
	if !reflect.DeepEqual(cfg.Players, []string{"Alva", "Bo"}) {
		t.Fatalf("expected default players, got %v", cfg.Players)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("YATZY_TEST_SEED", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "   ", want: nil},
		{in: "Alva", want: []string{"Alva"}},
		{in: " Alva , Bo ", want: []string{"Alva", "Bo"}},
		{in: "Alva,,Bo", want: []string{"Alva", "", "Bo"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitList(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
