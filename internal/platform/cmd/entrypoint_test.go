package cmd

import (
	"context"
	"flag"
	"testing"
)

type testConfig struct {
	Players string `env:"CMD_TEST_PLAYERS" envDefault:"Alva,Bo"`
	Locale  string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_PLAYERS", "Cleo,Dag")
	t.Setenv("CMD_TEST_LOCALE", "sv-SE")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Players, "players", cfgRef.Players, "players")
	fs.StringVar(&cfgRef.Locale, "locale", cfgRef.Locale, "locale")

	if err := ParseArgs(fs, []string{"-players", "Frej"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Players != "Frej" {
		t.Fatalf("expected flag value for players, got %q", cfgRef.Players)
	}
	if cfgRef.Locale != "sv-SE" {
		t.Fatalf("expected env locale, got %q", cfgRef.Locale)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_PLAYERS", "Eir")
	t.Setenv("CMD_TEST_LOCALE", "sv")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfgRef.Players, "players", "", "players")
	fs.StringVar(&cfgRef.Locale, "locale", "", "locale")
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-players", "Gry"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.Players != "Gry" {
		t.Fatalf("expected parsed flag players, got %q", cfgRef.Players)
	}
	if cfgRef.Locale != "sv" {
		t.Fatalf("expected env locale, got %q", cfgRef.Locale)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(nil, "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(nil, ServiceYatzy, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryRunsCommand(t *testing.T) {
	t.Setenv("YATZY_OTEL_ENDPOINT", "")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceYatzy, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !called {
		t.Fatal("expected run function to be called")
	}
}
