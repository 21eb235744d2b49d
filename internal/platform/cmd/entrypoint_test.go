package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Address, "address", cfgRef.Address, "address")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfgRef.Address)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	var cfg *testConfig
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryAndOptionsShutsDownAfterRun(t *testing.T) {
	var steps []string
	runErr := errors.New("run failed")
	err := RunWithTelemetryAndOptions(context.Background(), ServiceWeb, RunOptions{
		Setup: func(_ context.Context, service string) (func(context.Context) error, error) {
			steps = append(steps, "setup:"+service)
			return func(context.Context) error {
				steps = append(steps, "shutdown")
				return nil
			}, nil
		},
	}, func(context.Context) error {
		steps = append(steps, "run")
		return runErr
	})
	if !errors.Is(err, runErr) {
		t.Fatalf("err = %v, want %v", err, runErr)
	}
	want := []string{"setup:web", "run", "shutdown"}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("steps = %v, want %v", steps, want)
		}
	}
}

func TestRunWithTelemetryAndOptionsReturnsSetupError(t *testing.T) {
	setupErr := errors.New("setup failed")
	ran := false
	err := RunWithTelemetryAndOptions(context.Background(), ServiceWeb, RunOptions{
		Setup: func(context.Context, string) (func(context.Context) error, error) {
			return nil, setupErr
		},
	}, func(context.Context) error {
		ran = true
		return nil
	})
	if !errors.Is(err, setupErr) {
		t.Fatalf("err = %v, want %v", err, setupErr)
	}
	if ran {
		t.Fatal("expected run to be skipped after setup failure")
	}
}
