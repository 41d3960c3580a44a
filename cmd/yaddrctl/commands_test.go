package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v3"
)

func TestCmdFmt(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ipv4", []string{"127", "0", "0", "1"}, "127.0.0.1\n"},
		{"truncation", []string{"300", "0", "0", "1"}, "44.0.0.1\n"},
		{"negative", []string{"-1", "0", "0", "1"}, "255.0.0.1\n"},
		{"padded_short", []string{"10", "1"}, "10.1.0.0\n"},
		{"ipv6", []string{
			"0", "0", "0", "0", "0", "0", "0", "0",
			"0", "0", "0", "0", "0", "0", "0", "1",
		}, "::1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := cmdFmt(&buf, tt.args); err != nil {
				t.Fatalf("cmdFmt(%v) error: %v", tt.args, err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("cmdFmt(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCmdFmt_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no_args", nil},
		{"not_an_integer", []string{"12x", "0", "0", "1"}},
		{"too_many", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9",
			"10", "11", "12", "13", "14", "15", "16", "17"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := cmdFmt(&buf, tt.args)
			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected *usageError, got %T: %v", err, err)
			}
		})
	}
}

func TestCmdResolve_UsageErrors(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	for _, args := range [][]string{nil, {"a", "b"}} {
		err := cmdResolve(ctx, &buf, time.Second, false, args)
		var usageErr *usageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("cmdResolve(%v): expected *usageError, got %T: %v", args, err, err)
		}
	}
}

func TestCmdResolve_EmptyHost(t *testing.T) {
	// 空主机名走回环约定，不触网，可离线验证输出格式
	var buf bytes.Buffer
	err := cmdResolve(context.Background(), &buf, time.Second, false, []string{""})
	if err != nil {
		t.Fatalf("cmdResolve: %v", err)
	}
	if got := buf.String(); got != "127.0.0.1\n" {
		t.Errorf("output = %q, want %q", got, "127.0.0.1\n")
	}
}

func TestCmdCheck_UsageErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		ranges string
		args   []string
	}{
		{"no_host", "10.0.0.0/8", nil},
		{"two_hosts", "10.0.0.0/8", []string{"a", "b"}},
		{"missing_ranges", "", []string{"localhost"}},
		{"bad_range", "10.0.0.0/99", []string{"localhost"}},
		{"reversed_range", "10.0.0.9-10.0.0.1", []string{"localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := cmdCheck(ctx, &buf, time.Second, tt.ranges, tt.args)
			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected *usageError, got %T: %v", err, err)
			}
		})
	}
}

func TestCmdCheck_HitAndMiss(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdCheck(ctx, &buf, time.Second, "127.0.0.0/8", []string{""})
		if err != nil {
			t.Fatalf("cmdCheck: %v", err)
		}
		if got := buf.String(); got != "127.0.0.1: 命中\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("miss_exit_code_1", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdCheck(ctx, &buf, time.Second, "10.0.0.0/8", []string{""})
		var exitErr *exitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected *exitError, got %T: %v", err, err)
		}
		if exitErr.code != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.code)
		}
		if got := buf.String(); got != "127.0.0.1: 未命中\n" {
			t.Errorf("output = %q", got)
		}
	})
}

func TestUsageError(t *testing.T) {
	err := &usageError{msg: "test error"}
	if err.Error() != "test error" {
		t.Errorf("usageError.Error() = %q, want %q", err.Error(), "test error")
	}

	var target *usageError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed for *usageError")
	}
}

func TestIsCLIUsageError(t *testing.T) {
	if !isCLIUsageError(cli.Exit("boom", 3)) {
		t.Error("ExitCoder should be a CLI usage error")
	}
	if !isCLIUsageError(errors.New("flag provided but not defined: -bogus")) {
		t.Error("flag parse error should be a CLI usage error")
	}
	if isCLIUsageError(errors.New("connection refused")) {
		t.Error("ordinary error should not be a CLI usage error")
	}
}

func TestCreateApp(t *testing.T) {
	app := createApp()
	if app.Name != "yaddrctl" {
		t.Errorf("app name = %q", app.Name)
	}

	want := []string{"resolve", "fmt", "check"}
	for _, name := range want {
		found := false
		for _, cmd := range app.Commands {
			if cmd.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing command %q", name)
		}
	}

	if !strings.Contains(app.Version, Version) {
		t.Errorf("version %q should embed %q", app.Version, Version)
	}
}
