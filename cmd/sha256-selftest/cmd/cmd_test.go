package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/backkem/sha256/pkg/selftest"
	"github.com/backkem/sha256/pkg/sha256"
)

func withVectors(v ...selftest.Vector) option {
	return func(c *command) {
		c.vectors = v
	}
}

func TestSelfTestCmd_Pass(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(WithArgs(), WithOutput(&out)).Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, out.String())
	}
	if ExitCode(err) != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode(err))
	}

	got := out.String()
	if !strings.Contains(got, "SHA-256 test: SUCCEEDED") {
		t.Errorf("output missing success line:\n%s", got)
	}
	if !strings.Contains(got, selftest.AbcVector().Expected) {
		t.Errorf("output missing abc digest:\n%s", got)
	}
}

func TestSelfTestCmd_ChunkedVerbose(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(WithArgs("--chunk-size", "3", "-v"), WithOutput(&out)).Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "selftest") {
		t.Errorf("verbose run produced no selftest log lines:\n%s", out.String())
	}
}

func TestSelfTestCmd_Fail(t *testing.T) {
	bad := selftest.AbcVector()
	bad.Expected = strings.Repeat("ff", 32)

	var out bytes.Buffer
	err := newCommand(WithArgs(), WithOutput(&out), withVectors(bad)).Execute()
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("Execute error = %v, want ErrFailed", err)
	}
	if !errors.Is(err, selftest.ErrMismatch) {
		t.Errorf("Execute error = %v, want it to wrap selftest.ErrMismatch", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
	if !strings.Contains(out.String(), "SHA-256 test: FAILED") {
		t.Errorf("output missing failure line:\n%s", out.String())
	}
}

func TestSelfTestCmd_InvalidVector(t *testing.T) {
	bad := selftest.AbcVector()
	bad.Expected = "not hex"

	var out bytes.Buffer
	err := newCommand(WithArgs(), WithOutput(&out), withVectors(bad)).Execute()
	if !errors.Is(err, ErrFailed) || !errors.Is(err, sha256.ErrInvalidDigest) {
		t.Fatalf("Execute error = %v, want ErrFailed wrapping sha256.ErrInvalidDigest", err)
	}
}

func TestSelfTestCmd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative_chunk", []string{"--chunk-size", "-1"}},
		{"unknown_flag", []string{"--nope"}},
		{"extra_args", []string{"abc"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newCommand(WithArgs(tc.args...), WithOutput(&out)).Execute()
			if err == nil {
				t.Fatal("Execute succeeded, want error")
			}
			if ExitCode(err) != 1 {
				t.Errorf("ExitCode = %d, want 1", ExitCode(err))
			}
		})
	}
}
