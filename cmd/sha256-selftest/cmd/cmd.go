// Package cmd implements the sha256-selftest command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backkem/sha256/pkg/selftest"
	"github.com/pion/logging"
	"github.com/spf13/cobra"
)

const (
	optionNameExtended  = "extended"
	optionNameChunkSize = "chunk-size"
	optionNameVerbose   = "verbose"
)

// ErrFailed is returned when at least one vector did not match.
var ErrFailed = errors.New("sha256-selftest: digest mismatch")

type command struct {
	root *cobra.Command
	args []string
	out  io.Writer
	errw io.Writer

	// vectors replaces the built-in vector sets when non-nil.
	vectors []selftest.Vector
}

type option func(*command)

// WithArgs overrides the command line arguments (os.Args[1:] by default).
func WithArgs(a ...string) option {
	return func(c *command) {
		c.args = append([]string{}, a...)
	}
}

// WithOutput redirects both standard output and the logger.
func WithOutput(w io.Writer) option {
	return func(c *command) {
		c.out = w
		c.errw = w
	}
}

func newCommand(opts ...option) *command {
	c := &command{
		out:  os.Stdout,
		errw: os.Stderr,
	}
	for _, o := range opts {
		o(c)
	}

	c.root = &cobra.Command{
		Use:           "sha256-selftest",
		Short:         "Run SHA-256 known-answer tests",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          c.run,
	}
	c.root.SetOut(c.out)
	c.root.SetErr(c.errw)
	if c.args != nil {
		c.root.SetArgs(c.args)
	}

	c.root.Flags().Bool(optionNameExtended, false, "also run the one million 'a' vector")
	c.root.Flags().Int(optionNameChunkSize, 0, "feed messages in chunks of this many bytes (0 = whole message)")
	c.root.Flags().BoolP(optionNameVerbose, "v", false, "log every vector")

	return c
}

func (c *command) run(cmd *cobra.Command, _ []string) error {
	extended, err := cmd.Flags().GetBool(optionNameExtended)
	if err != nil {
		return err
	}
	chunkSize, err := cmd.Flags().GetInt(optionNameChunkSize)
	if err != nil {
		return err
	}
	if chunkSize < 0 {
		return fmt.Errorf("--%s must not be negative, got %d", optionNameChunkSize, chunkSize)
	}
	verbose, err := cmd.Flags().GetBool(optionNameVerbose)
	if err != nil {
		return err
	}

	// PION_LOG_* environment variables still apply; --verbose only raises the default.
	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.Writer = c.errw
	if verbose {
		loggerFactory.DefaultLogLevel = logging.LogLevelDebug
	}

	vectors := selftest.DefaultVectors()
	if extended {
		vectors = selftest.ExtendedVectors()
	}
	if c.vectors != nil {
		vectors = c.vectors
	}

	report, runErr := selftest.Run(selftest.Config{
		Vectors:       vectors,
		ChunkSize:     chunkSize,
		LoggerFactory: loggerFactory,
	})
	if report == nil {
		return runErr
	}

	for _, res := range report.Results {
		status := "ok"
		if !res.Pass {
			status = "FAIL"
		}
		cmd.Printf("%-22s %s\n", res.Vector, status)
		cmd.Printf("  got:  %s\n", res.Got)
		cmd.Printf("  want: %s\n", res.Want)
	}

	if !report.Passed() {
		cmd.Println("SHA-256 test: FAILED")
		return fmt.Errorf("%w: %w", ErrFailed, runErr)
	}
	cmd.Println("SHA-256 test: SUCCEEDED")
	return nil
}

// Execute runs the command with the process arguments.
func (c *command) Execute() error {
	return c.root.Execute()
}

// Execute parses command line arguments and runs the self-test.
func Execute() error {
	return newCommand().Execute()
}

// ExitCode maps the result of Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
