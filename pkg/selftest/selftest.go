// Package selftest runs known-answer tests against the SHA-256 engine.
package selftest

import (
	"errors"
	"fmt"

	"github.com/backkem/sha256/pkg/sha256"
	"github.com/hashicorp/go-multierror"
	"github.com/pion/logging"
)

// Self-test errors.
var (
	ErrNoVectors = errors.New("selftest: no vectors to run")
	ErrMismatch  = errors.New("selftest: digest mismatch")
)

// Config configures a self-test run.
type Config struct {
	// Vectors are the known-answer tests to run.
	// If nil, DefaultVectors is used.
	Vectors []Vector

	// ChunkSize splits each message into Update calls of this many bytes.
	// Zero or negative feeds the whole message in one call.
	ChunkSize int

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Result is the outcome of a single vector.
type Result struct {
	Vector string
	Got    sha256.Digest
	Want   sha256.Digest
	Pass   bool
}

// Report collects the results of a run, in vector order.
type Report struct {
	Results []Result
}

// Passed reports whether every vector matched.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Pass {
			return false
		}
	}
	return len(r.Results) > 0
}

// Run hashes every vector and compares it to the expected digest.
// All vectors are run even after a failure. The returned error wraps
// ErrMismatch once per failing vector; a vector whose expected digest
// cannot be parsed fails with sha256.ErrInvalidDigest.
func Run(config Config) (*Report, error) {
	vectors := config.Vectors
	if vectors == nil {
		vectors = DefaultVectors()
	}
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	var log logging.LeveledLogger
	if config.LoggerFactory != nil {
		log = config.LoggerFactory.NewLogger("selftest")
	}

	report := &Report{Results: make([]Result, 0, len(vectors))}
	var result *multierror.Error

	for _, v := range vectors {
		want, err := sha256.ParseDigest(v.Expected)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", v.Name, err))
			report.Results = append(report.Results, Result{Vector: v.Name})
			continue
		}

		got, err := hashChunked(v.Message, config.ChunkSize)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", v.Name, err))
			report.Results = append(report.Results, Result{Vector: v.Name, Want: want})
			continue
		}

		res := Result{Vector: v.Name, Got: got, Want: want, Pass: got.Equal(want)}
		report.Results = append(report.Results, res)

		if !res.Pass {
			if log != nil {
				log.Errorf("%s: got %s want %s", v.Name, got, want)
			}
			result = multierror.Append(result, fmt.Errorf("%w: %s: got %s want %s", ErrMismatch, v.Name, got, want))
			continue
		}
		if log != nil {
			log.Debugf("%s: %d bytes ok", v.Name, len(v.Message))
		}
	}

	if log != nil {
		log.Infof("ran %d vectors, passed=%v", len(report.Results), report.Passed())
	}

	return report, result.ErrorOrNil()
}

func hashChunked(message []byte, chunkSize int) (sha256.Digest, error) {
	if chunkSize <= 0 {
		chunkSize = len(message)
	}

	s := sha256.Initialize()
	for len(message) > 0 {
		n := chunkSize
		if n > len(message) {
			n = len(message)
		}
		if err := s.Update(message[:n]); err != nil {
			return sha256.Digest{}, err
		}
		message = message[n:]
	}
	return s.Finalize()
}
