package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/fuzzcompile"
	"github.com/cjdelisle/electorium/textfmt"
	"github.com/cjdelisle/electorium/winner"
)

// cliError wraps a failure with the exit code it should produce,
// keeping main's os.Exit logic a one-line lookup instead of
// re-classifying errors by string content.
type cliError struct {
	exitCode int
	err      error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.exitCode
	}

	return exitMalformedInput
}

func runManual(cmd *cobra.Command, _ []string) error {
	if !manual {
		return cmd.Help()
	}

	log := newLogger(verbose)
	defer func() { _ = log.Sync() }()

	e, err := readElection(cmd, format)
	if err != nil {
		log.Debug("failed to read election", zap.Error(err))

		return &cliError{exitCode: exitMalformedInput, err: err}
	}

	out, err := resolveRecovering(e, log)
	if err != nil {
		return err
	}

	if out.HasWinner {
		fmt.Fprintln(cmd.OutOrStdout(), out.Winner.String())
	} else {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func readElection(cmd *cobra.Command, format string) (election.Election, error) {
	switch format {
	case "text":
		return textfmt.Parse(cmd.InOrStdin())
	case "binary":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return election.Election{}, err
		}

		return fuzzcompile.Decompile(data)
	default:
		return election.Election{}, fmt.Errorf("electorium: unrecognized --format %q (want \"text\" or \"binary\")", format)
	}
}

// resolveRecovering runs winner.Resolve, turning an
// *election.InvariantViolation panic into the dedicated exit code
// instead of crashing the process, so a broken invariant is reported
// with its own exit code rather than a bare Go panic trace. Malformed
// input never reaches this path; it is reported as exitMalformedInput.
func resolveRecovering(e election.Election, log *zap.Logger) (out winner.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			iv, ok := r.(*election.InvariantViolation)
			if !ok {
				panic(r)
			}
			log.Error("internal invariant violated", zap.String("stage", iv.Stage), zap.String("message", iv.Message))
			err = &cliError{exitCode: exitInvariantBroken, err: iv}
		}
	}()

	out, resolveErr := winner.Resolve(e)
	if resolveErr != nil {
		return winner.Outcome{}, &cliError{exitCode: exitMalformedInput, err: resolveErr}
	}

	return out, nil
}
