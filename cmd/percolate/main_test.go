package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolation/montecarlo"
	"github.com/katalvlaran/percolation/percolation"
)

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, errOut, []string{"1", "1"})
	require.NoError(t, err)

	want := "mean                    = 1\n" +
		"stddev                  = NaN\n" +
		"95% confidence interval = [NaN, NaN]\n"
	require.Equal(t, want, out.String())
	require.Empty(t, errOut.String(), "default log level is warn")
}

func TestRun_YAMLOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"3", "4", "--format", "yaml", "--seed", "5", "--strategy", "shuffle"})
	require.NoError(t, err)

	var got montecarlo.Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Equal(t, 3, got.GridSize)
	require.Equal(t, 4, got.Trials)
	require.Equal(t, int64(5), got.Seed)
	require.Equal(t, "shuffle", got.Strategy)
	require.LessOrEqual(t, got.ConfidenceLo, got.Mean)
	require.LessOrEqual(t, got.Mean, got.ConfidenceHi)
}

func TestRun_JSONOutputUndefinedStddev(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"1", "1", "-f", "json"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, 1.0, got["mean"])
	require.Nil(t, got["stddev"])
}

func TestRun_WorkersDoNotChangeResults(t *testing.T) {
	t.Parallel()

	seq, par := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(seq, &bytes.Buffer{}, []string{"8", "10", "--seed", "9"}))
	require.NoError(t, run(par, &bytes.Buffer{}, []string{"8", "10", "--seed", "9", "--workers", "3"}))
	require.Equal(t, seq.String(), par.String())
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	err := run(&bytes.Buffer{}, errOut, []string{"2", "2", "--log-level", "debug", "--log-format", "json"})
	require.NoError(t, err)
	require.Contains(t, errOut.String(), `"msg":"simulation starting"`)
	require.Contains(t, errOut.String(), `"msg":"trial finished"`)
}

func TestRun_InvalidArgument(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"0", "5"}, {"--", "-5", "5"}, {"5", "0"}} {
		err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)
		require.Error(t, err, "args %v", args)
		require.True(t, errors.Is(err, percolation.ErrInvalidArgument), "args %v: %v", args, err)

		var exitErr *ExitError
		require.False(t, errors.As(err, &exitErr), "invalid-argument exits with status 1")
	}
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"MissingArg":      {"5"},
		"ExtraArg":        {"5", "5", "5"},
		"NonInteger":      {"five", "5"},
		"NonIntegerTrial": {"5", "5.5"},
		"BadStrategy":     {"5", "5", "--strategy", "nope"},
		"BadFormat":       {"5", "5", "--format", "xml"},
		"BadLogLevel":     {"5", "5", "--log-level", "loud"},
		"BadLogFormat":    {"5", "5", "--log-format", "xml"},
		"UnknownFlag":     {"5", "5", "--bogus"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "want ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"--help"}))
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "--strategy")
}
