package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/militarytime/pkg/timerange"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_Text(t *testing.T) {
	t.Run("valid ranges", func(t *testing.T) {
		out, err := execute(t, "", "check", "01:12 - 14:32", "00:00-23:59")
		require.NoError(t, err)
		assert.Equal(t, "OK  \"01:12 - 14:32\"\nOK  \"00:00-23:59\"\n", out)
	})

	t.Run("invalid range lists every error", func(t *testing.T) {
		out, err := execute(t, "", "check", "0112 - 14 32", "09:00 - 10:00")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Contains(t, err.Error(), "1 of 2")

		assert.Equal(t, strings.Join([]string{
			`ERR "0112 - 14 32"`,
			`    - [INVALID_START_TIME_FORMAT] Start time must be in HH:MM format`,
			`    - [INVALID_END_TIME_FORMAT] End time must be in HH:MM format`,
			`OK  "09:00 - 10:00"`,
			``,
		}, "\n"), out)
	})
}

func TestCheck_Stdin(t *testing.T) {
	t.Run("reads lines when no args", func(t *testing.T) {
		out, err := execute(t, "01:12 - 14:32\n25:00 - 12:23\n", "check")
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Contains(t, out, `OK  "01:12 - 14:32"`)
		assert.Contains(t, out, `[INVALID_START_HOUR_RANGE] Start time hour must be between 00 and 23`)
	})

	t.Run("stdin flag appends to args", func(t *testing.T) {
		out, err := execute(t, "10:00 - 11:00\n", "check", "--stdin", "08:00 - 09:00")
		require.NoError(t, err)
		assert.Equal(t, "OK  \"08:00 - 09:00\"\nOK  \"10:00 - 11:00\"\n", out)
	})

	t.Run("blank line is an empty range", func(t *testing.T) {
		out, err := execute(t, "\n", "check")
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Contains(t, out, "[EMPTY] Time range cannot be empty")
	})
}

func TestCheck_LeadingDash(t *testing.T) {
	t.Run("after double dash", func(t *testing.T) {
		out, err := execute(t, "", "check", "--", "- 17:23", "-17:23", "-")
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Equal(t, strings.Join([]string{
			`ERR "- 17:23"`,
			`    - [MISSING_START_TIME] Start time is missing`,
			`ERR "-17:23"`,
			`    - [MISSING_START_TIME] Start time is missing`,
			`ERR "-"`,
			`    - [MISSING_TIMES] Time range must contain start and end times`,
			``,
		}, "\n"), out)
	})

	t.Run("from stdin", func(t *testing.T) {
		out, err := execute(t, "- 17:23\n17:23 -\n", "check")
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Contains(t, out, "ERR \"- 17:23\"\n    - [MISSING_START_TIME] Start time is missing\n")
		assert.Contains(t, out, "ERR \"17:23 -\"\n    - [MISSING_END_TIME] End time is missing\n")
	})

	t.Run("without double dash is a flag error", func(t *testing.T) {
		out, err := execute(t, "", "check", "- 17:23")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidRange)
		assert.Empty(t, out)
	})
}

func TestCheck_LongLine(t *testing.T) {
	long := strings.Repeat("1", 200*1024)
	out, err := execute(t, long+"\r\n09:00 - 10:00\n", "check", "-o", "json")
	require.ErrorIs(t, err, ErrInvalidRange)

	var reports []struct {
		Input  string                      `json:"input"`
		Errors []timerange.ValidationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Len(t, reports[0].Input, len(long))
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, timerange.CodeMissingSeparator, reports[0].Errors[0].Code)
	assert.Empty(t, reports[1].Errors)
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a\r\n\nb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, lines)

	lines, err = readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("09:00 - 10:00")))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.False(t, isTerminal(r), "a pipe is not a terminal")
}

func TestCheck_JSON(t *testing.T) {
	out, err := execute(t, "", "check", "-o", "json", "--", "01:12 / 14:32", "- 17:23")
	require.ErrorIs(t, err, ErrInvalidRange)

	var reports []struct {
		Input   string                      `json:"input"`
		IsValid bool                        `json:"isValid"`
		Errors  []timerange.ValidationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, "01:12 / 14:32", reports[0].Input)
	assert.False(t, reports[0].IsValid)
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, timerange.CodeInvalidSeparator, reports[0].Errors[0].Code)

	require.Len(t, reports[1].Errors, 1)
	assert.Equal(t, timerange.CodeMissingStartTime, reports[1].Errors[0].Code)
}

func TestCheck_YAML(t *testing.T) {
	out, err := execute(t, "", "check", "--output", "yaml", "12:23 - 17:23 - 23:11")
	require.ErrorIs(t, err, ErrInvalidRange)

	var reports []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "12:23 - 17:23 - 23:11", reports[0]["input"])
	assert.Equal(t, false, reports[0]["isValid"])

	errs, ok := reports[0]["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, map[string]any{
		"code":    "MULTIPLE_SEPARATOR",
		"type":    "invalid_format",
		"message": "Multiple '-' separator is not allowed",
	}, errs[0])
}

func TestCodes(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "", "codes")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, len(timerange.Codes())+1)
		assert.True(t, strings.HasPrefix(lines[0], "CODE"))
		assert.Contains(t, lines[1], "EMPTY")
		assert.Contains(t, lines[1], "Time range cannot be empty")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "codes", "-o", "json")
		require.NoError(t, err)

		var entries []codeEntry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, len(timerange.Codes()))
		assert.Equal(t, "validation.time_range.invalid_end_minute_range", entries[len(entries)-1].TranslationKey)
	})

	t.Run("rejects args", func(t *testing.T) {
		_, err := execute(t, "", "codes", "extra")
		assert.Error(t, err)
	})
}

func TestRoot_InvalidOutput(t *testing.T) {
	_, err := execute(t, "", "check", "-o", "xml", "01:00 - 02:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
