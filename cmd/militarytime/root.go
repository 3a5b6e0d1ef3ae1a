package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// ErrInvalidRange is returned by check when at least one input is invalid.
var ErrInvalidRange = errors.New("invalid time range")

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var validOutputFormats = []string{outputText, outputJSON, outputYAML}

type rootOptions struct {
	output string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "militarytime",
		Short:         "Validate 24-hour time ranges",
		Long:          `Validate "HH:MM - HH:MM" time ranges and report every problem at once, from the command line or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(validOutputFormats, opts.output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", opts.output, validOutputFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")

	cmd.AddCommand(
		newCheckCmd(opts),
		newCodesCmd(opts),
		newServeCmd(),
	)

	return cmd
}
