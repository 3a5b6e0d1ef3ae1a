package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/militarytime/pkg/timerange"
)

type codeEntry struct {
	Code           timerange.Code `json:"code" yaml:"code"`
	Type           timerange.Kind `json:"type" yaml:"type"`
	Message        string         `json:"message" yaml:"message"`
	TranslationKey string         `json:"translation_key" yaml:"translation_key"`
}

func newCodesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List every diagnostic code with its type and message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes := timerange.Codes()
			entries := make([]codeEntry, 0, len(codes))
			for _, c := range codes {
				entries = append(entries, codeEntry{
					Code:           c,
					Type:           c.Kind(),
					Message:        c.Message(),
					TranslationKey: c.TranslationKey(),
				})
			}

			out := cmd.OutOrStdout()
			if root.output != outputText {
				return writeStructured(out, root.output, entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tTYPE\tMESSAGE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Code, e.Type, e.Message)
			}
			return tw.Flush()
		},
	}
}
