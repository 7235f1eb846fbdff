package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadCmd(s *cliSession) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "load routes from a text file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.loadRoutesFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%d lines, %d inserted, %d duplicate, %d skipped\n",
				st.Lines, st.Inserted, st.Duplicate, st.Skipped)
			return nil
		},
	}
}
