package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art/internal/stats"
)

func newValidateCmd(s *cliSession) *cobra.Command {
	var routesFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "recompute structural counters and compare them against the stored ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if routesFile != "" {
				if _, err := s.loadRoutesFile(routesFile); err != nil {
					return err
				}
			}
			r, err := stats.Gather(s.tbl, s.cfg.Table.Compressed)
			if err != nil {
				return err
			}
			fmt.Print(r.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "pre-load a route file before validating")
	return cmd
}
