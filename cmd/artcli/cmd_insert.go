package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art/internal/addrconv"
)

func newInsertCmd(s *cliSession) *cobra.Command {
	var routesFile string
	cmd := &cobra.Command{
		Use:   "insert <addr/len> [value]",
		Short: "insert a single prefix, optionally after pre-loading a route file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if routesFile != "" {
				if _, err := s.loadRoutesFile(routesFile); err != nil {
					return err
				}
			}
			prefix, err := addrconv.ParsePrefix(args[0])
			if err != nil {
				return err
			}
			dest, plen, err := addrconv.ToDest(prefix)
			if err != nil {
				return err
			}
			var value any
			if len(args) == 2 {
				value = args[1]
			}
			e, err := s.tbl.NewRoute(dest[:], plen, value)
			if err != nil {
				return err
			}
			got, err := s.tbl.Insert(e)
			if err != nil {
				return err
			}
			if got != e {
				fmt.Printf("already present: %s/%d (value=%v)\n", args[0], plen, got.Value)
				return nil
			}
			fmt.Printf("inserted %s/%d\n", args[0], plen)
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "pre-load a route file before inserting")
	return cmd
}
