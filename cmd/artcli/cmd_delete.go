package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art/internal/addrconv"
)

func newDeleteCmd(s *cliSession) *cobra.Command {
	var routesFile string
	cmd := &cobra.Command{
		Use:   "delete <addr/len>",
		Short: "delete a single prefix, optionally after pre-loading a route file",
		Args:  cobra.ExactArgs(1),
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
			_, ok := s.tbl.Delete(dest[:], plen)
			if !ok {
				fmt.Println("no such route")
				return nil
			}
			fmt.Printf("deleted %s/%d\n", args[0], plen)
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "pre-load a route file before deleting")
	return cmd
}
