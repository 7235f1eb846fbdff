package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art"
	"github.com/hariguchi/art/internal/addrconv"
)

func newDumpCmd(s *cliSession) *cobra.Command {
	var routesFile, order string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "walk the table and print every route",
		RunE: func(cmd *cobra.Command, args []string) error {
			if routesFile != "" {
				if _, err := s.loadRoutesFile(routesFile); err != nil {
					return err
				}
			}
			wo := art.WalkBFS
			if order == "dfs" {
				wo = art.WalkDFS
			}
			n := 0
			err := s.tbl.Walk(wo, func(r *art.RouteEntry) bool {
				n++
				fmt.Printf("%s (value=%v)\n", addrconv.FormatPrefix(r.Dest, r.Plen, s.ipv6()), r.Value)
				return true
			})
			if err != nil {
				return err
			}
			fmt.Printf("%d routes\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "pre-load a route file before dumping")
	cmd.Flags().StringVar(&order, "order", "bfs", "traversal order: bfs or dfs")
	return cmd
}
