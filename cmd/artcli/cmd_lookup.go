package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art/internal/addrconv"
)

func newLookupCmd(s *cliSession) *cobra.Command {
	var routesFile string
	cmd := &cobra.Command{
		Use:   "lookup <addr>",
		Short: "longest-prefix-match lookup for a single address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if routesFile != "" {
				if _, err := s.loadRoutesFile(routesFile); err != nil {
					return err
				}
			}
			ip, err := addrconv.ParseAddr(args[0])
			if err != nil {
				return err
			}
			addr, err := addrconv.ToAddrBytes(ip)
			if err != nil {
				return err
			}
			r := s.tbl.FindMatch(addr[:])
			if r == nil {
				fmt.Println("no route")
				return nil
			}
			fmt.Printf("%s (value=%v)\n", addrconv.FormatPrefix(r.Dest, r.Plen, s.ipv6()), r.Value)
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "pre-load a route file before looking up")
	return cmd
}
