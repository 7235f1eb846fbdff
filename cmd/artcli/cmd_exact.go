package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art/internal/addrconv"
)

func newExactCmd(s *cliSession) *cobra.Command {
	var routesFile string
	cmd := &cobra.Command{
		Use:   "exact <addr/len>",
		Short: "exact-match lookup; falls back to the default route on a miss",
		Long: "Exact-match lookup. On a true miss this preserves the original " +
			"engine's documented quirk: it returns the table's default route " +
			"rather than reporting \"not found\" — compare the printed " +
			"prefix length against the one you asked for to tell them apart.",
		Args: cobra.ExactArgs(1),
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
			r := s.tbl.FindExactMatch(dest[:], plen)
			if r == nil {
				fmt.Println("no route (not even a default)")
				return nil
			}
			fmt.Printf("%s (value=%v)\n", addrconv.FormatPrefix(r.Dest, r.Plen, s.ipv6()), r.Value)
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "pre-load a route file before looking up")
	return cmd
}
