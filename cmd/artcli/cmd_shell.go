package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/hariguchi/art"
	"github.com/hariguchi/art/internal/addrconv"
	"github.com/hariguchi/art/internal/stats"
)

// newShellCmd builds the interactive REPL that replaces the original's
// menu-driven harness (lkupTest.c): one live table, commands typed at a
// prompt instead of numbered menu selections.
func newShellCmd(s *cliSession) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "interactive REPL: load/insert/delete/lookup/exact/dump/validate/help/exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(s)
		},
	}
}

func runShell(s *cliSession) error {
	fmt.Println("art shell. AddrBits:", s.cfg.Table.AddrBits, "Compressed:", s.cfg.Table.Compressed)
	fmt.Println("commands: load <file> | insert <addr/len> [value] | delete <addr/len> | lookup <addr> | exact <addr/len> | dump [bfs|dfs] | validate | help | exit")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("art> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("aborted")
				continue
			}
			return nil
		}
		line.AppendHistory(input)

		fields := strings.Fields(strings.TrimSpace(input))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return nil

		case "help":
			fmt.Println("load <file> | insert <addr/len> [value] | delete <addr/len> | lookup <addr> | exact <addr/len> | dump [bfs|dfs] | validate | help | exit")

		case "load":
			if len(fields) < 2 {
				fmt.Println("usage: load <file>")
				continue
			}
			st, err := s.loadRoutesFile(fields[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("%d lines, %d inserted, %d duplicate, %d skipped\n", st.Lines, st.Inserted, st.Duplicate, st.Skipped)

		case "insert":
			if len(fields) < 2 {
				fmt.Println("usage: insert <addr/len> [value]")
				continue
			}
			shellInsert(s, fields[1:])

		case "delete":
			if len(fields) < 2 {
				fmt.Println("usage: delete <addr/len>")
				continue
			}
			shellDelete(s, fields[1])

		case "lookup":
			if len(fields) < 2 {
				fmt.Println("usage: lookup <addr>")
				continue
			}
			shellLookup(s, fields[1])

		case "exact":
			if len(fields) < 2 {
				fmt.Println("usage: exact <addr/len>")
				continue
			}
			shellExact(s, fields[1])

		case "dump":
			order := "bfs"
			if len(fields) > 1 {
				order = fields[1]
			}
			shellDump(s, order)

		case "validate":
			r, err := stats.Gather(s.tbl, s.cfg.Table.Compressed)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Print(r.String())

		default:
			fmt.Printf("unknown command %q; type help\n", fields[0])
		}
	}
}

func shellInsert(s *cliSession, args []string) {
	prefix, err := addrconv.ParsePrefix(args[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dest, plen, err := addrconv.ToDest(prefix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var value any
	if len(args) > 1 {
		value = strings.Join(args[1:], " ")
	}
	e, err := s.tbl.NewRoute(dest[:], plen, value)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	got, err := s.tbl.Insert(e)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if got != e {
		fmt.Printf("already present (value=%v)\n", got.Value)
		return
	}
	fmt.Println("ok")
}

func shellDelete(s *cliSession, arg string) {
	prefix, err := addrconv.ParsePrefix(arg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dest, plen, err := addrconv.ToDest(prefix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, ok := s.tbl.Delete(dest[:], plen); !ok {
		fmt.Println("no such route")
		return
	}
	fmt.Println("ok")
}

func shellLookup(s *cliSession, arg string) {
	ip, err := addrconv.ParseAddr(arg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	addr, err := addrconv.ToAddrBytes(ip)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r := s.tbl.FindMatch(addr[:])
	if r == nil {
		fmt.Println("no route")
		return
	}
	fmt.Printf("%s (value=%v)\n", addrconv.FormatPrefix(r.Dest, r.Plen, s.ipv6()), r.Value)
}

func shellExact(s *cliSession, arg string) {
	prefix, err := addrconv.ParsePrefix(arg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dest, plen, err := addrconv.ToDest(prefix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r := s.tbl.FindExactMatch(dest[:], plen)
	if r == nil {
		fmt.Println("no route (not even a default)")
		return
	}
	fmt.Printf("%s (value=%v)\n", addrconv.FormatPrefix(r.Dest, r.Plen, s.ipv6()), r.Value)
}

func shellDump(s *cliSession, order string) {
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
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d routes\n", n)
}
