package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

func (a *app) cmdLs(args []string) int {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	pattern := ""
	if flags.NArg() > 0 {
		pattern = flags.Arg(0)
	}

	counts, err := a.sp.Ls(pattern)
	if err != nil {
		return reportErr(*jsonOut, "ls", err)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"ok": true, "counts": counts})
		return 0
	}

	if len(counts) == 0 {
		fmt.Println("(empty)")
		return 0
	}
	for _, c := range counts {
		if c.Expiry != 0 {
			fmt.Printf("%d %s (expires %s)\n", c.N, c.Name, humanize.Time(time.Unix(c.Expiry, 0)))
		} else {
			fmt.Printf("%d %s\n", c.N, c.Name)
		}
	}
	return 0
}
