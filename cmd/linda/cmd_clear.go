package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

func (a *app) cmdClear(args []string) int {
	flags := flag.NewFlagSet("clear", flag.ContinueOnError)
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	counts, err := a.sp.Ls("")
	if err != nil {
		return reportErr(*jsonOut, "clear", err)
	}

	if len(counts) > 0 && !*yes && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintf(os.Stderr, "linda: clear will remove %d name(s); continue? [y/N] ", len(counts))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Fprintln(os.Stderr, "linda: clear aborted")
			return 1
		}
	}

	if err := a.sp.Clear(); err != nil {
		return reportErr(*jsonOut, "clear", err)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"ok": true, "cleared": len(counts)})
	} else {
		fmt.Printf("cleared %d name(s)\n", len(counts))
	}
	return 0
}
