// Command dprim computes minimum spanning trees of dense weighted graphs,
// either sequentially or with a group of cooperating Prim workers.
//
// Usage:
//
//	dprim run  [-workers P] [-transport local|rpc] [-method distributed|prim|kruskal]
//	           [-strict] [-edges] [-profile cpu|mem] input [output]
//	dprim gen  -n N [-density d] [-seed s] [-max w] output
//	dprim hub  -addr host:port -workers P
//	dprim join -addr host:port -rank R [-workers P] [input] [output]
//
// Input and output files hold N lines of N whitespace-separated non-negative
// integers; 0 means "no edge".
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: dprim <command> [flags] [args]

commands:
  run   compute the MST of an adjacency-matrix file
  gen   write a random connected graph
  hub   serve a collective group for remote workers
  join  run one remote worker against a hub
`

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "run":
		err = cmdRun(ctx, args)
	case "gen":
		err = cmdGen(args)
	case "hub":
		err = cmdHub(ctx, args)
	case "join":
		err = cmdJoin(ctx, args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "dprim: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Printf("[ERROR] %v", err)
		stop()
		os.Exit(1)
	}
}
