// Package main is the entry point for the stackplan CLI.
//
// stackplan generates the AWS CloudFormation templates of a Deis cluster:
// it discovers the VPC, places the control, data, router and etcd planes
// into node groups and writes the resulting template.
//
// Commands: generate, plan, vpc, vpc-template, fingerprint, init.
//
// For detailed usage information, run:
//
//	stackplan --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/imamik/stackplan/cmd/stackplan/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
