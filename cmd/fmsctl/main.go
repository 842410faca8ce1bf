package main

import (
	"os"
	_ "time/tzdata" // zoneinfo for minimal images

	"fms-dashboard/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
