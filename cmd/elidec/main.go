package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Diagnostics and logs go to stderr; dumps go to stdout

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
