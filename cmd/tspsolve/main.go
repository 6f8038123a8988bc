// Command tspsolve computes a short closed tour through the cities listed in
// a file and writes it next to the input as "<file>.tour".
//
// Usage:
//
//	tspsolve [-config solver.yaml] [-limit 300s] [-starts 35] [-v] <cities-file>
//
// The input holds whitespace-separated integer triples "id x y". The output
// holds the tour cost on its first line followed by the city indices in
// visiting order. The run stops after the time limit with the best tour
// found so far.
package main

import (
	"os"
	"time"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, time.Now))
}
