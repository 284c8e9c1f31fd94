package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli"

	"github.com/christian-armstrong25/dpllsat/internal/dimacs"
	"github.com/christian-armstrong25/dpllsat/internal/report"
	"github.com/christian-armstrong25/dpllsat/internal/solver"
)

func printProblemStatistics(meta dimacs.ProblemMeta, numClauses int) {
	fmt.Fprintf(os.Stderr, "c ============================[ Problem Statistics ]=============================\n")
	fmt.Fprintf(os.Stderr, "c |  Declared variables:  %12d                                        |\n", meta.NumVars)
	fmt.Fprintf(os.Stderr, "c |  Declared clauses:    %12d                                        |\n", meta.NumClauses)
	fmt.Fprintf(os.Stderr, "c |  Parsed clauses:      %12d                                        |\n", numClauses)
	fmt.Fprintf(os.Stderr, "c ================================================================================\n")
}

func printStatistics(stats solver.Stats, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "c ================================================================================\n")
	fmt.Fprintf(os.Stderr, "c decisions: %12d\n", stats.Decisions)
	fmt.Fprintf(os.Stderr, "c propagations: %12d\n", stats.Propagations)
	fmt.Fprintf(os.Stderr, "c wall time: %12f\n", elapsed.Seconds())
}

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "dump internal-safety-rail diagnostics with pp",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "print problem and search statistics to stderr",
		},
		cli.DurationFlag{
			Name:  "timeout,t",
			Usage: "abort the solve with a 'solve timed out' error after this duration (0 disables)",
		},
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowAppHelp(c)
		return cli.NewExitError("", 1)
	}

	debug := c.Bool("debug")
	verbose := c.Bool("verbose")
	timeout := c.Duration("timeout")

	raw, meta, err := dimacs.ParseFile(path, dimacs.Options{})
	if err != nil {
		return err
	}

	cfg := solver.NewConfig()
	cfg.Debug = debug
	s := solver.New(raw, cfg)

	if verbose {
		printProblemStatistics(meta, len(raw))
	}

	start := time.Now()
	res, indeterminate := solveWithTimeout(s, timeout)
	elapsed := time.Since(start)

	if indeterminate {
		fmt.Fprintln(os.Stderr, "c TIMEOUT")
		if debug {
			pp.Println("solve timed out before completion", path)
		}
		return cli.NewExitError("Error occurred: solve timed out", 1)
	}

	if verbose {
		printStatistics(res.Stats, elapsed)
	}

	instance := filepath.Base(path)
	rep := report.Build(instance, elapsed.Seconds(), res.Sat, res.Model, res.Stats.Decisions, res.Stats.Propagations)
	line, err := rep.MarshalLine()
	if err != nil {
		return err
	}
	os.Stdout.Write(line)
	return nil
}

// solveWithTimeout runs the solve on a background goroutine so a
// timeout can be enforced at the CLI boundary; the solver itself has
// no notion of context or cancellation.
func solveWithTimeout(s *solver.Solver, timeout time.Duration) (solver.Result, bool) {
	if timeout <= 0 {
		return s.Solve(), false
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan solver.Result, 1)
	go func() {
		done <- s.Solve()
	}()

	select {
	case res := <-done:
		return res, false
	case <-ctx.Done():
		return solver.Result{}, true
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "dpllsat"
	app.Usage = "a DPLL SAT solver"
	app.ArgsUsage = "<path-to-cnf>"
	app.Writer = os.Stderr
	app.Flags = flags()
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintf(os.Stderr, "Error occurred: %s\n", msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error occurred: %s\n", err)
		os.Exit(1)
	}
}
