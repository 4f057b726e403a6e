// Command hashgen generates the per-family command units of package plugin.
//
// For every compiled-in algorithm it hashes digest.TestVector once and bakes
// the result into the command's examples together with a regression test that
// recomputes it. Run it through go generate in the plugin directory with every
// family enabled.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"xdao.co/hashes/algorithm"
	"xdao.co/hashes/cidutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("hashgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", ".", "directory of package plugin")
	check := fs.Bool("check", false, "fail if generated files are out of date instead of writing them")
	quiet := fs.BoolP("quiet", "q", false, "do not print the manifest")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "usage: hashgen [--out dir] [--check]")
		return 2
	}

	fams, err := buildFamilies(algorithm.List(algorithm.ClassAny), algorithm.AllFamilies())
	if err != nil {
		fmt.Fprintf(stderr, "hashgen: %v\n", err)
		return 1
	}
	files, err := render(fams)
	if err != nil {
		fmt.Fprintf(stderr, "hashgen: %v\n", err)
		return 1
	}
	stale, err := write(*out, files, *check)
	if err != nil {
		fmt.Fprintf(stderr, "hashgen: %v\n", err)
		return 1
	}

	if *check {
		for _, name := range stale {
			fmt.Fprintf(stderr, "hashgen: %s is out of date\n", filepath.Join(*out, name))
		}
		if len(stale) > 0 {
			return 1
		}
		return 0
	}
	if !*quiet {
		for _, f := range files {
			fmt.Fprintf(stdout, "%s  %s\n", cidutil.CIDv1RawSHA256(f.Body), f.Name)
		}
	}
	return 0
}
