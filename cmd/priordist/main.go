// priordist builds a parameter prior from a YAML configuration and
// describes its density.
//
// The configuration is read from the file named on the command line,
// or from stdin. It is a mapping with a functype key plus the
// parameters for that prior, e.g.
//
//	functype: lgauss
//	mu: 1.0
//	sigma: 0.2
package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astromath/go-priors/prior"
)

func main() {
	cfg := readConfig()

	p, err := prior.FromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("functype %s  mean %.6g  sigma %.6g  norm %.6g\n",
		p.FuncType(), p.Mean(), p.Sigma(), p.Normalization())
	fmt.Println()

	// Density table over the profile binning.
	fmt.Printf("%12s %12s %12s\n", "x", "pdf", "log pdf")
	for _, x := range prior.ProfileBins(p) {
		fmt.Printf("%12.6g %12.6g %12.6g\n", x, p.PDF(x), p.LogPDF(x))
	}
}

func readConfig() prior.Config {
	var r io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cfg prior.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
