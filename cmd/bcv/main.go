// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"
	"github.com/mlnoga/bcv/internal/batch"
	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/render"
	"github.com/mlnoga/bcv/internal/repl"
	"github.com/mlnoga/bcv/internal/rest"
	"github.com/mlnoga/bcv/internal/starcolor"
	"github.com/mlnoga/bcv/internal/table"
)

const version = "0.3.1"

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

var logTo    = flag.String("log", "", "also save log output to `file`")
var out      = flag.String("out", "plots", "write charts to `directory`")
var dense    = flag.Int("dense", 400, "spline evaluation points per chart")
var samples  = flag.Int("samples", 1000, "random draws for the consistency check")
var httpAddr = flag.String("http", "", "listen `address` for serve, e.g. :8080 (default)")
var clamp    = flag.Bool("clamp", false, "clamp out of domain inputs to the calibrated bounds instead of rejecting them")

func main() {
	logWriter:=io.Writer(os.Stdout)
	start:=time.Now()
	flag.Usage=func(){
	    fmt.Fprintf(logWriter, `bcv Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (temp|logt|bv|teff|info|check|plot|batch|repl|serve|version|legal) (value0 ... valuen | file0 ... filen)

Commands:
  temp    Bolometric correction for effective temperatures in Kelvin
  logt    Bolometric correction for base-10 logarithmic temperatures
  bv      Bolometric correction for B-V color indices
  teff    Temperature estimate for B-V color indices
  info    Show calibrated domain bounds and sample count
  check   Cross-validate the fitted axes against each other
  plot    Render calibration charts and the B-V color strip
  batch   Process files of lookup commands line by line
  repl    Interactive console
  serve   Serve the HTTP/JSON API
  legal   Show license and attribution information
  version Show version information

Flags:
`, os.Args[0])
	    flag.PrintDefaults()
	}
	flag.Parse()

	// Log to a file in addition to stdout, if selected. Unbuffered so output
	// survives the early exits below.
	if *logTo!="" {
		f, err:=os.Create(*logTo)
		if err!=nil {
			fmt.Fprintf(os.Stderr, "Unable to open logfile '%s': %s\n", *logTo, err)
			os.Exit(1)
		}
		defer f.Close()
		logWriter=io.MultiWriter(os.Stdout, f)
	}

	// Enable CPU profiling if flagged
	if *cpuprofile!="" {
		f, err:=os.Create(*cpuprofile)
		if err!=nil { fatalf(logWriter, "Could not create CPU profile: %s\n", err) }
		defer f.Close()
		if err:=pprof.StartCPUProfile(f); err!=nil { fatalf(logWriter, "Could not start CPU profile: %s\n", err) }
		defer pprof.StopCPUProfile()
	}

	args:=flag.Args()
	if len(args)<1 {
		flag.Usage()
		os.Exit(2)
	}

	// Load the calibration and fit the engine once; every command shares them
	tbl, err:=table.New()
	if err!=nil { fatalf(logWriter, "Error loading calibration data: %s\n", err) }
	policy:=bc.PolicyReject
	if *clamp { policy=bc.PolicyClamp }
	cor, err:=bc.New(tbl, policy)
	if err!=nil { fatalf(logWriter, "Error fitting splines: %s\n", err) }
	pal, err:=starcolor.NewPalette()
	if err!=nil { fatalf(logWriter, "Error fitting star colors: %s\n", err) }

	timed:=false
	switch args[0] {
	case "temp", "logt", "bv", "teff":
		values, err:=parseValues(args[1:])
		if err!=nil { fatalf(logWriter, "Error: %s\n", err) }
		if err:=batch.Exec(cor, args[0], values, logWriter); err!=nil {
			fatalf(logWriter, "Error: %s\n", err)
		}

	case "info":
		batch.WriteInfo(cor, logWriter)

	case "check":
		timed=true
		res, err:=cor.CheckConsistency(*samples)
		if err!=nil { fatalf(logWriter, "Error: %s\n", err) }
		fmt.Fprintf(logWriter, "Consistency over %d random draws per axis pair:\n", res.Samples)
		fmt.Fprintf(logWriter, "  max |BC(T) - BC(log10 T)|:  %.3g mag\n", res.MaxAxisDiff)
		fmt.Fprintf(logWriter, "  max |BC(B-V) - BC(T(B-V))|: %.3g mag\n", res.MaxReverseDiff)
		fmt.Fprintf(logWriter, "  max B-V round trip error:   %.3g relative\n", res.MaxRoundTrip)

	case "plot":
		timed=true
		if *dense<2 {
			fmt.Fprintf(logWriter, "Error: -dense needs at least 2 curve points, got %d\n", *dense)
			os.Exit(2)
		}
		r:=render.New(cor, tbl, pal)
		r.Dense=*dense
		paths, err:=r.SaveAll(*out)
		if err!=nil { fatalf(logWriter, "Error rendering charts: %s\n", err) }
		for _, p:=range paths {
			fmt.Fprintf(logWriter, "Wrote %s\n", p)
		}

	case "batch":
		timed=true
		if len(args)<2 {
			fmt.Fprintf(logWriter, "Error: batch needs at least one input file\n")
			os.Exit(2)
		}
		processed, failed:=0, 0
		for _, fileName:=range args[1:] {
			p, f, err:=batch.ProcessFile(cor, fileName, logWriter)
			if err!=nil { fatalf(logWriter, "Error reading '%s': %s\n", fileName, err) }
			processed+=p
			failed+=f
		}
		fmt.Fprintf(logWriter, "%d commands processed, %d failed\n", processed, failed)

	case "repl":
		if err:=repl.Run(cor, pal, os.Stdin, logWriter); err!=nil {
			fatalf(logWriter, "Error: %s\n", err)
		}

	case "serve":
		if err:=rest.NewServer(cor, pal, version).Serve(*httpAddr); err!=nil {
			fatalf(logWriter, "Error serving API: %s\n", err)
		}

	case "legal":
		cmdLegal(logWriter)

	case "version":
		fmt.Fprintf(logWriter, "Version %s\n", version)

	case "help", "?":
		flag.Usage()

	default:
		fmt.Fprintf(logWriter, "Unknown command '%s'\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}

	if timed {
		now:=time.Now()
		fmt.Fprintf(logWriter, "\nDone after %v\n", now.Sub(start))
	}

	// Store memory profile if flagged
	if *memprofile!="" {
		f, err:=os.Create(*memprofile)
		if err!=nil { fatalf(logWriter, "Could not create memory profile: %s\n", err) }
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err:=pprof.Lookup("allocs").WriteTo(f, 0); err!=nil {
			fatalf(logWriter, "Could not write allocation profile: %s\n", err)
		}
	}
}

func fatalf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
	os.Exit(1)
}

// Parses one or more positional numeric arguments
func parseValues(args []string) ([]float64, error) {
	if len(args)<1 { return nil, errors.New("need at least one numeric value") }
	values:=make([]float64, len(args))
	for i, a:=range args {
		v, err:=strconv.ParseFloat(a, 64)
		if err!=nil { return nil, fmt.Errorf("invalid number %q", a) }
		values[i]=v
	}
	return values, nil
}
