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

// Package batch executes textual lookup commands against a corrector and
// formats the results. Used line by line for batch files, per command by the
// REPL, and with pre-parsed values by the command line front end.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"github.com/mlnoga/bcv/internal/bc"
)

// Process executes commands from r line by line against the corrector,
// writing results and per line errors to w. Each line holds a command and one
// or more numeric values; blank lines and lines starting with # are skipped.
// A failing line is reported and processing continues. Returns the number of
// lines executed and the number that failed.
func Process(cor *bc.Corrector, r io.Reader, w io.Writer) (processed, failed int) {
	scanner:=bufio.NewScanner(r)
	for scanner.Scan() {
		line:=strings.TrimSpace(scanner.Text())
		if line=="" || strings.HasPrefix(line, "#") { continue }
		processed++
		if err:=ExecLine(cor, line, w); err!=nil {
			fmt.Fprintf(w, "error in %q: %s\n", line, err)
			failed++
		}
	}
	if err:=scanner.Err(); err!=nil {
		fmt.Fprintf(w, "error reading input: %s\n", err)
		failed++
	}
	return processed, failed
}

// ProcessFile runs Process on the named file. The returned error covers only
// opening the file; line failures are reported to w and counted.
func ProcessFile(cor *bc.Corrector, fileName string, w io.Writer) (processed, failed int, err error) {
	f, err:=os.Open(fileName)
	if err!=nil { return 0, 0, err }
	defer f.Close()
	processed, failed=Process(cor, f, w)
	return processed, failed, nil
}

// ExecLine parses one command line of the form "command value [value...]"
// and executes it via Exec.
func ExecLine(cor *bc.Corrector, line string, w io.Writer) error {
	fields:=strings.Fields(line)
	if len(fields)<2 { return errors.New("expected a command and at least one value") }
	values:=make([]float64, len(fields)-1)
	for i, f:=range fields[1:] {
		v, err:=strconv.ParseFloat(f, 64)
		if err!=nil { return fmt.Errorf("invalid number %q", f) }
		values[i]=v
	}
	return Exec(cor, fields[0], values, w)
}

// Exec runs one lookup command against the corrector and writes a formatted
// line per value to w. Commands are the axis aliases accepted by bc.ParseAxis
// plus "teff" for the reverse lookup from B-V. Under clamp policy, results
// are written and the domain warning reported afterwards; under reject
// policy a domain error fails the whole command.
func Exec(cor *bc.Corrector, cmd string, values []float64, w io.Writer) error {
	if len(values)==0 { return fmt.Errorf("command %q needs at least one value", cmd) }

	var res []float64
	var err error
	var write func(i int)
	if strings.EqualFold(strings.TrimSpace(cmd), "teff") {
		res, err=cor.TeffFromBVs(values)
		write=func(i int) { fmt.Fprintf(w, "B-V = %.2f -> T = %.0f K\n", values[i], res[i]) }
	} else {
		var axis bc.Axis
		if axis, err=bc.ParseAxis(cmd); err!=nil { return err }
		res, err=cor.Lookup(bc.Query{Axis: axis, Values: values})
		switch axis {
		case bc.AxisTeff:
			write=func(i int) { fmt.Fprintf(w, "T = %.0f K -> BC = %.3f\n", values[i], res[i]) }
		case bc.AxisLogTeff:
			write=func(i int) { fmt.Fprintf(w, "log10(T) = %.3f -> BC = %.3f\n", values[i], res[i]) }
		case bc.AxisBV:
			write=func(i int) { fmt.Fprintf(w, "B-V = %.2f -> BC = %.3f\n", values[i], res[i]) }
		}
	}

	var warn *bc.DomainWarning
	if err!=nil && !errors.As(err, &warn) { return err }
	for i:=range res {
		write(i)
	}
	if warn!=nil { fmt.Fprintf(w, "warning: %s\n", warn) }
	return nil
}

// WriteInfo formats the calibrated domain bounds and sample count as text.
func WriteInfo(cor *bc.Corrector, w io.Writer) {
	d:=cor.Info()
	fmt.Fprintf(w, "Bolometric correction calibration:\n")
	fmt.Fprintf(w, "  T range:        %.0f - %.0f K\n", d.Teff.Min, d.Teff.Max)
	fmt.Fprintf(w, "  log10(T) range: %.3f - %.3f\n", d.LogTeff.Min, d.LogTeff.Max)
	fmt.Fprintf(w, "  B-V range:      %.2f - %.2f\n", d.BV.Min, d.BV.Max)
	fmt.Fprintf(w, "  BC range:       %.3f - %.3f mag\n", d.BC.Min, d.BC.Max)
	fmt.Fprintf(w, "  Samples:        %d\n", d.Samples)
}
