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

// Package repl implements the interactive console over a corrector.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"github.com/mlnoga/bcv/internal/batch"
	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/starcolor"
)

const prompt = "bcv> "

// Run reads commands from r and executes them against the corrector until
// quit or EOF, writing all output to w. Commands are the lookup commands
// batch.Exec accepts, plus color, info, help and quit. Failing commands are
// reported and the loop continues.
func Run(cor *bc.Corrector, pal *starcolor.Palette, r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Interactive bolometric correction calculator. Type help for commands.")
	scanner:=bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() { break }
		line:=strings.TrimSpace(scanner.Text())
		if line=="" { continue }
		fields:=strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			return nil
		case "help":
			writeHelp(w)
		case "info":
			batch.WriteInfo(cor, w)
		case "color":
			colors(pal, fields[1:], w)
		default:
			if err:=batch.ExecLine(cor, line, w); err!=nil {
				fmt.Fprintf(w, "error: %s\n", err)
			}
		}
	}
	return scanner.Err()
}

func colors(pal *starcolor.Palette, args []string, w io.Writer) {
	if len(args)==0 {
		fmt.Fprintln(w, "error: color needs at least one B-V value")
		return
	}
	for _, a:=range args {
		v, err:=strconv.ParseFloat(a, 64)
		if err!=nil {
			fmt.Fprintf(w, "error: invalid number %q\n", a)
			continue
		}
		fmt.Fprintf(w, "B-V = %.2f -> %s\n", v, pal.Hex(v))
	}
}

func writeHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  temp <T...>   bolometric correction for temperatures in Kelvin
  logt <x...>   bolometric correction for log10 temperatures
  bv <x...>     bolometric correction for B-V color indices
  teff <x...>   temperature estimate for B-V color indices
  color <x...>  display color for B-V color indices
  info          calibrated domain bounds
  help          this text
  quit          leave
`)
}
