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

package bc

import (
	"fmt"
	"strings"
)

// A query axis, selecting which table column the input values live on
type Axis int

const (
	AxisTeff    Axis = iota // effective temperature in Kelvin
	AxisLogTeff             // base-10 logarithm of the effective temperature
	AxisBV                  // B-V color index
)

func (a Axis) String() string {
	switch a {
	case AxisTeff:
		return "T"
	case AxisLogTeff:
		return "log10(T)"
	case AxisBV:
		return "B-V"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// ParseAxis normalizes the textual axis names and aliases accepted on the
// command line, in batch files and in the REPL. Returns an *AxisError for
// unrecognized names.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temp", "t", "temperature":
		return AxisTeff, nil
	case "logt", "log", "logtemp":
		return AxisLogTeff, nil
	case "bv", "color", "b-v":
		return AxisBV, nil
	}
	return 0, &AxisError{Kind: s}
}

// An AxisError reports an unrecognized query axis tag or alias,
// a caller-side precondition violation
type AxisError struct {
	Kind string
}

func (e *AxisError) Error() string { return fmt.Sprintf("unknown query axis %q", e.Kind) }

// A DomainError reports a query value outside the calibrated range of its
// axis. Recoverable: callers may report the value and bounds and move on.
type DomainError struct {
	Axis  Axis
	Value float64
	Min   float64
	Max   float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s value %g outside calibrated domain [%g, %g]", e.Axis, e.Value, e.Min, e.Max)
}

// A DomainWarning flags values clamped to the calibrated range under
// PolicyClamp. It is returned alongside fully usable results; callers may
// report it and otherwise ignore it.
type DomainWarning struct {
	Axis    Axis
	Value   float64 // first out-of-domain value encountered
	Min     float64
	Max     float64
	Clamped int // total values clamped in the call
}

func (w *DomainWarning) Error() string {
	return fmt.Sprintf("clamped %d value(s) to the calibrated %s domain [%g, %g], first %g", w.Clamped, w.Axis, w.Min, w.Max, w.Value)
}
