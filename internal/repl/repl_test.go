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

package repl

import (
	"bytes"
	"strings"
	"testing"
	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/starcolor"
	"github.com/mlnoga/bcv/internal/table"
)

func mustFixtures(t *testing.T) (*bc.Corrector, *starcolor.Palette) {
	t.Helper()
	tbl, err:=table.New()
	if err!=nil { t.Fatalf("loading table: %s", err) }
	cor, err:=bc.New(tbl, bc.PolicyReject)
	if err!=nil { t.Fatalf("fitting splines: %s", err) }
	pal, err:=starcolor.NewPalette()
	if err!=nil { t.Fatalf("fitting palette: %s", err) }
	return cor, pal
}

func TestRunSession(t *testing.T) {
	cor, pal:=mustFixtures(t)
	session:=`help
info

temp 5784
teff 0.65
color 0.65
bogus 1
quit
color 0.65
`
	buf:=&bytes.Buffer{}
	if err:=Run(cor, pal, strings.NewReader(session), buf); err!=nil {
		t.Fatalf("Run: %s", err)
	}
	out:=buf.String()
	for _, want:=range []string{
		"Type help for commands",
		prompt,
		"Commands:",
		"Samples:        216",
		"T = 5784 K -> BC = -0.079",
		"B-V = 0.65 -> T = 5717 K",
		"B-V = 0.65 -> #fff1e5",
		`error: unknown query axis "bogus"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output lacks %q:\n%s", want, out)
		}
	}
	// the second color command comes after quit and must not run
	if n:=strings.Count(out, "#fff1e5"); n!=1 {
		t.Errorf("color executed %d times; want 1:\n%s", n, out)
	}
}

func TestRunEOF(t *testing.T) {
	cor, pal:=mustFixtures(t)
	buf:=&bytes.Buffer{}
	if err:=Run(cor, pal, strings.NewReader("temp 5784\n"), buf); err!=nil {
		t.Errorf("Run at EOF: %s", err)
	}
	if !strings.Contains(buf.String(), "T = 5784 K -> BC = -0.079") {
		t.Errorf("lookup before EOF missing:\n%s", buf.String())
	}
}

func TestRunColorErrors(t *testing.T) {
	cor, pal:=mustFixtures(t)
	buf:=&bytes.Buffer{}
	if err:=Run(cor, pal, strings.NewReader("color\ncolor abc\nq\n"), buf); err!=nil {
		t.Fatalf("Run: %s", err)
	}
	out:=buf.String()
	for _, want:=range []string{
		"error: color needs at least one B-V value",
		`error: invalid number "abc"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}
