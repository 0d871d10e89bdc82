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
	"bytes"
	"strings"
	"testing"
)

func TestCmdLegal(t *testing.T) {
	buf:=&bytes.Buffer{}
	cmdLegal(buf)
	out:=buf.String()
	for _, want:=range []string{"ABSOLUTELY NO WARRANTY", "gin-gonic", "gonum.org/v1/plot", "vendian.org"} {
		if !strings.Contains(out, want) {
			t.Errorf("legal text lacks %q", want)
		}
	}
	if !strings.HasSuffix(out, "\n") { t.Errorf("legal text does not end with a newline") }
	if strings.HasSuffix(out, "\n\n") { t.Errorf("legal text ends with a doubled newline") }
}

func TestParseValues(t *testing.T) {
	got, err:=parseValues([]string{"5784", "-0.35"})
	if err!=nil || len(got)!=2 || got[0]!=5784 || got[1]!=-0.35 {
		t.Errorf("parseValues=%v,%v; want [5784 -0.35]", got, err)
	}
	if _, err:=parseValues(nil); err==nil {
		t.Errorf("parseValues with no arguments succeeded")
	}
	if _, err:=parseValues([]string{"5784", "abc"}); err==nil {
		t.Errorf("parseValues accepted a non-numeric argument")
	}
}
