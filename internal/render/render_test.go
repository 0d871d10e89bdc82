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

package render

import (
	"os"
	"path/filepath"
	"testing"
	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/starcolor"
	"github.com/mlnoga/bcv/internal/table"
)

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()
	tbl, err:=table.New()
	if err!=nil { t.Fatalf("loading table: %s", err) }
	cor, err:=bc.New(tbl, bc.PolicyReject)
	if err!=nil { t.Fatalf("fitting splines: %s", err) }
	pal, err:=starcolor.NewPalette()
	if err!=nil { t.Fatalf("fitting palette: %s", err) }
	r:=New(cor, tbl, pal)
	r.Dense=64 // keep chart rendering quick under test
	return r
}

func TestSaveAll(t *testing.T) {
	r:=mustRenderer(t)
	dir:=filepath.Join(t.TempDir(), "plots") // must be created by SaveAll
	paths, err:=r.SaveAll(dir)
	if err!=nil { t.Fatalf("SaveAll: %s", err) }

	want:=[]string{FileBCTeff, FileBCLogTeff, FileBCBV, FileTeffBV, FileBVStrip}
	if len(paths)!=len(want) {
		t.Fatalf("wrote %d files; want %d", len(paths), len(want))
	}
	for i, name:=range want {
		if paths[i]!=filepath.Join(dir, name) {
			t.Errorf("path %d is %q; want %q", i, paths[i], filepath.Join(dir, name))
		}
		info, err:=os.Stat(paths[i])
		if err!=nil {
			t.Errorf("stat %s: %s", paths[i], err)
			continue
		}
		if info.Size()==0 { t.Errorf("%s is empty", paths[i]) }
	}
}

func TestSaveAllRejectsSparseCurve(t *testing.T) {
	r:=mustRenderer(t)
	for _, dense:=range []int{1, 0, -3} {
		r.Dense=dense
		if _, err:=r.SaveAll(t.TempDir()); err==nil {
			t.Errorf("SaveAll succeeded with Dense=%d; want an error", dense)
		}
	}
}

type linspaceTestCase struct {
	R bc.Range
	N int
}

func TestLinspace(t *testing.T) {
	tcs:=[]linspaceTestCase{
		{bc.Range{Min: 2936, Max: 56728}, 7},
		{bc.Range{Min: -0.35, Max: 1.80}, 400},
		{bc.Range{Min: 3.4678, Max: 4.7538}, 2},
	}
	for _, tc:=range tcs {
		xs:=linspace(tc.R, tc.N)
		if len(xs)!=tc.N { t.Fatalf("len=%d; want %d", len(xs), tc.N) }
		if xs[0]!=tc.R.Min { t.Errorf("xs[0]=%v; want %v", xs[0], tc.R.Min) }
		if xs[tc.N-1]!=tc.R.Max { t.Errorf("xs[last]=%v; want %v", xs[tc.N-1], tc.R.Max) }
		for i, x:=range xs {
			if !tc.R.Contains(x) {
				t.Errorf("xs[%d]=%v outside %+v", i, x, tc.R)
			}
			if i>0 && x<xs[i-1] {
				t.Errorf("xs[%d]=%v below xs[%d]=%v", i, x, i-1, xs[i-1])
			}
		}
	}
}
