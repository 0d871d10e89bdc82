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

// Package render draws the calibration samples and the fitted spline curves
// as a set of chart files. All curve data comes from engine lookups; the
// engine itself performs no I/O.
package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/starcolor"
	"github.com/mlnoga/bcv/internal/table"
)

// File names of the chart set written by SaveAll
const (
	FileBCTeff    = "bc_teff.png"
	FileBCLogTeff = "bc_logteff.png"
	FileBCBV      = "bc_bv.png"
	FileTeffBV    = "teff_bv.png"
	FileBVStrip   = "bv_colors.tiff"
)

// A Renderer draws charts of a calibration table and the corrector fitted
// over it. Dense controls the number of curve evaluation points per chart
// and must be at least 2.
type Renderer struct {
	cor   *bc.Corrector
	tbl   *table.Table
	pal   *starcolor.Palette
	Dense int
}

// New creates a Renderer over the given corrector, its calibration table and
// a star color palette for tinting sample points.
func New(cor *bc.Corrector, tbl *table.Table, pal *starcolor.Palette) *Renderer {
	return &Renderer{cor: cor, tbl: tbl, pal: pal, Dense: 400}
}

// One chart: a dense fitted curve with the calibration samples on top
type panel struct {
	title, xLabel, yLabel, file string
	curve, points               plotter.XYs
	invertX, logY               bool
	lineColor                   color.Color
	tint                        func(i int) color.Color // optional per sample glyph tint
}

// SaveAll writes the four chart files plus the B-V color strip into dir,
// creating it if missing, and returns the paths written.
func (r *Renderer) SaveAll(dir string) ([]string, error) {
	if err:=os.MkdirAll(dir, 0755); err!=nil { return nil, err }
	panels, err:=r.panels()
	if err!=nil { return nil, err }
	paths:=make([]string, 0, len(panels)+1)
	for _, pn:=range panels {
		p, err:=r.render(pn)
		if err!=nil { return nil, err }
		path:=filepath.Join(dir, pn.file)
		if err:=p.Save(7*vg.Inch, 5*vg.Inch, path); err!=nil { return nil, err }
		paths=append(paths, path)
	}
	path:=filepath.Join(dir, FileBVStrip)
	if err:=r.pal.WriteStripTIFF16ToFile(path, 720, 48); err!=nil { return nil, err }
	return append(paths, path), nil
}

// Assembles the chart definitions, evaluating the fitted splines densely
// across each calibrated domain. Temperature axes are drawn inverted so hot
// stars sit on the left, and the temperature vs color chart uses a log scale.
func (r *Renderer) panels() ([]panel, error) {
	d:=r.cor.Info()
	n:=r.Dense
	if n<2 { return nil, fmt.Errorf("curve needs at least 2 evaluation points, got %d", n) }

	teffXs:=linspace(d.Teff, n)
	teffYs, err:=r.cor.BCFromTeffs(teffXs)
	if err!=nil { return nil, err }
	logXs:=linspace(d.LogTeff, n)
	logYs, err:=r.cor.BCFromLogTeffs(logXs)
	if err!=nil { return nil, err }
	bvXs:=linspace(d.BV, n)
	bvYs, err:=r.cor.BCFromBVs(bvXs)
	if err!=nil { return nil, err }
	bvTeffYs, err:=r.cor.TeffFromBVs(bvXs)
	if err!=nil { return nil, err }

	nt:=r.tbl.Len()
	tPts, logPts:=make(plotter.XYs, nt), make(plotter.XYs, nt)
	bvPts, teffPts:=make(plotter.XYs, nt), make(plotter.XYs, nt)
	bvs:=make([]float64, nt)
	for i:=0; i<nt; i++ {
		s:=r.tbl.Sample(i)
		tPts[i]=plotter.XY{X: s.Teff, Y: s.BC}
		logPts[i]=plotter.XY{X: s.LogTeff, Y: s.BC}
		bvPts[i]=plotter.XY{X: s.BV, Y: s.BC}
		teffPts[i]=plotter.XY{X: s.BV, Y: s.Teff}
		bvs[i]=s.BV
	}
	pal:=r.pal
	return []panel{
		{title: "Bolometric correction vs temperature", xLabel: "T (K)", yLabel: "BC (mag)", file: FileBCTeff,
			curve: xys(teffXs, teffYs), points: tPts, invertX: true, lineColor: color.RGBA{B: 255, A: 255}},
		{title: "Bolometric correction vs log temperature", xLabel: "log10 T", yLabel: "BC (mag)", file: FileBCLogTeff,
			curve: xys(logXs, logYs), points: logPts, invertX: true, lineColor: color.RGBA{R: 255, A: 255}},
		{title: "Bolometric correction vs B-V color", xLabel: "B-V (mag)", yLabel: "BC (mag)", file: FileBCBV,
			curve: xys(bvXs, bvYs), points: bvPts, lineColor: color.RGBA{G: 128, A: 255}},
		{title: "Temperature vs B-V color", xLabel: "B-V (mag)", yLabel: "T (K)", file: FileTeffBV,
			curve: xys(bvXs, bvTeffYs), points: teffPts, logY: true, lineColor: color.RGBA{R: 255, B: 255, A: 255},
			tint: func(i int) color.Color { return pal.ColorOf(bvs[i]) }},
	}, nil
}

func (r *Renderer) render(pn panel) (*plot.Plot, error) {
	p:=plot.New()
	p.Title.Text=pn.title
	p.X.Label.Text=pn.xLabel
	p.Y.Label.Text=pn.yLabel
	p.Add(plotter.NewGrid())

	line, err:=plotter.NewLine(pn.curve)
	if err!=nil { return nil, err }
	line.LineStyle.Width=vg.Points(1.5)
	line.LineStyle.Color=pn.lineColor

	scatter, err:=plotter.NewScatter(pn.points)
	if err!=nil { return nil, err }
	scatter.GlyphStyle.Radius=vg.Points(1.8)
	scatter.GlyphStyle.Shape=draw.CircleGlyph{}
	scatter.GlyphStyle.Color=color.RGBA{A: 255}
	if pn.tint!=nil {
		tint:=pn.tint
		scatter.GlyphStyleFunc=func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{Color: tint(i), Radius: vg.Points(2.2), Shape: draw.CircleGlyph{}}
		}
	}

	if pn.invertX {
		p.X.Scale=plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}
	if pn.logY {
		p.Y.Scale=plot.LogScale{}
		p.Y.Tick.Marker=plot.LogTicks{Prec: -1}
	}
	p.Add(line, scatter)
	p.Legend.Add("calibration", scatter)
	p.Legend.Add("spline fit", line)
	p.Legend.Top=true
	return p, nil
}

// Evaluation abscissas across the closed interval. Rounding must not leave
// the domain, or the engine would reject the boundary samples.
func linspace(r bc.Range, n int) []float64 {
	xs:=make([]float64, n)
	d:=r.Max-r.Min
	for i:=range xs {
		x:=r.Min+d*float64(i)/float64(n-1)
		if x>r.Max { x=r.Max }
		xs[i]=x
	}
	xs[n-1]=r.Max
	return xs
}

func xys(xs, ys []float64) plotter.XYs {
	pts:=make(plotter.XYs, len(xs))
	for i:=range xs {
		pts[i].X, pts[i].Y=xs[i], ys[i]
	}
	return pts
}
