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

// Package starcolor maps stellar B-V color indices to displayable sRGB
// colors. A display aid for plots and swatches, not calibrated science.
package starcolor

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"os"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/tiff"
	"gonum.org/v1/gonum/interp"
)

// Perceived star colors for B-V indices from -0.40 to +2.00 in steps of 0.05,
// sRGB channels in 0.0 ... 1.0.
// Table from http://www.vendian.org/mncharity/dir3/starcolor/details.html
type channels struct{ R, G, B float64 }

var starTable = []channels{
	{0.60784, 0.69804, 1.00000}, // -0.40
	{0.61961, 0.70980, 1.00000}, // -0.35
	{0.63922, 0.72549, 1.00000}, // -0.30
	{0.66667, 0.74902, 1.00000}, // -0.25
	{0.69804, 0.77255, 1.00000}, // -0.20
	{0.73333, 0.80000, 1.00000}, // -0.15
	{0.76863, 0.82353, 1.00000}, // -0.10
	{0.80000, 0.84706, 1.00000}, // -0.05
	{0.82745, 0.86667, 1.00000}, // 0.00
	{0.85490, 0.88627, 1.00000}, // 0.05
	{0.87451, 0.89804, 1.00000}, // 0.10
	{0.89412, 0.91373, 1.00000}, // 0.15
	{0.91373, 0.92549, 1.00000}, // 0.20
	{0.93333, 0.93725, 1.00000}, // 0.25
	{0.95294, 0.94902, 1.00000}, // 0.30
	{0.97255, 0.96471, 1.00000}, // 0.35
	{0.99608, 0.97647, 1.00000}, // 0.40
	{1.00000, 0.97647, 0.98431}, // 0.45
	{1.00000, 0.96863, 0.96078}, // 0.50
	{1.00000, 0.96078, 0.93725}, // 0.55
	{1.00000, 0.95294, 0.91765}, // 0.60
	{1.00000, 0.94510, 0.89804}, // 0.65
	{1.00000, 0.93725, 0.87843}, // 0.70
	{1.00000, 0.92941, 0.85882}, // 0.75
	{1.00000, 0.92157, 0.83922}, // 0.80
	{1.00000, 0.91373, 0.82353}, // 0.85
	{1.00000, 0.90980, 0.80784}, // 0.90
	{1.00000, 0.90196, 0.79216}, // 0.95
	{1.00000, 0.89804, 0.77647}, // 1.00
	{1.00000, 0.89020, 0.76471}, // 1.05
	{1.00000, 0.88627, 0.74902}, // 1.10
	{1.00000, 0.87843, 0.73333}, // 1.15
	{1.00000, 0.87451, 0.72157}, // 1.20
	{1.00000, 0.86667, 0.70588}, // 1.25
	{1.00000, 0.85882, 0.69020}, // 1.30
	{1.00000, 0.85490, 0.67843}, // 1.35
	{1.00000, 0.84706, 0.66275}, // 1.40
	{1.00000, 0.83922, 0.64706}, // 1.45
	{1.00000, 0.83529, 0.63137}, // 1.50
	{1.00000, 0.82353, 0.61176}, // 1.55
	{1.00000, 0.81569, 0.58824}, // 1.60
	{1.00000, 0.80000, 0.56078}, // 1.65
	{1.00000, 0.78431, 0.52157}, // 1.70
	{1.00000, 0.75686, 0.47059}, // 1.75
	{1.00000, 0.71765, 0.39608}, // 1.80
	{1.00000, 0.66275, 0.29412}, // 1.85
	{1.00000, 0.58431, 0.13725}, // 1.90
	{1.00000, 0.48235, 0.00000}, // 1.95
	{1.00000, 0.32157, 0.00000}, // 2.00
}

const (
	bvMin  = -0.40
	bvMax  = 2.00
	bvStep = 0.05
)

// A Palette maps B-V color indices to displayable colors by interpolating
// the channels of the embedded table with natural cubic splines, fit once
// at construction and read-only afterwards.
type Palette struct {
	r, g, b *interp.NaturalCubic
}

// NewPalette fits the three channel splines over the embedded table.
func NewPalette() (*Palette, error) {
	n:=len(starTable)
	xs, rs, gs, bs:=make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, e:=range starTable {
		xs[i]=bvMin+bvStep*float64(i)
		rs[i], gs[i], bs[i]=e.R, e.G, e.B
	}
	p:=&Palette{r: &interp.NaturalCubic{}, g: &interp.NaturalCubic{}, b: &interp.NaturalCubic{}}
	if err:=p.r.Fit(xs, rs); err!=nil { return nil, err }
	if err:=p.g.Fit(xs, gs); err!=nil { return nil, err }
	if err:=p.b.Fit(xs, bs); err!=nil { return nil, err }
	return p, nil
}

// ColorOf returns the displayable color for the given B-V index. Indices
// clamp to the -0.4 ... +2.0 table range, and channel overshoot from the
// splines clamps to valid sRGB.
func (p *Palette) ColorOf(bv float64) colorful.Color {
	if bv<bvMin { bv=bvMin }
	if bv>bvMax { bv=bvMax }
	c:=colorful.Color{R: p.r.Predict(bv), G: p.g.Predict(bv), B: p.b.Predict(bv)}
	return c.Clamped()
}

// Hex returns the #rrggbb form of the color for the given B-V index.
func (p *Palette) Hex(bv float64) string { return p.ColorOf(bv).Hex() }

// Strip renders a horizontal gradient over the full B-V range into a 16-bit
// RGBA image of the given size.
func (p *Palette) Strip(width, height int) *image.RGBA64 {
	img:=image.NewRGBA64(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})
	if width<1 || height<1 { return img }
	scale:=0.0
	if width>1 { scale=(bvMax-bvMin)/float64(width-1) }
	for x:=0; x<width; x++ {
		col:=p.ColorOf(bvMin+scale*float64(x))
		c:=color.RGBA64{uint16(col.R*65535), uint16(col.G*65535), uint16(col.B*65535), 65535}
		for y:=0; y<height; y++ {
			img.SetRGBA64(x, y, c)
		}
	}
	return img
}

// WriteStripTIFF16 writes the gradient strip as 16-bit TIFF.
func (p *Palette) WriteStripTIFF16(writer io.Writer, width, height int) error {
	return tiff.Encode(writer, p.Strip(width, height), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// WriteStripTIFF16ToFile writes the gradient strip as 16-bit TIFF to the named file.
func (p *Palette) WriteStripTIFF16ToFile(fileName string, width, height int) error {
	file, err:=os.Create(fileName)
	if err!=nil { return err }
	defer file.Close()

	writer:=bufio.NewWriter(file)
	defer writer.Flush()

	return p.WriteStripTIFF16(writer, width, height)
}
