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
	"math"
	"github.com/valyala/fastrand"
)

// A Consistency summarizes cross-validation of the fitted axes against each
// other. All differences are worst cases over the sampled inputs.
type Consistency struct {
	Samples        int     `json:"samples"`        // number of random draws per check
	MaxAxisDiff    float64 `json:"maxAxisDiff"`    // worst |BC(T) - BC(log10 T)| in magnitudes
	MaxReverseDiff float64 `json:"maxReverseDiff"` // worst |BC(B-V) - BC(T(B-V))| in magnitudes
	MaxRoundTrip   float64 `json:"maxRoundTrip"`   // worst relative B-V to temperature round trip error at table samples
}

// Draws a uniform random value from the closed interval
func uniform(rng *fastrand.RNG, r Range) float64 {
	return r.Min+(r.Max-r.Min)*float64(rng.Uint32())/float64(math.MaxUint32)
}

// CheckConsistency cross-validates the fitted axes by subsampling the given
// number of random in-domain values: the temperature and log-temperature
// splines must agree for identical physical temperatures, the direct B-V
// lookup must agree with composing the reverse lookup and the temperature
// lookup, and the reverse lookup must reproduce the table's own temperatures
// at its sample points. Pure computation, no I/O. A non-positive n defaults
// to 1000 draws.
func (c *Corrector) CheckConsistency(n int) (Consistency, error) {
	if n<=0 { n=1000 }
	rng:=fastrand.RNG{}
	res:=Consistency{Samples: n}
	for i:=0; i<n; i++ {
		t:=uniform(&rng, c.domain.Teff)
		bc1, err:=c.BCFromTeff(t)
		if err!=nil { return res, err }
		bc2, err:=c.BCFromLogTeff(math.Log10(t))
		if err!=nil { return res, err }
		res.MaxAxisDiff=math.Max(res.MaxAxisDiff, math.Abs(bc1-bc2))

		bv:=uniform(&rng, c.domain.BV)
		direct, err:=c.BCFromBV(bv)
		if err!=nil { return res, err }
		t2, err:=c.TeffFromBV(bv)
		if err!=nil { return res, err }
		// cubic overshoot near the endpoints can leave the calibrated range
		t2=math.Min(math.Max(t2, c.domain.Teff.Min), c.domain.Teff.Max)
		composed, err:=c.BCFromTeff(t2)
		if err!=nil { return res, err }
		res.MaxReverseDiff=math.Max(res.MaxReverseDiff, math.Abs(direct-composed))
	}
	for i:=c.bvLo; i<c.bvHi; i++ {
		s:=c.tbl.Sample(i)
		t2, err:=c.TeffFromBV(s.BV)
		if err!=nil { return res, err }
		res.MaxRoundTrip=math.Max(res.MaxRoundTrip, math.Abs(t2-s.Teff)/s.Teff)
	}
	return res, nil
}
