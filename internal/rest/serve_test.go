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

package rest

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"github.com/gin-gonic/gin"
	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/starcolor"
	"github.com/mlnoga/bcv/internal/table"
)

func newTestRouter(t *testing.T, policy bc.Policy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tbl, err:=table.New()
	if err!=nil { t.Fatalf("loading table: %s", err) }
	cor, err:=bc.New(tbl, policy)
	if err!=nil { t.Fatalf("fitting splines: %s", err) }
	pal, err:=starcolor.NewPalette()
	if err!=nil { t.Fatalf("fitting palette: %s", err) }
	return NewServer(cor, pal, "test").Router()
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body=="" {
		req=httptest.NewRequest(method, path, nil)
	} else {
		req=httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w:=httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err:=json.Unmarshal(w.Body.Bytes(), into); err!=nil {
		t.Fatalf("decoding %q: %s", w.Body.String(), err)
	}
}

func TestPing(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "GET", "/api/v1/ping", "")
	if w.Code!=http.StatusOK { t.Fatalf("status %d; want 200", w.Code) }
	var body map[string]string
	decode(t, w, &body)
	if body["message"]!="pong" { t.Errorf("message %q; want pong", body["message"]) }
}

func TestInfo(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "GET", "/api/v1/info", "")
	if w.Code!=http.StatusOK { t.Fatalf("status %d; want 200", w.Code) }
	var d bc.Domain
	decode(t, w, &d)
	if d.Samples!=216 { t.Errorf("samples %d; want 216", d.Samples) }
	if d.Teff.Min!=2936 || d.Teff.Max!=56728 {
		t.Errorf("teff range [%g, %g]; want [2936, 56728]", d.Teff.Min, d.Teff.Max)
	}
	if d.BV.Min!=-0.35 || d.BV.Max!=1.80 {
		t.Errorf("bv range [%g, %g]; want [-0.35, 1.80]", d.BV.Min, d.BV.Max)
	}
}

type valuesBody struct {
	Values  []float64 `json:"values"`
	Warning string    `json:"warning"`
	Clamped int       `json:"clamped"`
}

func TestPostBC(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "POST", "/api/v1/bc", `{"axis":"temp","values":[5784]}`)
	if w.Code!=http.StatusOK { t.Fatalf("status %d body %s; want 200", w.Code, w.Body.String()) }
	var body valuesBody
	decode(t, w, &body)
	if len(body.Values)!=1 || math.Abs(body.Values[0]-(-0.079))>1e-3 {
		t.Errorf("values %v; want [-0.079]", body.Values)
	}

	w=do(t, router, "POST", "/api/v1/bc", `{"axis":"bv","values":[1.20]}`)
	if w.Code!=http.StatusOK { t.Fatalf("status %d; want 200", w.Code) }
	decode(t, w, &body)
	if len(body.Values)!=1 || math.Abs(body.Values[0]-(-0.614))>1e-6 {
		t.Errorf("values %v; want [-0.614]", body.Values)
	}

	w=do(t, router, "POST", "/api/v1/bc", `{"axis":"temp","values":[]}`)
	if w.Code!=http.StatusOK { t.Fatalf("status %d; want 200", w.Code) }
	decode(t, w, &body)
	if len(body.Values)!=0 { t.Errorf("values %v; want empty", body.Values) }
}

func TestPostBCDomainError(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "POST", "/api/v1/bc", `{"axis":"temp","values":[5784, 1]}`)
	if w.Code!=http.StatusUnprocessableEntity {
		t.Fatalf("status %d body %s; want 422", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	decode(t, w, &body)
	if body["axis"]!="T"        { t.Errorf("axis %v; want T", body["axis"]) }
	if body["value"]!=float64(1)     { t.Errorf("value %v; want 1", body["value"]) }
	if body["min"]!=float64(2936)    { t.Errorf("min %v; want 2936", body["min"]) }
	if body["max"]!=float64(56728)   { t.Errorf("max %v; want 56728", body["max"]) }
}

func TestPostBCBadRequests(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "POST", "/api/v1/bc", `{"axis":"flux","values":[1]}`)
	if w.Code!=http.StatusBadRequest { t.Errorf("unknown axis status %d; want 400", w.Code) }
	if !strings.Contains(w.Body.String(), "unknown query axis") {
		t.Errorf("unknown axis body %s", w.Body.String())
	}

	w=do(t, router, "POST", "/api/v1/bc", `{"axis":`)
	if w.Code!=http.StatusBadRequest { t.Errorf("malformed JSON status %d; want 400", w.Code) }
}

func TestPostTeff(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "POST", "/api/v1/teff", `{"values":[0.65]}`)
	if w.Code!=http.StatusOK { t.Fatalf("status %d body %s; want 200", w.Code, w.Body.String()) }
	var body valuesBody
	decode(t, w, &body)
	if len(body.Values)!=1 || math.Abs(body.Values[0]-5717)>1.0 {
		t.Errorf("values %v; want [~5717]", body.Values)
	}

	w=do(t, router, "POST", "/api/v1/teff", `{"values":[9.9]}`)
	if w.Code!=http.StatusUnprocessableEntity {
		t.Errorf("out of domain status %d; want 422", w.Code)
	}
}

func TestClampWarning(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyClamp)
	w:=do(t, router, "POST", "/api/v1/bc", `{"axis":"temp","values":[1000, 5784]}`)
	if w.Code!=http.StatusOK { t.Fatalf("status %d body %s; want 200", w.Code, w.Body.String()) }
	var body valuesBody
	decode(t, w, &body)
	if len(body.Values)!=2 || math.Abs(body.Values[0]-(-5.535))>1e-6 {
		t.Errorf("values %v; want clamp to lower bound -5.535", body.Values)
	}
	if body.Clamped!=1 { t.Errorf("clamped %d; want 1", body.Clamped) }
	if !strings.Contains(body.Warning, "clamped") { t.Errorf("warning %q", body.Warning) }
}

func TestGetColor(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "GET", "/api/v1/color/0.65", "")
	if w.Code!=http.StatusOK { t.Fatalf("status %d; want 200", w.Code) }
	var body map[string]interface{}
	decode(t, w, &body)
	if body["hex"]!="#fff1e5" { t.Errorf("hex %v; want #fff1e5", body["hex"]) }
	if body["bv"]!=0.65       { t.Errorf("bv %v; want 0.65", body["bv"]) }

	w=do(t, router, "GET", "/api/v1/color/abc", "")
	if w.Code!=http.StatusBadRequest { t.Errorf("invalid B-V status %d; want 400", w.Code) }

	w=do(t, router, "GET", "/api/v1/color/NaN", "")
	if w.Code!=http.StatusBadRequest { t.Errorf("NaN B-V status %d; want 400", w.Code) }

	// infinities clamp to the palette ends like any out of range value
	w=do(t, router, "GET", "/api/v1/color/Inf", "")
	if w.Code!=http.StatusOK { t.Fatalf("Inf B-V status %d; want 200", w.Code) }
	decode(t, w, &body)
	if body["hex"]!="#ff5200" { t.Errorf("hex %v; want the hot end #ff5200", body["hex"]) }
}

func TestGetCheck(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "GET", "/api/v1/check?samples=200", "")
	if w.Code!=http.StatusOK { t.Fatalf("status %d body %s; want 200", w.Code, w.Body.String()) }
	var res bc.Consistency
	decode(t, w, &res)
	if res.Samples!=200          { t.Errorf("samples %d; want 200", res.Samples) }
	if res.MaxAxisDiff>0.01      { t.Errorf("max axis difference %g; want <=0.01", res.MaxAxisDiff) }
	if res.MaxReverseDiff>0.02   { t.Errorf("max reverse difference %g; want <=0.02", res.MaxReverseDiff) }
	if res.MaxRoundTrip>1e-9     { t.Errorf("max round trip error %g; want <=1e-9", res.MaxRoundTrip) }

	for _, path:=range []string{"/api/v1/check?samples=-5", "/api/v1/check?samples=abc"} {
		if w:=do(t, router, "GET", path, ""); w.Code!=http.StatusBadRequest {
			t.Errorf("%s status %d; want 400", path, w.Code)
		}
	}
}

func TestGetStatus(t *testing.T) {
	router:=newTestRouter(t, bc.PolicyReject)
	w:=do(t, router, "GET", "/api/v1/status", "")
	if w.Code!=http.StatusOK { t.Fatalf("status %d; want 200", w.Code) }
	var body map[string]interface{}
	decode(t, w, &body)
	if body["version"]!="test"   { t.Errorf("version %v; want test", body["version"]) }
	if body["policy"]!="reject"  { t.Errorf("policy %v; want reject", body["policy"]) }
	if body["samples"]!=float64(216) { t.Errorf("samples %v; want 216", body["samples"]) }
	if mb, ok:=body["memoryMB"].(float64); !ok || mb<=0 {
		t.Errorf("memoryMB %v; want positive", body["memoryMB"])
	}
	if th, ok:=body["maxThreads"].(float64); !ok || th<1 {
		t.Errorf("maxThreads %v; want >=1", body["maxThreads"])
	}
}
