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
	"errors"
	"fmt"
	"math"
	"net/http"
	"runtime"
	"strconv"
	"github.com/gin-gonic/gin"
	"github.com/pbnjay/memory"

	"github.com/mlnoga/bcv/internal/bc"
	"github.com/mlnoga/bcv/internal/starcolor"
)


// A Server exposes corrector lookups as an HTTP/JSON API. All state is
// read-only after construction, so handlers need no locking.
type Server struct {
	cor     *bc.Corrector
	pal     *starcolor.Palette
	version string
}

func NewServer(cor *bc.Corrector, pal *starcolor.Palette, version string) *Server {
	return &Server{cor: cor, pal: pal, version: version}
}

// Router assembles the gin engine with all API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET ("/ping",      getPing)
			v1.GET ("/info",      s.getInfo)
			v1.GET ("/status",    s.getStatus)
			v1.GET ("/check",     s.getCheck)
			v1.POST("/bc",        s.postBC)
			v1.POST("/teff",      s.postTeff)
			v1.GET ("/color/:bv", s.getColor)
		}
	}
	return r
}

// Serve listens and serves on the given address, or 0.0.0.0:8080 if empty.
func (s *Server) Serve(addr string) error {
	if addr=="" { return s.Router().Run() }
	return s.Router().Run(addr)
}

func getPing(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

func (s *Server) getInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.cor.Info())
}

func (s *Server) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    s.version,
		"samples":    s.cor.Info().Samples,
		"policy":     s.cor.Policy().String(),
		"memoryMB":   memory.TotalMemory()/1024/1024,
		"maxThreads": runtime.GOMAXPROCS(0),
	})
}

func (s *Server) getCheck(c *gin.Context) {
	n:=1000
	if q:=c.Query("samples"); q!="" {
		v, err:=strconv.Atoi(q)
		if err!=nil || v<=0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid samples %q", q)})
			return
		}
		n=v
	}
	res, err:=s.cor.CheckConsistency(n)
	if err!=nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

type lookupArgs struct {
	Axis   string    `json:"axis"`
	Values []float64 `json:"values"`
}

func (s *Server) postBC(c *gin.Context) {
	var args lookupArgs
	if err:=c.ShouldBind(&args); err!=nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}
	axis, err:=bc.ParseAxis(args.Axis)
	if err!=nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}
	values, err:=s.cor.Lookup(bc.Query{Axis: axis, Values: args.Values})
	s.reply(c, values, err)
}

type teffArgs struct {
	Values []float64 `json:"values"`
}

func (s *Server) postTeff(c *gin.Context) {
	var args teffArgs
	if err:=c.ShouldBind(&args); err!=nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}
	values, err:=s.cor.TeffFromBVs(args.Values)
	s.reply(c, values, err)
}

// Maps lookup outcomes to HTTP: domain errors answer 422 with the offending
// value and valid bounds, clamp warnings ride along with usable results.
func (s *Server) reply(c *gin.Context, values []float64, err error) {
	var warn *bc.DomainWarning
	if err!=nil && !errors.As(err, &warn) {
		var domErr *bc.DomainError
		if errors.As(err, &domErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": domErr.Error(),
				"axis":  domErr.Axis.String(),
				"value": domErr.Value,
				"min":   domErr.Min,
				"max":   domErr.Max,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}
	body:=gin.H{"values": values}
	if warn!=nil {
		body["warning"]=warn.Error()
		body["clamped"]=warn.Clamped
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) getColor(c *gin.Context) {
	// NaN parses as a float but has no displayable color and no JSON encoding
	v, err:=strconv.ParseFloat(c.Param("bv"), 64)
	if err!=nil || math.IsNaN(v) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid B-V %q", c.Param("bv"))})
		return
	}
	col:=s.pal.ColorOf(v)
	c.JSON(http.StatusOK, gin.H{"bv": v, "hex": col.Hex(), "r": col.R, "g": col.G, "b": col.B})
}
