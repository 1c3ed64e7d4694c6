package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/banachtech/mcoption/mc"
	"github.com/banachtech/mcoption/payoff"
	"github.com/banachtech/mcoption/pricer"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type simulateRequest struct {
	Spot            float64 `json:"spot"`
	Strike          float64 `json:"strike"`
	Maturity        float64 `json:"maturity"`
	Rate            float64 `json:"rate"`
	Volatility      float64 `json:"volatility"`
	Paths           int     `json:"paths"`
	OptionType      string  `json:"option_type" binding:"required,oneof=call put"`
	SamplePaths     int     `json:"sample_paths"`
	Steps           int     `json:"steps"`
	Seed            *uint64 `json:"seed"`
	Bins            int     `json:"bins" binding:"omitempty,min=1,max=1000"`
	IncludeTerminal bool    `json:"include_terminal"`
}

type samplePathsResponse struct {
	Time   []float64   `json:"time"`
	Prices [][]float64 `json:"prices"`
}

type simulateResponse struct {
	OptionType     string               `json:"option_type"`
	Paths          int                  `json:"paths"`
	Seed           uint64               `json:"seed"`
	Price          float64              `json:"price"`
	StdErr         float64              `json:"std_error"`
	BlackScholes   *float64             `json:"black_scholes,omitempty"`
	Summary        *pricer.Summary      `json:"summary"`
	SamplePaths    *samplePathsResponse `json:"sample_paths,omitempty"`
	TerminalPrices []float64            `json:"terminal_prices,omitempty"`
}

func (server *Server) simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	option, err := payoff.ParseOptionType(req.OptionType)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	for _, limit := range []struct {
		field string
		value int
		max   int
	}{
		{"paths", req.Paths, server.config.MaxPaths},
		{"sample_paths", req.SamplePaths, server.config.MaxSamplePaths},
		{"steps", req.Steps, server.config.MaxSteps},
	} {
		if limit.value > limit.max {
			err := fmt.Errorf("%s must not exceed %d", limit.field, limit.max)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": limit.field})
			return
		}
	}
	bins := req.Bins
	if bins == 0 {
		bins = pricer.DefaultBins
	}

	params := pricer.Parameters{
		Spot:        req.Spot,
		Strike:      req.Strike,
		Maturity:    req.Maturity,
		Rate:        req.Rate,
		Volatility:  req.Volatility,
		Paths:       req.Paths,
		Type:        option,
		SamplePaths: req.SamplePaths,
		Steps:       req.Steps,
		Seed:        req.Seed,
	}

	result, err := server.pricer.Simulate(params)
	if err != nil {
		var pErr *pricer.InvalidParameterError
		if errors.As(err, &pErr) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": pErr.Field})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if !result.Finite() {
		server.logger.WithFields(logrus.Fields{"seed": result.Seed, "volatility": req.Volatility, "maturity": req.Maturity}).Warn("non-finite simulation result")
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(pricer.ErrNonFinite))
		return
	}

	summary, err := pricer.Summarize(result.TerminalPrices, bins)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	resp := simulateResponse{
		OptionType: option.String(),
		Paths:      len(result.TerminalPrices),
		Seed:       result.Seed,
		Price:      result.Price,
		StdErr:     result.StdErr,
		Summary:    summary,
	}
	if bs := mc.BlackScholes(req.Spot, req.Strike, req.Maturity, req.Rate, req.Volatility, option); !math.IsNaN(bs) && !math.IsInf(bs, 0) {
		resp.BlackScholes = &bs
	}
	if len(result.SamplePaths) > 0 {
		resp.SamplePaths = &samplePathsResponse{Time: result.TimeGrid, Prices: result.SamplePaths}
	}
	if req.IncludeTerminal {
		resp.TerminalPrices = result.TerminalPrices
	}

	server.logger.WithFields(logrus.Fields{
		"paths":  resp.Paths,
		"seed":   resp.Seed,
		"option": resp.OptionType,
		"price":  resp.Price,
	}).Debug("simulated")
	c.JSON(http.StatusOK, resp)
}

type impliedVolRequest struct {
	Price      float64 `json:"price" binding:"required,gt=0"`
	Spot       float64 `json:"spot" binding:"required,gt=0"`
	Strike     float64 `json:"strike" binding:"required,gt=0"`
	Maturity   float64 `json:"maturity" binding:"required,gt=0"`
	Rate       float64 `json:"rate"`
	OptionType string  `json:"option_type" binding:"required,oneof=call put"`
}

func (server *Server) impliedVol(c *gin.Context) {
	var req impliedVolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	option, err := payoff.ParseOptionType(req.OptionType)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	vol, err := mc.ImpliedVol(req.Price, req.Spot, req.Strike, req.Maturity, req.Rate, option)
	if err != nil {
		if errors.Is(err, mc.ErrNoArbitrageBounds) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(err))
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": req, "implied_volatility": vol})
}

func (server *Server) defaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"defaults":         server.config.Preset,
		"max_paths":        server.config.MaxPaths,
		"max_sample_paths": server.config.MaxSamplePaths,
		"max_steps":        server.config.MaxSteps,
	})
}
