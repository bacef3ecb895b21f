package api

import (
	"errors"
	"fairhold/internal/calculator"
	"fairhold/internal/domain"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type simpleYieldRequest struct {
	Principal   float64  `json:"principal"`
	AnnualRate  *float64 `json:"annualRate"`
	ElapsedDays int      `json:"elapsedDays"`
}

type compoundYieldRequest struct {
	Principal          float64  `json:"principal"`
	AnnualRate         *float64 `json:"annualRate"`
	TotalDays          int      `json:"totalDays"`
	CompoundPeriodDays int      `json:"compoundPeriodDays"`
}

type yieldResponse struct {
	Request       domain.YieldRequest `json:"request"`
	YieldAmount   float64             `json:"yieldAmount"`
	YieldFraction float64             `json:"yieldFraction"`
	Periods       int                 `json:"periods,omitempty"`
	FinalAmount   float64             `json:"finalAmount,omitempty"`
	// cents, rounded half away from zero
	RoundedYieldAmount decimal.Decimal `json:"roundedYieldAmount"`
}

func (h ApiHandler) rateOrDefault(rate *float64) float64 {
	if rate == nil {
		return h.Cfg.Yield.AnnualRate
	}
	return *rate
}

func returnCalculatorError(err error, c *gin.Context) {
	if errors.Is(err, calculator.ErrInvalidArgument) {
		returnErrorJsonCode(err, c, 400)
		return
	}
	returnErrorJson(err, c)
}

func newYieldResponse(req domain.YieldRequest, result domain.YieldResult) yieldResponse {
	return yieldResponse{
		Request:            req,
		YieldAmount:        result.YieldAmount,
		YieldFraction:      result.YieldFraction,
		Periods:            result.Periods,
		FinalAmount:        result.FinalAmount,
		RoundedYieldAmount: decimal.NewFromFloat(result.YieldAmount).Round(2),
	}
}

func (h ApiHandler) simpleYield(c *gin.Context) {
	var requestBody simpleYieldRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	req := domain.YieldRequest{
		Mode:        domain.YieldModeSimple,
		Principal:   requestBody.Principal,
		AnnualRate:  h.rateOrDefault(requestBody.AnnualRate),
		ElapsedDays: requestBody.ElapsedDays,
	}
	result, err := calculator.Yield(req)
	if err != nil {
		returnCalculatorError(err, c)
		return
	}

	c.JSON(200, newYieldResponse(req, *result))
}

func (h ApiHandler) compoundYield(c *gin.Context) {
	var requestBody compoundYieldRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	req := domain.YieldRequest{
		Mode:               domain.YieldModeCompound,
		Principal:          requestBody.Principal,
		AnnualRate:         h.rateOrDefault(requestBody.AnnualRate),
		TotalDays:          requestBody.TotalDays,
		CompoundPeriodDays: requestBody.CompoundPeriodDays,
	}
	result, err := calculator.Yield(req)
	if err != nil {
		returnCalculatorError(err, c)
		return
	}

	c.JSON(200, newYieldResponse(req, *result))
}

func (h ApiHandler) yieldScenarios(c *gin.Context) {
	rate := h.Cfg.Yield.AnnualRate
	if raw := c.Query("rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid rate %q: %w", raw, calculator.ErrInvalidArgument), c, 400)
			return
		}
		rate = parsed
	}

	out, err := h.YieldSimulationService.SimulateDefaults(rate)
	if err != nil {
		returnCalculatorError(err, c)
		return
	}

	c.JSON(200, out)
}
