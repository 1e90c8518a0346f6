package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeby-aftab/trip-ai-backend/internal/currency"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/services"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// PlanHandler exposes trip-plan generation and currency display endpoints.
type PlanHandler struct {
	tripPlanService *services.TripPlanService
	rateService     *services.RateService
}

func NewPlanHandler(tripPlanService *services.TripPlanService, rateService *services.RateService) *PlanHandler {
	return &PlanHandler{
		tripPlanService: tripPlanService,
		rateService:     rateService,
	}
}

// GeneratePlansRequest is the request body for plan generation. The budget
// may be denominated in any supported currency; it is converted to USD
// before the generation call.
type GeneratePlansRequest struct {
	Origin         string  `json:"origin" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	Budget         float64 `json:"budget" binding:"required,gt=0"`
	BudgetCurrency string  `json:"budgetCurrency,omitempty"`
}

// GeneratePlansResponse mirrors the generator's envelope shape.
type GeneratePlansResponse struct {
	TripPlans []types.TripPlan `json:"tripPlans"`
}

// GeneratePlansHandler runs one generation round trip and returns the
// validated plan set, or the pipeline's first failure with its kind intact.
func (h *PlanHandler) GeneratePlansHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req GeneratePlansRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	budgetCurrency := req.BudgetCurrency
	if budgetCurrency == "" {
		budgetCurrency = "USD"
	}

	budgetUSD := req.Budget
	if budgetCurrency != "USD" {
		converted, err := currency.ToUSD(req.Budget, budgetCurrency, h.rateService.Snapshot())
		if err != nil {
			_ = c.Error(err)
			return
		}
		budgetUSD = converted
	}

	plans, err := h.tripPlanService.Generate(c.Request.Context(), req.Origin, req.Destination, budgetUSD)
	if err != nil {
		log.Errorw("Plan generation failed",
			"origin", req.Origin,
			"destination", req.Destination,
			"error", err,
		)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, GeneratePlansResponse{TripPlans: plans})
}

// FormatAmountRequest is the request body for display-time conversion.
type FormatAmountRequest struct {
	AmountUSD      float64 `json:"amountUsd"`
	TargetCurrency string  `json:"targetCurrency" binding:"required"`
}

// FormatAmountHandler converts a stored USD amount into a display string
// for the target currency using the current rate snapshot. Missing rates
// degrade to a marked USD fallback; this endpoint never fails for them.
func (h *PlanHandler) FormatAmountHandler(c *gin.Context) {
	var req FormatAmountRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	formatted := currency.Format(req.AmountUSD, req.TargetCurrency, h.rateService.Snapshot())
	c.JSON(http.StatusOK, gin.H{"formatted": formatted})
}

// ListCurrenciesHandler returns the static supported-currency table.
func (h *PlanHandler) ListCurrenciesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": types.SupportedCurrencies})
}

// ListDestinationsHandler returns the default destination suggestions.
func (h *PlanHandler) ListDestinationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": types.DestinationSuggestions})
}

// GetRatesHandler returns the current exchange-rate snapshot. rates is null
// until the first successful fetch; clients then stay on USD-only display.
func (h *PlanHandler) GetRatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"base":  "USD",
		"rates": h.rateService.Snapshot(),
	})
}

// RefreshRatesHandler fetches a fresh rate table on explicit caller action.
func (h *PlanHandler) RefreshRatesHandler(c *gin.Context) {
	rates, err := h.rateService.Refresh(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"base":  "USD",
		"rates": rates,
	})
}
