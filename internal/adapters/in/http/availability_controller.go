package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/in"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
	"github.com/suchimauz/engineer-availability-resolver/internal/utils"
)

type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/engineers/:engineerId/availability", c.getEngineerAvailability)
		api.GET("/availability", c.getAvailability)
		api.POST("/rules", c.createRules)
		api.POST("/rules/chatbot", c.createChatbotRule)
		api.DELETE("/rules/:ruleId", c.deleteRule)
	}
}

func (c *AvailabilityController) getEngineerAvailability(ctx *gin.Context) {
	engineerID := ctx.Param("engineerId")

	startDate, err := utils.ParseDate(ctx.Query("startDate"), c.cfg.App.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format"})
		return
	}

	endDate, err := utils.ParseDate(ctx.Query("endDate"), c.cfg.App.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format"})
		return
	}

	if endDate.Before(startDate) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return
	}

	days, err := c.useCase.GetAvailability(ctx.Request.Context(), engineerID, startDate, endDate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"engineerId": engineerID,
		"days":       days,
	})
}

func (c *AvailabilityController) getAvailability(ctx *gin.Context) {
	date, err := utils.ParseDate(ctx.Query("date"), c.cfg.App.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	// Окно времени опционально, по умолчанию весь день
	startTime, err := json_types.ParseTime(ctx.DefaultQuery("startTime", "00:00"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startTime format"})
		return
	}
	endTime, err := json_types.ParseTime(ctx.DefaultQuery("endTime", "23:59"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endTime format"})
		return
	}

	var engineerIDs []string
	if engineers := ctx.Query("engineers"); engineers != "" {
		engineerIDs = strings.Split(engineers, ",")
	}

	// Детальная разбивка по слотам вместо сводки
	if ctx.Query("detailed") == "true" {
		perEngineerDays, err := c.useCase.GetBatchAvailability(ctx.Request.Context(), engineerIDs, date, date)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"engineers": perEngineerDays})
		return
	}

	summary, err := c.useCase.GetSummary(ctx.Request.Context(), engineerIDs, date, startTime, endTime)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

type CreateRulesRequest struct {
	Rules []domain.AvailabilityRule `json:"rules"`
}

func (c *AvailabilityController) createRules(ctx *gin.Context) {
	// Тело запроса - либо пакет {"rules": [...]}, либо одиночное правило
	var rules []domain.AvailabilityRule

	var batchReq CreateRulesRequest
	if err := ctx.ShouldBindBodyWith(&batchReq, binding.JSON); err == nil && len(batchReq.Rules) > 0 {
		rules = batchReq.Rules
	} else {
		var rule domain.AvailabilityRule
		if err := ctx.ShouldBindBodyWith(&rule, binding.JSON); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rules = []domain.AvailabilityRule{rule}
	}

	for _, rule := range rules {
		if err := validateRule(rule); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	created, err := c.useCase.CreateRules(ctx.Request.Context(), rules)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"rules": created})
}

func (c *AvailabilityController) createChatbotRule(ctx *gin.Context) {
	var req ChatbotRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := buildChatbotRule(req, c.cfg.App.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.useCase.CreateRules(ctx.Request.Context(), []domain.AvailabilityRule{rule})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"rules": created})
}

func (c *AvailabilityController) deleteRule(ctx *gin.Context) {
	ruleID := ctx.Param("ruleId")

	if err := c.useCase.DeleteRule(ctx.Request.Context(), ruleID); err != nil {
		if errors.Is(err, out.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ruleID})
}

func validateRule(rule domain.AvailabilityRule) error {
	if rule.EngineerID == "" {
		return errors.New("engineerId is required")
	}

	if !rule.Status.Valid() {
		return errors.New("status must be one of: available, maybe, unavailable")
	}

	switch rule.Type {
	case domain.RuleTypeOneTime:
		if rule.OneTime == nil {
			return errors.New("oneTime fields are required for one_time rule")
		}
		if !rule.OneTime.EndDateTime.Date.After(rule.OneTime.StartDateTime.Date) {
			return errors.New("endDateTime must be after startDateTime")
		}
	case domain.RuleTypeRecurring:
		if rule.Recurring == nil {
			return errors.New("recurring fields are required for recurring rule")
		}
		if len(rule.Recurring.RecurrenceDays) == 0 {
			return errors.New("recurrenceDays must not be empty")
		}
		for _, day := range rule.Recurring.RecurrenceDays {
			if !day.Valid() {
				return fmt.Errorf("unknown weekday: %q", day)
			}
		}
	default:
		return errors.New("ruleType must be one of: one_time, recurring")
	}

	return nil
}
