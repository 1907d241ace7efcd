package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neuroljus/neurohus/internal/ai"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/request"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/domain"
)

type Moderator interface {
	ModerateText(text, role string) domain.ModerationResult
	ModerateReview(review domain.Review, role string) domain.ReviewModeration
}

type TrendAnalyzer interface {
	Analyze(items []domain.TrendItem, municipality, category string) (domain.TrendReport, error)
}

type InsightGenerator interface {
	Dashboard(m domain.PlatformMetrics) domain.DashboardInsights
	MonthlyReport(m domain.MonthlyMetrics) domain.MonthlyReport
}

type AIHandler struct {
	moderator Moderator
	trends    TrendAnalyzer
	insights  InsightGenerator
}

func NewAIHandler(moderator Moderator, trends TrendAnalyzer, insights InsightGenerator) *AIHandler {
	return &AIHandler{
		moderator: moderator,
		trends:    trends,
		insights:  insights,
	}
}

// HandleModerateText godoc
// @Summary      Moderate a text
// @Description  Keyword and pattern heuristics for safety and empathy, no model inference
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      request.ModerateTextRequest  true  "Text"
// @Success      200    {object}  domain.ModerationResult
// @Failure      400    {object}  response.Err
// @Router       /ai/moderate/text [post]
func (h *AIHandler) HandleModerateText(ctx *gin.Context) {
	var input request.ModerateTextRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, h.moderator.ModerateText(input.Text, input.Role))
}

// HandleModerateReview godoc
// @Summary      Moderate a provider review
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      request.ModerateReviewRequest  true  "Review"
// @Success      200    {object}  domain.ReviewModeration
// @Failure      400    {object}  response.Err
// @Router       /ai/moderate/review [post]
func (h *AIHandler) HandleModerateReview(ctx *gin.Context) {
	var input request.ModerateReviewRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, h.moderator.ModerateReview(input.Review, input.Role))
}

// HandleImproveText godoc
// @Summary      Suggest a softer phrasing
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      request.ImproveTextRequest  true  "Text"
// @Success      200    {object}  response.ImprovedText
// @Failure      400    {object}  response.Err
// @Router       /ai/improve [post]
func (h *AIHandler) HandleImproveText(ctx *gin.Context) {
	var input request.ImproveTextRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ImprovedText{Original: input.Text, Improved: ai.ImproveText(input.Text)})
}

// HandleRecommend godoc
// @Summary      Rank providers for a user
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecommendRequest  true  "User and candidate providers"
// @Success      200    {array}   domain.Recommendation
// @Failure      400    {object}  response.Err
// @Router       /ai/recommendations [post]
func (h *AIHandler) HandleRecommend(ctx *gin.Context) {
	var input request.RecommendRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, ai.Recommend(input.User, input.Providers, input.Limit))
}

// HandleAnalyzeTrends godoc
// @Summary      Trend analysis of user content
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      request.TrendRequest  true  "Items and filters"
// @Success      200    {object}  domain.TrendReport
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /ai/trends [post]
func (h *AIHandler) HandleAnalyzeTrends(ctx *gin.Context) {
	var input request.TrendRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.trends.Analyze(input.Items, input.Municipality, input.Category)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleAnalyzeTrends -> h.trends.Analyze", err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleDashboardInsights godoc
// @Summary      Insights for the admin dashboard
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      domain.PlatformMetrics  true  "Platform metrics"
// @Success      200    {object}  domain.DashboardInsights
// @Failure      400    {object}  response.Err
// @Router       /ai/insights/dashboard [post]
func (h *AIHandler) HandleDashboardInsights(ctx *gin.Context) {
	var input domain.PlatformMetrics
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, h.insights.Dashboard(input))
}

// HandleMonthlyReport godoc
// @Summary      Monthly report
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      domain.MonthlyMetrics  true  "Monthly figures"
// @Success      200    {object}  domain.MonthlyReport
// @Failure      400    {object}  response.Err
// @Router       /ai/insights/monthly [post]
func (h *AIHandler) HandleMonthlyReport(ctx *gin.Context) {
	var input domain.MonthlyMetrics
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, h.insights.MonthlyReport(input))
}
