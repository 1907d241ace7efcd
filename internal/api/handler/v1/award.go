package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neuroljus/neurohus/internal/api/handler/v1/request"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/service"
)

type AwardService interface {
	ListAwards(ctx context.Context) ([]domain.AwardListing, error)
	CreateAward(ctx context.Context, award domain.Award) (domain.Award, error)
	ListNominations(ctx context.Context, awardID string) ([]domain.Nomination, error)
	CreateNomination(ctx context.Context, n domain.Nomination) (domain.Nomination, error)
	CastVote(ctx context.Context, nominationID, voterID, reason string) (domain.Vote, domain.Nomination, error)
	Results(ctx context.Context, awardID string) (domain.AwardResults, error)
	UserVotes(ctx context.Context, userID string) ([]domain.UserVote, error)
	Statistics(ctx context.Context) (domain.AwardStatistics, error)
	Overview(ctx context.Context) (domain.AwardsOverview, error)
	DeclareWinners(ctx context.Context, awardID string) ([]domain.Nomination, error)
}

type AwardHandler struct {
	svc AwardService
}

func NewAwardHandler(svc AwardService) *AwardHandler {
	return &AwardHandler{
		svc: svc,
	}
}

// HandleGetOverview godoc
// @Summary      Awards overview
// @Description  Active awards, statistics and the number of open votings
// @Tags         awards
// @Produce      json
// @Success      200  {object}  domain.AwardsOverview
// @Failure      500  {object}  response.Err
// @Router       /awards/overview [get]
func (h *AwardHandler) HandleGetOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetOverview -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleListAwards godoc
// @Summary      List active awards
// @Tags         awards
// @Produce      json
// @Success      200  {array}   domain.AwardListing
// @Failure      500  {object}  response.Err
// @Router       /awards [get]
func (h *AwardHandler) HandleListAwards(ctx *gin.Context) {
	awards, err := h.svc.ListAwards(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListAwards -> h.svc.ListAwards -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, awards)
}

// HandleCreateAward godoc
// @Summary      Create an award
// @Tags         awards
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateAwardRequest  true  "Award"
// @Success      201    {object}  domain.Award
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /awards [post]
func (h *AwardHandler) HandleCreateAward(ctx *gin.Context) {
	var input request.CreateAwardRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	award, err := h.svc.CreateAward(ctx.Request.Context(), input.Award())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateAward -> h.svc.CreateAward", err))
		return
	}

	ctx.JSON(http.StatusCreated, award)
}

// HandleGetResults godoc
// @Summary      Voting results of an award
// @Tags         awards
// @Produce      json
// @Param        awardID  path      string  true  "Award ID"
// @Success      200      {object}  domain.AwardResults
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /awards/{awardID}/results [get]
func (h *AwardHandler) HandleGetResults(ctx *gin.Context) {
	awardID := ctx.Param("awardID")

	results, err := h.svc.Results(ctx.Request.Context(), awardID)
	if err != nil {
		if errors.Is(err, service.ErrAwardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("utmärkelse", "id", awardID))
			return
		}

		err = fmt.Errorf("HandleGetResults -> h.svc.Results -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// HandleDeclareWinners godoc
// @Summary      Mark the winners of a closed award
// @Tags         awards
// @Produce      json
// @Param        awardID  path      string  true  "Award ID"
// @Success      200      {array}   domain.Nomination
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /awards/{awardID}/winners [post]
func (h *AwardHandler) HandleDeclareWinners(ctx *gin.Context) {
	awardID := ctx.Param("awardID")

	winners, err := h.svc.DeclareWinners(ctx.Request.Context(), awardID)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleDeclareWinners -> h.svc.DeclareWinners", err))
		return
	}

	ctx.JSON(http.StatusOK, winners)
}

// HandleGetStatistics godoc
// @Summary      Award statistics
// @Tags         awards
// @Produce      json
// @Success      200  {object}  domain.AwardStatistics
// @Failure      500  {object}  response.Err
// @Router       /awards/statistics [get]
func (h *AwardHandler) HandleGetStatistics(ctx *gin.Context) {
	stats, err := h.svc.Statistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStatistics -> h.svc.Statistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleListNominations godoc
// @Summary      List nominations
// @Description  Sorted by vote count, highest first
// @Tags         nominations
// @Produce      json
// @Param        award_id  query     string  false  "Only nominations of this award"
// @Success      200       {array}   domain.Nomination
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /nominations [get]
func (h *AwardHandler) HandleListNominations(ctx *gin.Context) {
	nominations, err := h.svc.ListNominations(ctx.Request.Context(), ctx.Query("award_id"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleListNominations -> h.svc.ListNominations", err))
		return
	}

	ctx.JSON(http.StatusOK, nominations)
}

// HandleCreateNomination godoc
// @Summary      Nominate a candidate
// @Tags         nominations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateNominationRequest  true  "Nomination"
// @Success      201    {object}  domain.Nomination
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /nominations [post]
func (h *AwardHandler) HandleCreateNomination(ctx *gin.Context) {
	var input request.CreateNominationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	nomination, err := h.svc.CreateNomination(ctx.Request.Context(), input.Nomination())
	if err != nil {
		if errors.Is(err, service.ErrAwardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("utmärkelse", "id", input.AwardID))
			return
		}

		response.RenderErr(ctx, serviceErr("HandleCreateNomination -> h.svc.CreateNomination", err))
		return
	}

	ctx.JSON(http.StatusCreated, nomination)
}

// HandleVote godoc
// @Summary      Vote for a nomination
// @Description  One vote per user and nomination, only while the award's voting window is open
// @Tags         nominations
// @Accept       json
// @Produce      json
// @Param        nominationID  path      string               true  "Nomination ID"
// @Param        input         body      request.VoteRequest  true  "Voter"
// @Success      201           {object}  response.VoteCast
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      409           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /nominations/{nominationID}/votes [post]
func (h *AwardHandler) HandleVote(ctx *gin.Context) {
	nominationID := ctx.Param("nominationID")

	var input request.VoteRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vote, nomination, err := h.svc.CastVote(ctx.Request.Context(), nominationID, input.UserID, input.Reason)
	if err != nil {
		if errors.Is(err, service.ErrNominationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("nominering", "id", nominationID))
			return
		}

		response.RenderErr(ctx, serviceErr("HandleVote -> h.svc.CastVote", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.VoteCast{
		VoteID:     vote.ID,
		Nomination: nomination,
		Message:    "Tack för din röst!",
	})
}

// HandleGetUserVotes godoc
// @Summary      Votes cast by a user
// @Tags         nominations
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   domain.UserVote
// @Failure      500     {object}  response.Err
// @Router       /users/{userID}/votes [get]
func (h *AwardHandler) HandleGetUserVotes(ctx *gin.Context) {
	votes, err := h.svc.UserVotes(ctx.Request.Context(), ctx.Param("userID"))
	if err != nil {
		err = fmt.Errorf("HandleGetUserVotes -> h.svc.UserVotes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, votes)
}
