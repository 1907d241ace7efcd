package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neuroljus/neurohus/internal/api/handler/v1/request"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/domain"
)

type DocsService interface {
	ListGuides(ctx context.Context, language, category string) ([]domain.Guide, error)
	GetGuide(ctx context.Context, id string) (domain.Guide, error)
	CreateGuide(ctx context.Context, g domain.Guide) (domain.Guide, error)
	UpdateGuide(ctx context.Context, id string, u domain.GuideUpdate) (domain.Guide, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, term, language string) ([]domain.Guide, error)
	Statistics(ctx context.Context) (domain.GuideStatistics, error)
	Overview(ctx context.Context) (domain.DocsOverview, error)
}

type DocsHandler struct {
	svc DocsService
}

func NewDocsHandler(svc DocsService) *DocsHandler {
	return &DocsHandler{
		svc: svc,
	}
}

// HandleGetOverview godoc
// @Summary      Docs overview
// @Tags         docs
// @Produce      json
// @Success      200  {object}  domain.DocsOverview
// @Failure      500  {object}  response.Err
// @Router       /docs/overview [get]
func (h *DocsHandler) HandleGetOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetOverview -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleGetStatistics godoc
// @Summary      Guide statistics
// @Tags         docs
// @Produce      json
// @Success      200  {object}  domain.GuideStatistics
// @Failure      500  {object}  response.Err
// @Router       /docs/statistics [get]
func (h *DocsHandler) HandleGetStatistics(ctx *gin.Context) {
	stats, err := h.svc.Statistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStatistics -> h.svc.Statistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleListCategories godoc
// @Summary      Guide categories
// @Tags         docs
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  response.Err
// @Router       /docs/categories [get]
func (h *DocsHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.Categories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCategories -> h.svc.Categories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleListGuides godoc
// @Summary      List guides
// @Description  With q set, searches title, description and steps instead
// @Tags         docs
// @Produce      json
// @Param        language  query     string  false  "Language (default sv)"
// @Param        category  query     string  false  "Category"
// @Param        q         query     string  false  "Search term"
// @Success      200       {array}   domain.Guide
// @Failure      500       {object}  response.Err
// @Router       /docs/guides [get]
func (h *DocsHandler) HandleListGuides(ctx *gin.Context) {
	var (
		guides []domain.Guide
		err    error
	)
	if term := ctx.Query("q"); term != "" {
		guides, err = h.svc.Search(ctx.Request.Context(), term, ctx.Query("language"))
	} else {
		guides, err = h.svc.ListGuides(ctx.Request.Context(), ctx.Query("language"), ctx.Query("category"))
	}
	if err != nil {
		err = fmt.Errorf("HandleListGuides -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, guides)
}

// HandleGetGuide godoc
// @Summary      Get a guide
// @Tags         docs
// @Produce      json
// @Param        guideID  path      string  true  "Guide ID"
// @Success      200      {object}  domain.Guide
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /docs/guides/{guideID} [get]
func (h *DocsHandler) HandleGetGuide(ctx *gin.Context) {
	guide, err := h.svc.GetGuide(ctx.Request.Context(), ctx.Param("guideID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetGuide -> h.svc.GetGuide", err))
		return
	}

	ctx.JSON(http.StatusOK, guide)
}

// HandleCreateGuide godoc
// @Summary      Create a guide
// @Tags         docs
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateGuideRequest  true  "Guide"
// @Success      201    {object}  domain.Guide
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /docs/guides [post]
func (h *DocsHandler) HandleCreateGuide(ctx *gin.Context) {
	var input request.CreateGuideRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	guide, err := h.svc.CreateGuide(ctx.Request.Context(), input.Guide())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateGuide -> h.svc.CreateGuide", err))
		return
	}

	ctx.JSON(http.StatusCreated, guide)
}

// HandleUpdateGuide godoc
// @Summary      Update a guide
// @Description  Only the fields present in the body change
// @Tags         docs
// @Accept       json
// @Produce      json
// @Param        guideID  path      string                      true  "Guide ID"
// @Param        input    body      request.UpdateGuideRequest  true  "Changes"
// @Success      200      {object}  domain.Guide
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /docs/guides/{guideID} [patch]
func (h *DocsHandler) HandleUpdateGuide(ctx *gin.Context) {
	var input request.UpdateGuideRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	guide, err := h.svc.UpdateGuide(ctx.Request.Context(), ctx.Param("guideID"), input.Update())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleUpdateGuide -> h.svc.UpdateGuide", err))
		return
	}

	ctx.JSON(http.StatusOK, guide)
}
