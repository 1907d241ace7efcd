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
)

type LabService interface {
	ListResearch(ctx context.Context, category, term string) ([]domain.ResearchPost, error)
	GetResearch(ctx context.Context, id string) (domain.ResearchPost, error)
	CreateResearch(ctx context.Context, p domain.ResearchPost) (domain.ResearchPost, error)
	SearchResearch(ctx context.Context, term string) (domain.ResearchSearch, error)
	ListDatasets(ctx context.Context, category string) ([]domain.Dataset, error)
	GetDataset(ctx context.Context, id string) (domain.Dataset, error)
	CreateDataset(ctx context.Context, d domain.Dataset) (domain.Dataset, error)
	Download(ctx context.Context, id string) (domain.DatasetDownload, error)
	Statistics(ctx context.Context) (domain.LabStatistics, error)
	Overview(ctx context.Context) (domain.LabOverview, error)
}

type LabHandler struct {
	svc LabService
}

func NewLabHandler(svc LabService) *LabHandler {
	return &LabHandler{
		svc: svc,
	}
}

// HandleGetOverview godoc
// @Summary      Lab overview
// @Tags         lab
// @Produce      json
// @Success      200  {object}  domain.LabOverview
// @Failure      500  {object}  response.Err
// @Router       /lab/overview [get]
func (h *LabHandler) HandleGetOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetOverview -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleGetStatistics godoc
// @Summary      Research and dataset statistics
// @Tags         lab
// @Produce      json
// @Success      200  {object}  domain.LabStatistics
// @Failure      500  {object}  response.Err
// @Router       /lab/statistics [get]
func (h *LabHandler) HandleGetStatistics(ctx *gin.Context) {
	stats, err := h.svc.Statistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStatistics -> h.svc.Statistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleListResearch godoc
// @Summary      List research posts
// @Description  Highest impact score first
// @Tags         lab
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Param        q         query     string  false  "Search in title, abstract and keywords"
// @Success      200       {array}   domain.ResearchPost
// @Failure      500       {object}  response.Err
// @Router       /lab/research [get]
func (h *LabHandler) HandleListResearch(ctx *gin.Context) {
	posts, err := h.svc.ListResearch(ctx.Request.Context(), ctx.Query("category"), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("HandleListResearch -> h.svc.ListResearch -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// HandleSearchResearch godoc
// @Summary      Search research posts grouped by category
// @Tags         lab
// @Produce      json
// @Param        q  query     string  true  "Search term"
// @Success      200  {object}  domain.ResearchSearch
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /lab/research/search [get]
func (h *LabHandler) HandleSearchResearch(ctx *gin.Context) {
	term := ctx.Query("q")
	if term == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("sökterm saknas")))
		return
	}

	result, err := h.svc.SearchResearch(ctx.Request.Context(), term)
	if err != nil {
		err = fmt.Errorf("HandleSearchResearch -> h.svc.SearchResearch -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleGetResearch godoc
// @Summary      Get a research post
// @Tags         lab
// @Produce      json
// @Param        postID  path      string  true  "Post ID"
// @Success      200     {object}  domain.ResearchPost
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /lab/research/{postID} [get]
func (h *LabHandler) HandleGetResearch(ctx *gin.Context) {
	post, err := h.svc.GetResearch(ctx.Request.Context(), ctx.Param("postID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetResearch -> h.svc.GetResearch", err))
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// HandleCreateResearch godoc
// @Summary      Publish a research post
// @Tags         lab
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateResearchRequest  true  "Post"
// @Success      201    {object}  domain.ResearchPost
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /lab/research [post]
func (h *LabHandler) HandleCreateResearch(ctx *gin.Context) {
	var input request.CreateResearchRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	post, err := h.svc.CreateResearch(ctx.Request.Context(), input.Post())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateResearch -> h.svc.CreateResearch", err))
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// HandleListDatasets godoc
// @Summary      List active datasets
// @Description  Most downloaded first
// @Tags         lab
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Success      200       {array}   domain.Dataset
// @Failure      500       {object}  response.Err
// @Router       /lab/datasets [get]
func (h *LabHandler) HandleListDatasets(ctx *gin.Context) {
	datasets, err := h.svc.ListDatasets(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		err = fmt.Errorf("HandleListDatasets -> h.svc.ListDatasets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, datasets)
}

// HandleGetDataset godoc
// @Summary      Get a dataset
// @Tags         lab
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset ID"
// @Success      200        {object}  domain.Dataset
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /lab/datasets/{datasetID} [get]
func (h *LabHandler) HandleGetDataset(ctx *gin.Context) {
	dataset, err := h.svc.GetDataset(ctx.Request.Context(), ctx.Param("datasetID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetDataset -> h.svc.GetDataset", err))
		return
	}

	ctx.JSON(http.StatusOK, dataset)
}

// HandleCreateDataset godoc
// @Summary      Register a dataset
// @Tags         lab
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDatasetRequest  true  "Dataset"
// @Success      201    {object}  domain.Dataset
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /lab/datasets [post]
func (h *LabHandler) HandleCreateDataset(ctx *gin.Context) {
	var input request.CreateDatasetRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	dataset, err := h.svc.CreateDataset(ctx.Request.Context(), input.Dataset())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateDataset -> h.svc.CreateDataset", err))
		return
	}

	ctx.JSON(http.StatusCreated, dataset)
}

// HandleDownloadDataset godoc
// @Summary      Download a dataset
// @Description  Counts the download and returns the file location
// @Tags         lab
// @Produce      json
// @Param        datasetID  path      string  true  "Dataset ID"
// @Success      200        {object}  domain.DatasetDownload
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /lab/datasets/{datasetID}/download [post]
func (h *LabHandler) HandleDownloadDataset(ctx *gin.Context) {
	download, err := h.svc.Download(ctx.Request.Context(), ctx.Param("datasetID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleDownloadDataset -> h.svc.Download", err))
		return
	}

	ctx.JSON(http.StatusOK, download)
}
