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

type CertificateService interface {
	Get(ctx context.Context, id string) (domain.Certificate, error)
	Verify(ctx context.Context, id string) (domain.CertificateVerification, error)
	CreateTemplate(ctx context.Context, t domain.CertificateTemplate) (domain.CertificateTemplate, error)
	GetTemplate(ctx context.Context, id string) (domain.CertificateTemplate, error)
	Statistics(ctx context.Context) (domain.CertificateStatistics, error)
}

type CertificateHandler struct {
	svc CertificateService
}

func NewCertificateHandler(svc CertificateService) *CertificateHandler {
	return &CertificateHandler{
		svc: svc,
	}
}

// HandleGetCertificate godoc
// @Summary      Get an issued certificate
// @Tags         certificates
// @Produce      json
// @Param        certificateID  path      string  true  "Certificate ID"
// @Success      200            {object}  domain.Certificate
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /academy/certificates/{certificateID} [get]
func (h *CertificateHandler) HandleGetCertificate(ctx *gin.Context) {
	cert, err := h.svc.Get(ctx.Request.Context(), ctx.Param("certificateID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetCertificate -> h.svc.Get", err))
		return
	}

	ctx.JSON(http.StatusOK, cert)
}

// HandleVerifyCertificate godoc
// @Summary      Verify a certificate
// @Tags         certificates
// @Produce      json
// @Param        certificateID  path      string  true  "Certificate ID"
// @Success      200            {object}  domain.CertificateVerification
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /academy/certificates/{certificateID}/verify [get]
func (h *CertificateHandler) HandleVerifyCertificate(ctx *gin.Context) {
	v, err := h.svc.Verify(ctx.Request.Context(), ctx.Param("certificateID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleVerifyCertificate -> h.svc.Verify", err))
		return
	}

	ctx.JSON(http.StatusOK, v)
}

// HandleCreateTemplate godoc
// @Summary      Create a certificate template
// @Description  Omitted fields are taken from the standard template
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTemplateRequest  true  "Template"
// @Success      201    {object}  domain.CertificateTemplate
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /academy/certificates/templates [post]
func (h *CertificateHandler) HandleCreateTemplate(ctx *gin.Context) {
	var input request.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tpl, err := h.svc.CreateTemplate(ctx.Request.Context(), input.Template())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateTemplate -> h.svc.CreateTemplate", err))
		return
	}

	ctx.JSON(http.StatusCreated, tpl)
}

// HandleGetTemplate godoc
// @Summary      Get a certificate template
// @Tags         certificates
// @Produce      json
// @Param        templateID  path      string  true  "Template ID"
// @Success      200         {object}  domain.CertificateTemplate
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /academy/certificates/templates/{templateID} [get]
func (h *CertificateHandler) HandleGetTemplate(ctx *gin.Context) {
	tpl, err := h.svc.GetTemplate(ctx.Request.Context(), ctx.Param("templateID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetTemplate -> h.svc.GetTemplate", err))
		return
	}

	ctx.JSON(http.StatusOK, tpl)
}

// HandleGetStatistics godoc
// @Summary      Certificate statistics
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  domain.CertificateStatistics
// @Failure      500  {object}  response.Err
// @Router       /academy/certificates/statistics [get]
func (h *CertificateHandler) HandleGetStatistics(ctx *gin.Context) {
	stats, err := h.svc.Statistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStatistics -> h.svc.Statistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
