package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neuroljus/neurohus/internal/api/handler/v1/request"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/domain"
)

type AcademyService interface {
	ListCourses(ctx context.Context, audience string) ([]domain.CourseSummary, error)
	GetCourse(ctx context.Context, id string) (domain.CourseDetails, error)
	CreateCourse(ctx context.Context, course domain.Course) (domain.Course, error)
	StartCourse(ctx context.Context, userID, courseID string) (domain.CourseProgress, error)
	CompleteModule(ctx context.Context, userID, courseID string, index int) (domain.CourseProgress, error)
	SubmitQuiz(ctx context.Context, userID, courseID string, answers []int, name string) (domain.QuizResult, error)
	UserCourses(ctx context.Context, userID string) ([]domain.UserCourse, error)
	GetCertificate(ctx context.Context, userID, courseID string) (domain.Certificate, error)
}

type AcademyHandler struct {
	svc AcademyService
}

func NewAcademyHandler(svc AcademyService) *AcademyHandler {
	return &AcademyHandler{
		svc: svc,
	}
}

// HandleListCourses godoc
// @Summary      List active courses
// @Tags         academy
// @Produce      json
// @Param        audience  query     string  false  "familj, assistent or kommun"
// @Success      200       {array}   domain.CourseSummary
// @Failure      500       {object}  response.Err
// @Router       /academy/courses [get]
func (h *AcademyHandler) HandleListCourses(ctx *gin.Context) {
	courses, err := h.svc.ListCourses(ctx.Request.Context(), ctx.Query("audience"))
	if err != nil {
		err = fmt.Errorf("HandleListCourses -> h.svc.ListCourses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// HandleGetCourse godoc
// @Summary      Course with modules and quiz
// @Description  Quiz questions are returned without their answers
// @Tags         academy
// @Produce      json
// @Param        courseID  path      string  true  "Course ID"
// @Success      200       {object}  domain.CourseDetails
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /academy/courses/{courseID} [get]
func (h *AcademyHandler) HandleGetCourse(ctx *gin.Context) {
	course, err := h.svc.GetCourse(ctx.Request.Context(), ctx.Param("courseID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetCourse -> h.svc.GetCourse", err))
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// HandleCreateCourse godoc
// @Summary      Create a course
// @Tags         academy
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCourseRequest  true  "Course"
// @Success      201    {object}  domain.Course
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /academy/courses [post]
func (h *AcademyHandler) HandleCreateCourse(ctx *gin.Context) {
	var input request.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	course, err := h.svc.CreateCourse(ctx.Request.Context(), input.Course())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateCourse -> h.svc.CreateCourse", err))
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// HandleStartCourse godoc
// @Summary      Start a course
// @Description  Starting an already started course returns the existing progress
// @Tags         academy
// @Accept       json
// @Produce      json
// @Param        courseID  path      string               true  "Course ID"
// @Param        input     body      request.UserRequest  true  "User"
// @Success      200       {object}  domain.CourseProgress
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /academy/courses/{courseID}/start [post]
func (h *AcademyHandler) HandleStartCourse(ctx *gin.Context) {
	var input request.UserRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	progress, err := h.svc.StartCourse(ctx.Request.Context(), input.UserID, ctx.Param("courseID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleStartCourse -> h.svc.StartCourse", err))
		return
	}

	ctx.JSON(http.StatusOK, progress)
}

// HandleCompleteModule godoc
// @Summary      Mark a module as completed
// @Tags         academy
// @Accept       json
// @Produce      json
// @Param        courseID  path      string               true  "Course ID"
// @Param        index     path      int                  true  "Module index, starting at 0"
// @Param        input     body      request.UserRequest  true  "User"
// @Success      200       {object}  domain.CourseProgress
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /academy/courses/{courseID}/modules/{index}/complete [post]
func (h *AcademyHandler) HandleCompleteModule(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("ogiltigt modulindex: %q", ctx.Param("index"))))
		return
	}

	var input request.UserRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	progress, err := h.svc.CompleteModule(ctx.Request.Context(), input.UserID, ctx.Param("courseID"), index)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCompleteModule -> h.svc.CompleteModule", err))
		return
	}

	ctx.JSON(http.StatusOK, progress)
}

// HandleSubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  A full score completes the course and issues a certificate
// @Tags         academy
// @Accept       json
// @Produce      json
// @Param        courseID  path      string                     true  "Course ID"
// @Param        input     body      request.SubmitQuizRequest  true  "Answers"
// @Success      200       {object}  domain.QuizResult
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /academy/courses/{courseID}/quiz [post]
func (h *AcademyHandler) HandleSubmitQuiz(ctx *gin.Context) {
	var input request.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.SubmitQuiz(ctx.Request.Context(), input.UserID, ctx.Param("courseID"), input.Answers, input.Name)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleSubmitQuiz -> h.svc.SubmitQuiz", err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleGetUserCourses godoc
// @Summary      Courses a user has started
// @Tags         academy
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   domain.UserCourse
// @Failure      500     {object}  response.Err
// @Router       /academy/users/{userID}/courses [get]
func (h *AcademyHandler) HandleGetUserCourses(ctx *gin.Context) {
	courses, err := h.svc.UserCourses(ctx.Request.Context(), ctx.Param("userID"))
	if err != nil {
		err = fmt.Errorf("HandleGetUserCourses -> h.svc.UserCourses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// HandleGetCourseCertificate godoc
// @Summary      Certificate of a completed course
// @Tags         academy
// @Produce      json
// @Param        userID    path      string  true  "User ID"
// @Param        courseID  path      string  true  "Course ID"
// @Success      200       {object}  domain.Certificate
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /academy/certifikat/{userID}/{courseID} [get]
func (h *AcademyHandler) HandleGetCourseCertificate(ctx *gin.Context) {
	cert, err := h.svc.GetCertificate(ctx.Request.Context(), ctx.Param("userID"), ctx.Param("courseID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetCourseCertificate -> h.svc.GetCertificate", err))
		return
	}

	ctx.JSON(http.StatusOK, cert)
}
