package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/neuroljus/neurohus/docs"
	"github.com/neuroljus/neurohus/internal/ai"
	"github.com/neuroljus/neurohus/internal/api/graphql"
	v1 "github.com/neuroljus/neurohus/internal/api/handler/v1"
	"github.com/neuroljus/neurohus/internal/api/middleware"
	"github.com/neuroljus/neurohus/internal/config"
	"github.com/neuroljus/neurohus/internal/repository"
	"github.com/neuroljus/neurohus/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	// Hub carries live forum replies. The caller runs it.
	Hub *v1.LiveHub

	now func() time.Time
}

type handlers struct {
	award        *v1.AwardHandler
	awardGraphQL gin.HandlerFunc
	academy      *v1.AcademyHandler
	certificate  *v1.CertificateHandler
	community    *v1.CommunityHandler
	docs         *v1.DocsHandler
	lab          *v1.LabHandler
	ai           *v1.AIHandler
}

// NewServer builds every store, service and handler and mounts the routes.
// With seeding enabled the stores start with the demo records, timestamped
// relative to now().
func NewServer(conf *config.AppConfig, now func() time.Time) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Hub:    v1.NewLiveHub(now),
		now:    now,
	}

	s.MountMiddlewares()

	var (
		h   handlers
		err error
	)
	if h.award, h.awardGraphQL, err = s.initAwardHandlers(); err != nil {
		return nil, err
	}
	if h.academy, h.certificate, err = s.initAcademyHandlers(); err != nil {
		return nil, err
	}
	if h.community, err = s.initCommunityHandler(); err != nil {
		return nil, err
	}
	if h.docs, err = s.initDocsHandler(); err != nil {
		return nil, err
	}
	if h.lab, err = s.initLabHandler(); err != nil {
		return nil, err
	}
	h.ai = s.initAIHandler()

	s.MountHandlers(h)

	return s, nil
}

func (s *Server) initAwardHandlers() (*v1.AwardHandler, gin.HandlerFunc, error) {
	repo := repository.NewAwardRepository()
	if s.Config.Seed.Enabled {
		if err := repository.SeedAwards(context.Background(), repo, s.now()); err != nil {
			return nil, nil, fmt.Errorf("repository.SeedAwards -> %w", err)
		}
	}
	svc := service.NewAwardService(repo, s.now)

	gql, err := graphql.NewHandler(svc)
	if err != nil {
		return nil, nil, fmt.Errorf("graphql.NewHandler -> %w", err)
	}

	return v1.NewAwardHandler(svc), gin.WrapH(gql), nil
}

func (s *Server) initAcademyHandlers() (*v1.AcademyHandler, *v1.CertificateHandler, error) {
	courses := repository.NewCourseRepository()
	if s.Config.Seed.Enabled {
		if err := repository.SeedCourses(context.Background(), courses, s.now()); err != nil {
			return nil, nil, fmt.Errorf("repository.SeedCourses -> %w", err)
		}
	}
	certificates := service.NewCertificateService(repository.NewCertificateRepository(), s.now)
	academy := service.NewAcademyService(courses, certificates, s.now)

	return v1.NewAcademyHandler(academy), v1.NewCertificateHandler(certificates), nil
}

func (s *Server) initCommunityHandler() (*v1.CommunityHandler, error) {
	repo := repository.NewForumRepository()
	if s.Config.Seed.Enabled {
		if err := repository.SeedForum(context.Background(), repo, s.now()); err != nil {
			return nil, fmt.Errorf("repository.SeedForum -> %w", err)
		}
	}
	svc := service.NewCommunityService(repo, s.Hub, s.now)
	upgrader := v1.NewUpgrader(s.Config.API.AllowedCORSDomains)

	return v1.NewCommunityHandler(svc, s.Hub, upgrader), nil
}

func (s *Server) initDocsHandler() (*v1.DocsHandler, error) {
	repo := repository.NewGuideRepository()
	if s.Config.Seed.Enabled {
		if err := repository.SeedGuides(context.Background(), repo, s.now()); err != nil {
			return nil, fmt.Errorf("repository.SeedGuides -> %w", err)
		}
	}

	return v1.NewDocsHandler(service.NewDocsService(repo, s.now)), nil
}

func (s *Server) initLabHandler() (*v1.LabHandler, error) {
	repo := repository.NewLabRepository()
	if s.Config.Seed.Enabled {
		if err := repository.SeedLab(context.Background(), repo, s.now()); err != nil {
			return nil, fmt.Errorf("repository.SeedLab -> %w", err)
		}
	}

	return v1.NewLabHandler(service.NewLabService(repo, s.now)), nil
}

func (s *Server) initAIHandler() *v1.AIHandler {
	return v1.NewAIHandler(
		ai.NewModerator(s.now),
		ai.NewTrendAnalyzer(s.now),
		ai.NewInsightGenerator(s.now),
	)
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	s.Router.GET("/", v1.HandleRoot)
	s.Router.GET("/health", v1.HandleHealthcheck)
	s.Router.GET("/api/verksamheter", v1.HandleListProviders)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	awards := s.Router.Group(basePath)
	{
		awards.GET("/awards", h.award.HandleListAwards)
		awards.POST("/awards", h.award.HandleCreateAward)
		awards.GET("/awards/overview", h.award.HandleGetOverview)
		awards.GET("/awards/statistics", h.award.HandleGetStatistics)
		awards.GET("/awards/graphql", h.awardGraphQL)
		awards.POST("/awards/graphql", h.awardGraphQL)
		awards.GET("/awards/:awardID/results", h.award.HandleGetResults)
		awards.POST("/awards/:awardID/winners", h.award.HandleDeclareWinners)
		awards.GET("/nominations", h.award.HandleListNominations)
		awards.POST("/nominations", h.award.HandleCreateNomination)
		awards.POST("/nominations/:nominationID/votes", h.award.HandleVote)
		awards.GET("/users/:userID/votes", h.award.HandleGetUserVotes)
	}

	academy := s.Router.Group(basePath + "/academy")
	{
		academy.GET("/courses", h.academy.HandleListCourses)
		academy.POST("/courses", h.academy.HandleCreateCourse)
		academy.GET("/courses/:courseID", h.academy.HandleGetCourse)
		academy.POST("/courses/:courseID/start", h.academy.HandleStartCourse)
		academy.POST("/courses/:courseID/modules/:index/complete", h.academy.HandleCompleteModule)
		academy.POST("/courses/:courseID/quiz", h.academy.HandleSubmitQuiz)
		academy.GET("/users/:userID/courses", h.academy.HandleGetUserCourses)
		academy.GET("/certifikat/:userID/:courseID", h.academy.HandleGetCourseCertificate)

		academy.GET("/certificates/statistics", h.certificate.HandleGetStatistics)
		academy.POST("/certificates/templates", h.certificate.HandleCreateTemplate)
		academy.GET("/certificates/templates/:templateID", h.certificate.HandleGetTemplate)
		academy.GET("/certificates/:certificateID", h.certificate.HandleGetCertificate)
		academy.GET("/certificates/:certificateID/verify", h.certificate.HandleVerifyCertificate)
	}

	community := s.Router.Group(basePath + "/community")
	{
		community.GET("/overview", h.community.HandleGetOverview)
		community.GET("/statistics", h.community.HandleGetStatistics)
		community.GET("/categories", h.community.HandleListCategories)
		community.GET("/threads", h.community.HandleListThreads)
		community.POST("/threads", h.community.HandleCreateThread)
		community.GET("/threads/:threadID", h.community.HandleGetThread)
		community.POST("/threads/:threadID/replies", h.community.HandleCreateReply)
		community.GET("/threads/:threadID/live", h.community.HandleLive)
		community.POST("/moderate", h.community.HandleModerate)
		community.POST("/circles", h.community.HandleCreateCircle)
		community.POST("/circles/:circleID/members", h.community.HandleAddMember)
		community.DELETE("/circles/:circleID/members/:userID", h.community.HandleRemoveMember)
		community.GET("/users/:userID/circles", h.community.HandleGetUserCircles)
	}

	docsGroup := s.Router.Group(basePath + "/docs")
	{
		docsGroup.GET("/overview", h.docs.HandleGetOverview)
		docsGroup.GET("/statistics", h.docs.HandleGetStatistics)
		docsGroup.GET("/categories", h.docs.HandleListCategories)
		docsGroup.GET("/guides", h.docs.HandleListGuides)
		docsGroup.POST("/guides", h.docs.HandleCreateGuide)
		docsGroup.GET("/guides/:guideID", h.docs.HandleGetGuide)
		docsGroup.PATCH("/guides/:guideID", h.docs.HandleUpdateGuide)
	}

	lab := s.Router.Group(basePath + "/lab")
	{
		lab.GET("/overview", h.lab.HandleGetOverview)
		lab.GET("/statistics", h.lab.HandleGetStatistics)
		lab.GET("/research", h.lab.HandleListResearch)
		lab.POST("/research", h.lab.HandleCreateResearch)
		lab.GET("/research/search", h.lab.HandleSearchResearch)
		lab.GET("/research/:postID", h.lab.HandleGetResearch)
		lab.GET("/datasets", h.lab.HandleListDatasets)
		lab.POST("/datasets", h.lab.HandleCreateDataset)
		lab.GET("/datasets/:datasetID", h.lab.HandleGetDataset)
		lab.POST("/datasets/:datasetID/download", h.lab.HandleDownloadDataset)
	}

	aiGroup := s.Router.Group(basePath + "/ai")
	{
		aiGroup.POST("/moderate/text", h.ai.HandleModerateText)
		aiGroup.POST("/moderate/review", h.ai.HandleModerateReview)
		aiGroup.POST("/improve", h.ai.HandleImproveText)
		aiGroup.POST("/recommendations", h.ai.HandleRecommend)
		aiGroup.POST("/trends", h.ai.HandleAnalyzeTrends)
		aiGroup.POST("/insights/dashboard", h.ai.HandleDashboardInsights)
		aiGroup.POST("/insights/monthly", h.ai.HandleMonthlyReport)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Neuroljus Neurohus API"
	docs.SwaggerInfo.Description = "Sveriges första digitala hus för empati, kunskap och neurodiversitet"
	docs.SwaggerInfo.Version = v1.Version
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
