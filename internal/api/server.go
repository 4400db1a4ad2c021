package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/SparkHacks/spark-dashboard-sub000/docs"
	v1 "github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/middleware"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/config"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/questions"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository/dao"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, store *questions.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := initUserService(db)
	authHandler := s.initAuthHandler(db)
	applicationHandler := s.initApplicationHandler(db, userSvc, store)
	adminHandler := s.initAdminHandler(db, userSvc)
	foodGroupHandler := s.initFoodGroupHandler(db, userSvc)
	scheduleHandler := s.initScheduleHandler(db, userSvc)
	s.MountHandlers(authHandler, applicationHandler, adminHandler, foodGroupHandler, scheduleHandler)

	return s
}

func initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initApplicationHandler(db *gorm.DB, userSvc *service.UserService, store *questions.Store) *v1.ApplicationHandler {
	applicantDAO := dao.NewApplicantDAO(db)
	repo := repository.NewApplicantRepository(applicantDAO)
	svc := service.NewApplicationService(repo)
	handler := v1.NewApplicationHandler(s.Config.API, svc, userSvc, store)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB, userSvc *service.UserService) *v1.AdminHandler {
	applicantDAO := dao.NewApplicantDAO(db)
	repo := repository.NewApplicantRepository(applicantDAO)
	svc := service.NewApplicationService(repo)
	handler := v1.NewAdminHandler(svc, userSvc)

	return handler
}

func (s *Server) initFoodGroupHandler(db *gorm.DB, userSvc *service.UserService) *v1.FoodGroupHandler {
	foodGroupDAO := dao.NewFoodGroupDAO(db)
	repo := repository.NewFoodGroupRepository(foodGroupDAO)
	applicantRepo := repository.NewApplicantRepository(dao.NewApplicantDAO(db))
	svc := service.NewFoodGroupService(repo, applicantRepo, s.Config.API.InstitutionDomain)
	handler := v1.NewFoodGroupHandler(svc, userSvc)

	return handler
}

func (s *Server) initScheduleHandler(db *gorm.DB, userSvc *service.UserService) *v1.ScheduleHandler {
	scheduleDAO := dao.NewScheduleDAO(db)
	repo := repository.NewScheduleRepository(scheduleDAO)
	svc := service.NewScheduleService(repo)
	handler := v1.NewScheduleHandler(svc, userSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	applicationHandler *v1.ApplicationHandler,
	adminHandler *v1.AdminHandler,
	foodGroupHandler *v1.FoodGroupHandler,
	scheduleHandler *v1.ScheduleHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	public := s.Router.Group(basePath)
	{
		public.GET("/schedule", scheduleHandler.HandleGetSchedule)
		public.GET("/schedule/live", scheduleHandler.HandleScheduleLive)
	}

	verified := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		verified.POST("/applications", applicationHandler.HandleSubmitApplication)
		verified.PUT("/applications", applicationHandler.HandleUpdateApplication)
		verified.GET("/applications/me", applicationHandler.HandleGetMyApplication)
		verified.POST("/applications/confirm", applicationHandler.HandleConfirmAttendance)
		verified.POST("/applications/withdraw", applicationHandler.HandleWithdraw)

		verified.GET("/admin/applications", adminHandler.HandleListApplications)
		verified.PUT("/admin/applications/status", adminHandler.HandleUpdateStatus)
		verified.GET("/admin/stats", adminHandler.HandleStats)
		verified.GET("/admin/roles/:email", adminHandler.HandleGetRoles)
		verified.POST("/admin/roles", adminHandler.HandleGrantRole)
		verified.DELETE("/admin/roles", adminHandler.HandleRevokeRole)

		verified.POST("/admin/food-groups/assign", foodGroupHandler.HandleAssignFoodGroups)
		verified.DELETE("/admin/food-groups", foodGroupHandler.HandleClearFoodGroups)
		verified.GET("/admin/food-groups", foodGroupHandler.HandleFetchFoodGroups)

		verified.POST("/schedule", scheduleHandler.HandleCreateEntry)
		verified.PUT("/schedule/:entryID", scheduleHandler.HandleUpdateEntry)
		verified.DELETE("/schedule/:entryID", scheduleHandler.HandleDeleteEntry)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "SparkHacks Dashboard API"
	docs.SwaggerInfo.Description = "Registration and admin dashboard for SparkHacks."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
