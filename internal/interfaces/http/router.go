// Package http wires the router: repositories, use cases, handlers and
// middleware are constructed here and bound to their routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "coachdesk/internal/application/auth/usecases"
	billingusecases "coachdesk/internal/application/billing/usecases"
	exerciseusecases "coachdesk/internal/application/exercise/usecases"
	portalusecases "coachdesk/internal/application/portal/usecases"
	scheduleusecases "coachdesk/internal/application/schedule/usecases"
	studentusecases "coachdesk/internal/application/student/usecases"
	workoutusecases "coachdesk/internal/application/workout/usecases"
	"coachdesk/internal/infrastructure/auth"
	"coachdesk/internal/infrastructure/billing"
	"coachdesk/internal/infrastructure/cache"
	"coachdesk/internal/infrastructure/config"
	"coachdesk/internal/infrastructure/email"
	"coachdesk/internal/infrastructure/repository"
	"coachdesk/internal/interfaces/http/handlers"
	"coachdesk/internal/interfaces/http/middleware"
	"coachdesk/internal/interfaces/http/routes"
	sharedDB "coachdesk/internal/shared/db"
	"coachdesk/internal/shared/logger"
)

// Router holds the configured gin engine and its shared infrastructure.
type Router struct {
	engine       *gin.Engine
	pricingCache *cache.PricingCache
}

// NewRouter builds the full HTTP surface. redisClient may be nil; billing
// event dedup then falls back to the in-process store.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	txManager := sharedDB.NewTransactionManager(db)
	trainerRepo := repository.NewTrainerRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	scheduleRepo := repository.NewAppointmentRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	grantService := auth.NewGrantService(cfg.Auth.Grant.Secret, cfg.Auth.Grant.ExpiryHours)
	sessionResolver := auth.NewSessionResolver(jwtService, grantService)

	var emailService email.Service
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	} else {
		emailService = email.NoopEmailService{}
	}

	billingGateway := billing.NewHostedGateway(cfg.Billing, log)
	pricingCache := cache.NewPricingCache(billingGateway,
		time.Duration(cfg.Billing.PricingCacheMinutes)*time.Minute, log)

	var eventStore cache.BillingEventStore
	if redisClient != nil {
		eventStore = cache.NewRedisBillingEventStore(redisClient, log)
	} else {
		eventStore = cache.NewMemoryBillingEventStore()
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	authHandler := handlers.NewAuthHandler(
		authusecases.NewSignupUseCase(trainerRepo, hasher, jwtService, emailService, log),
		authusecases.NewLoginUseCase(trainerRepo, hasher, jwtService, log),
		log, cfg.Auth.Cookie, cfg.Auth.JWT,
	)

	studentHandler := handlers.NewStudentHandler(
		studentusecases.NewCreateStudentUseCase(studentRepo, trainerRepo, hasher, emailService, cfg.Server.BaseURL, log),
		studentusecases.NewUpdateStudentUseCase(studentRepo, hasher, log),
		studentusecases.NewGetStudentUseCase(studentRepo, log),
		studentusecases.NewListStudentsUseCase(studentRepo, log),
		studentusecases.NewDeleteStudentUseCase(studentRepo, workoutRepo, txManager, log),
		log,
	)

	exerciseHandler := handlers.NewExerciseHandler(
		exerciseusecases.NewCreateExerciseUseCase(exerciseRepo, log),
		exerciseusecases.NewUpdateExerciseUseCase(exerciseRepo, log),
		exerciseusecases.NewListExercisesUseCase(exerciseRepo, log),
		exerciseusecases.NewDeleteExerciseUseCase(exerciseRepo, log),
		log,
	)

	workoutHandler := handlers.NewWorkoutHandler(
		workoutusecases.NewCreateWorkoutUseCase(workoutRepo, studentRepo, exerciseRepo, hasher, log),
		workoutusecases.NewUpdateWorkoutUseCase(workoutRepo, exerciseRepo, log),
		workoutusecases.NewGetWorkoutUseCase(workoutRepo, log),
		workoutusecases.NewListWorkoutsUseCase(workoutRepo, log),
		workoutusecases.NewDeleteWorkoutUseCase(workoutRepo, log),
		workoutusecases.NewSetSharePasswordUseCase(workoutRepo, hasher, log),
		log,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		scheduleusecases.NewBookAppointmentUseCase(scheduleRepo, studentRepo, log),
		scheduleusecases.NewListAppointmentsUseCase(scheduleRepo, log),
		scheduleusecases.NewChangeAppointmentUseCase(scheduleRepo, log),
		log,
	)

	portalHandler := handlers.NewPortalHandler(
		portalusecases.NewCheckAccessUseCase(studentRepo, workoutRepo, hasher, grantService, log),
		portalusecases.NewResolvePortalUseCase(studentRepo, workoutRepo, exerciseRepo, scheduleRepo, grantService, log),
		sessionResolver, grantService, log, cfg.Auth.Cookie,
	)

	billingHandler := handlers.NewBillingHandler(
		billingusecases.NewApplyBillingEventUseCase(trainerRepo, eventStore, log),
		billingusecases.NewUpdatePlanUseCase(trainerRepo, log),
		billingusecases.NewCreateCheckoutUseCase(trainerRepo, billingGateway, log),
		billingusecases.NewGetPricingUseCase(pricingCache, log),
		billingusecases.NewSyncSubscriptionUseCase(trainerRepo, billingGateway, log),
		billingGateway, log,
	)
	pricingCacheHandler := handlers.NewPricingCacheHandler(pricingCache, log)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupStudentRoutes(engine, &routes.StudentRouteConfig{
		StudentHandler: studentHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupExerciseRoutes(engine, &routes.ExerciseRouteConfig{
		ExerciseHandler: exerciseHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupWorkoutRoutes(engine, &routes.WorkoutRouteConfig{
		WorkoutHandler: workoutHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupScheduleRoutes(engine, &routes.ScheduleRouteConfig{
		ScheduleHandler: scheduleHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupPortalRoutes(engine, &routes.PortalRouteConfig{
		PortalHandler: portalHandler,
	})
	routes.SetupBillingRoutes(engine, &routes.BillingRouteConfig{
		BillingHandler:      billingHandler,
		PricingCacheHandler: pricingCacheHandler,
		AuthMiddleware:      authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Router{
		engine:       engine,
		pricingCache: pricingCache,
	}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
