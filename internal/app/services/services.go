package services

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/repositories"
	pkgauth "github.com/osmandemir/learnsphere/internal/pkg/auth"
	"github.com/osmandemir/learnsphere/internal/pkg/filestorage"
)

// Services aggregates all application services.
type Services struct {
	Auth       AuthService
	User       UserService
	Catalog    CatalogService
	Quiz       QuizService
	Submission SubmissionService
	Enrollment EnrollmentService
	Capstone   CapstoneService
}

// NewServices wires all services with their dependencies. A single
// Policy and Guard instance is shared: the policy table is immutable
// after construction and safe for concurrent use.
func NewServices(
	repos *repositories.Repositories,
	pool *pgxpool.Pool,
	jwtService *pkgauth.JWTService,
	fileStorage *filestorage.LocalStorage,
	logger zerolog.Logger,
) *Services {
	policy := auth.NewPolicy()
	guard := auth.NewGuard()

	return &Services{
		Auth: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			jwtService,
			logger.With().Str("service", "auth").Logger(),
		),
		User: NewUserService(
			repos.UserRepository,
			logger.With().Str("service", "user").Logger(),
		),
		Catalog: NewCatalogService(
			repos.CourseRepository,
			repos.ModuleRepository,
			repos.LessonRepository,
			repos.ContentItemRepository,
			repos.LiveSessionRepository,
			fileStorage,
			policy,
			logger.With().Str("service", "catalog").Logger(),
		),
		Quiz: NewQuizService(
			pool,
			repos.QuizRepository,
			repos.QuestionRepository,
			policy,
			guard,
			logger.With().Str("service", "quiz").Logger(),
		),
		Submission: NewSubmissionService(
			pool,
			repos.SubmissionRepository,
			repos.AnswerRepository,
			policy,
			guard,
			logger.With().Str("service", "submission").Logger(),
		),
		Enrollment: NewEnrollmentService(
			pool,
			repos.PaymentRepository,
			repos.EnrollmentRepository,
			repos.CourseRepository,
			policy,
			guard,
			logger.With().Str("service", "enrollment").Logger(),
		),
		Capstone: NewCapstoneService(
			pool,
			repos.CapstoneRepository,
			fileStorage,
			policy,
			guard,
			logger.With().Str("service", "capstone").Logger(),
		),
	}
}
