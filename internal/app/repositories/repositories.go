package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the query surface shared by *pgxpool.Pool and pgx.Tx.
// Write methods take a Querier so services can route them through a
// transaction together with the guard checks that protect them.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	CourseRepository      *CourseRepository
	ModuleRepository      *ModuleRepository
	LessonRepository      *LessonRepository
	ContentItemRepository *ContentItemRepository
	LiveSessionRepository *LiveSessionRepository
	QuizRepository        *QuizRepository
	QuestionRepository    *QuestionRepository
	SubmissionRepository  *SubmissionRepository
	AnswerRepository      *AnswerRepository
	PaymentRepository     *PaymentRepository
	EnrollmentRepository  *EnrollmentRepository
	CapstoneRepository    *CapstoneRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ModuleRepository:      NewModuleRepository(db),
		LessonRepository:      NewLessonRepository(db),
		ContentItemRepository: NewContentItemRepository(db),
		LiveSessionRepository: NewLiveSessionRepository(db),
		QuizRepository:        NewQuizRepository(db),
		QuestionRepository:    NewQuestionRepository(db),
		SubmissionRepository:  NewSubmissionRepository(db),
		AnswerRepository:      NewAnswerRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		CapstoneRepository:    NewCapstoneRepository(db),
	}
}
