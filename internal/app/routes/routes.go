package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/controllers"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// SetupRouter configures all application routes.
//
// Role checks do not live here: every handler resolves the acting
// identity and defers the allow/deny decision to the policy engine in
// the service layer. The router only decides whether a request must
// present a token (JWTAuth) or may arrive anonymously while still
// resolving an identity when one is offered (OptionalJWTAuth).
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Auth routes (public) ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrls.Auth.Register)
		authGroup.POST("/login", ctrls.Auth.Login)
		authGroup.POST("/refresh", ctrls.Auth.RefreshToken)
		authGroup.POST("/logout", ctrls.Auth.Logout)
	}

	// --- Catalog reads (public, identity optional) ---
	public := v1.Group("")
	public.Use(authMiddleware.OptionalJWTAuth())
	{
		public.GET("/courses", ctrls.Course.ListCourses)
		public.GET("/courses/:id", ctrls.Course.GetCourse)
		public.GET("/modules", ctrls.Course.ListModules)
		public.GET("/modules/:id", ctrls.Course.GetModule)
		public.GET("/lessons", ctrls.Lesson.ListLessons)
		public.GET("/lessons/:id", ctrls.Lesson.GetLesson)
		public.GET("/content-items", ctrls.Lesson.ListContentItems)
		public.GET("/content-items/:id", ctrls.Lesson.GetContentItem)
		public.GET("/live-sessions", ctrls.LiveSession.ListLiveSessions)
		public.GET("/live-sessions/:id", ctrls.LiveSession.GetLiveSession)
		public.GET("/questions", ctrls.Quiz.ListQuestions)
		public.GET("/questions/:id", ctrls.Quiz.GetQuestion)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile
		authenticated.GET("/users/me", ctrls.User.GetProfile)
		authenticated.PUT("/users/me", ctrls.User.UpdateProfile)
		authenticated.GET("/users", ctrls.User.ListUsers)
		authenticated.GET("/users/:id", ctrls.User.GetUser)

		// Catalog writes (policy admits admins only)
		authenticated.POST("/courses", ctrls.Course.CreateCourse)
		authenticated.PUT("/courses/:id", ctrls.Course.UpdateCourse)
		authenticated.DELETE("/courses/:id", ctrls.Course.DeleteCourse)
		authenticated.POST("/modules", ctrls.Course.CreateModule)
		authenticated.PUT("/modules/:id", ctrls.Course.UpdateModule)
		authenticated.DELETE("/modules/:id", ctrls.Course.DeleteModule)
		authenticated.POST("/lessons", ctrls.Lesson.CreateLesson)
		authenticated.PUT("/lessons/:id", ctrls.Lesson.UpdateLesson)
		authenticated.DELETE("/lessons/:id", ctrls.Lesson.DeleteLesson)
		authenticated.POST("/content-items", ctrls.Lesson.CreateContentItem)
		authenticated.PUT("/content-items/:id", ctrls.Lesson.UpdateContentItem)
		authenticated.DELETE("/content-items/:id", ctrls.Lesson.DeleteContentItem)
		authenticated.POST("/live-sessions", ctrls.LiveSession.CreateLiveSession)
		authenticated.PUT("/live-sessions/:id", ctrls.LiveSession.UpdateLiveSession)
		authenticated.DELETE("/live-sessions/:id", ctrls.LiveSession.DeleteLiveSession)
		authenticated.POST("/questions", ctrls.Quiz.CreateQuestion)
		authenticated.PUT("/questions/:id", ctrls.Quiz.UpdateQuestion)
		authenticated.DELETE("/questions/:id", ctrls.Quiz.DeleteQuestion)

		// Quizzes
		authenticated.POST("/quizzes", ctrls.Quiz.CreateQuiz)
		authenticated.GET("/quizzes", ctrls.Quiz.ListQuizzes)
		authenticated.GET("/quizzes/:id", ctrls.Quiz.GetQuiz)
		authenticated.PUT("/quizzes/:id", ctrls.Quiz.UpdateQuiz)
		authenticated.DELETE("/quizzes/:id", ctrls.Quiz.DeleteQuiz)

		// Quiz submissions and answers
		authenticated.POST("/quiz-submissions", ctrls.Submission.CreateSubmission)
		authenticated.GET("/quiz-submissions", ctrls.Submission.ListSubmissions)
		authenticated.GET("/quiz-submissions/:id", ctrls.Submission.GetSubmission)
		authenticated.PUT("/quiz-submissions/:id", ctrls.Submission.UpdateSubmission)
		authenticated.DELETE("/quiz-submissions/:id", ctrls.Submission.DeleteSubmission)
		authenticated.POST("/answers", ctrls.Submission.CreateAnswer)
		authenticated.GET("/answers", ctrls.Submission.ListAnswers)
		authenticated.GET("/answers/:id", ctrls.Submission.GetAnswer)
		authenticated.PUT("/answers/:id", ctrls.Submission.UpdateAnswer)
		authenticated.DELETE("/answers/:id", ctrls.Submission.DeleteAnswer)

		// Payments and enrollments
		authenticated.POST("/payments", ctrls.Enrollment.CreatePayment)
		authenticated.GET("/payments", ctrls.Enrollment.ListPayments)
		authenticated.GET("/payments/:id", ctrls.Enrollment.GetPayment)
		authenticated.PUT("/payments/:id", ctrls.Enrollment.UpdatePayment)
		authenticated.DELETE("/payments/:id", ctrls.Enrollment.DeletePayment)
		authenticated.POST("/enrollments", ctrls.Enrollment.CreateEnrollment)
		authenticated.GET("/enrollments", ctrls.Enrollment.ListEnrollments)
		authenticated.GET("/enrollments/:id", ctrls.Enrollment.GetEnrollment)
		authenticated.PUT("/enrollments/:id", ctrls.Enrollment.UpdateEnrollment)
		authenticated.DELETE("/enrollments/:id", ctrls.Enrollment.DeleteEnrollment)

		// Capstone projects
		authenticated.POST("/capstone-projects", ctrls.Capstone.CreateCapstone)
		authenticated.GET("/capstone-projects", ctrls.Capstone.ListCapstones)
		authenticated.GET("/capstone-projects/:id", ctrls.Capstone.GetCapstone)
		authenticated.PUT("/capstone-projects/:id", ctrls.Capstone.UpdateCapstone)
		authenticated.DELETE("/capstone-projects/:id", ctrls.Capstone.DeleteCapstone)
	}
}
