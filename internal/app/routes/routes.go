package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/examdesk/internal/app/controllers"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/middleware"
	"github.com/yigit/examdesk/internal/pkg/metrics"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Catalog *controllers.CatalogController
	Exam    *controllers.ExamController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
) {
	router.GET("/", controllers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	requireAuth := authMiddleware.JWTAuth()
	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	// --- Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), ctrl.Auth.Login)
		auth.POST("/register/student", ctrl.Auth.RegisterStudent)
		auth.POST("/register/teacher", ctrl.Auth.RegisterTeacher)
		auth.POST("/create-admin", requireAuth, adminOnly, ctrl.Auth.CreateAdmin)
		auth.GET("/me", requireAuth, ctrl.User.Me)

		// Registration form dropdowns
		auth.GET("/streams", ctrl.Catalog.ListStreams)
		auth.GET("/subjects", ctrl.Catalog.ListSubjects)
		auth.GET("/rooms", ctrl.Catalog.ListRooms)
	}

	// --- Exam routes ---
	exams := router.Group("/exams")
	{
		exams.GET("/", ctrl.Exam.ListExams)
		exams.GET("/streams", ctrl.Catalog.ListStreams)
		exams.GET("/subjects", ctrl.Catalog.ListSubjects)
		exams.GET("/rooms", ctrl.Catalog.ListRooms)

		exams.GET("/student", requireAuth, authMiddleware.RoleRequired(models.RoleStudent), ctrl.Exam.ListStudentExams)
		exams.GET("/teacher", requireAuth, authMiddleware.RoleRequired(models.RoleTeacher), ctrl.Exam.ListTeacherExams)
		// Role is checked by the convocation service.
		exams.GET("/:exam_id/convocation", requireAuth, ctrl.Exam.Convocation)

		exams.POST("/", requireAuth, adminOnly, ctrl.Exam.CreateExam)
		exams.PUT("/:exam_id", requireAuth, adminOnly, ctrl.Exam.UpdateExam)
		exams.DELETE("/:exam_id", requireAuth, adminOnly, ctrl.Exam.DeleteExam)
	}

	// --- Catalog routes ---
	streams := router.Group("/streams")
	{
		streams.GET("/", ctrl.Catalog.ListStreams)
		streams.GET("/:id/subjects", ctrl.Catalog.SubjectsOfStream)
		streams.POST("/", requireAuth, adminOnly, ctrl.Catalog.CreateStream)
	}

	subjects := router.Group("/subjects")
	{
		subjects.GET("/", ctrl.Catalog.ListSubjects)
		subjects.GET("/stream/:id", ctrl.Catalog.SubjectsOfStream)
		subjects.POST("/", requireAuth, adminOnly, ctrl.Catalog.CreateSubject)
	}

	rooms := router.Group("/rooms")
	{
		rooms.GET("/", ctrl.Catalog.ListRooms)
		rooms.POST("/", requireAuth, adminOnly, ctrl.Catalog.CreateRoom)
		rooms.PUT("/:id", requireAuth, adminOnly, ctrl.Catalog.UpdateRoom)
		rooms.DELETE("/:id", requireAuth, adminOnly, ctrl.Catalog.DeleteRoom)
	}

	// --- User routes ---
	users := router.Group("/users", requireAuth)
	{
		users.GET("/me", ctrl.User.Me)
		users.GET("/", adminOnly, ctrl.User.ListUsers)
		users.GET("/teachers", adminOnly, ctrl.User.ListTeachers)
	}
}
