package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/app/controllers"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	collegeController *controllers.CollegeController,
	feedController *controllers.FeedController,
	alumniController *controllers.AlumniController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Everything else requires a valid token. Fine-grained authorization is
	// decided per operation by the policy engine, not by per-route groups.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.GET("/me", userController.GetMe)
			users.GET("/:userId", userController.GetUser)
			users.PATCH("/:userId", userController.UpdateUser)
			users.DELETE("/:userId", userController.DeleteUser)
		}

		colleges := authenticated.Group("/colleges")
		{
			colleges.POST("", collegeController.CreateColleges)
			colleges.GET("", collegeController.ListColleges)
			colleges.GET("/:collegeId", collegeController.GetCollege)
			colleges.PATCH("/:collegeId", collegeController.UpdateCollege)
			colleges.DELETE("/:collegeId", collegeController.DeleteCollege)
		}

		feed := authenticated.Group("/feed")
		{
			feed.GET("/public", feedController.GetPublicFeed)
			feed.GET("/me", feedController.GetMyPosts)
			feed.GET("/college", feedController.GetCollegeFeed)

			feed.POST("/posts", feedController.CreatePost)
			feed.PATCH("/posts/:postId", feedController.UpdatePost)
			feed.DELETE("/posts/:postId", feedController.DeletePost)

			feed.POST("/posts/:postId/comments", feedController.CreateComment)
			feed.GET("/posts/:postId/comments", feedController.ListComments)
			feed.DELETE("/comments/:commentId", feedController.DeleteComment)

			feed.PUT("/posts/:postId/reactions", feedController.React)
			feed.GET("/posts/:postId/reactions", feedController.GetReactionSummary)
			feed.DELETE("/posts/:postId/reactions", feedController.RemoveReaction)
		}

		alumni := authenticated.Group("/alumni")
		{
			alumni.POST("", alumniController.CreateAlumni)
			alumni.GET("", alumniController.ListAlumni)
			alumni.GET("/me", alumniController.GetMyAlumniProfile)
			alumni.GET("/college", alumniController.ListCollegeAlumni)
			alumni.PATCH("", alumniController.UpdateAlumni)
			alumni.DELETE("", alumniController.DeleteAlumni)
		}

		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.ListStudents)
			students.GET("/me", studentController.GetMyStudentProfile)
			students.GET("/college", studentController.ListCollegeStudents)
			students.PATCH("", studentController.UpdateStudent)
			students.DELETE("", studentController.DeleteStudent)
		}
	}
}
