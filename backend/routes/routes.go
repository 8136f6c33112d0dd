package routes

import (
	"log"

	"horsera/backend/config"
	"horsera/backend/controllers"
	"horsera/backend/middleware"
	"horsera/backend/repository"
	"horsera/backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store *repository.Store, cfg *config.Config, logger *log.Logger) {
	authService := services.NewAuthService(store, cfg)
	courseService := services.NewCourseService(store)
	progressService := services.NewProgressService(store)

	authController := controllers.NewAuthController(authService, logger)
	coursesController := controllers.NewCoursesController(courseService, logger)
	progressController := controllers.NewProgressController(progressService, logger)

	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.AdminMiddleware()

	// Admin routes
	app.Post("/admin/signup", authController.AdminSignup)
	app.Post("/admin/login", authController.AdminLogin)
	app.Get("/admin/me", auth, authController.WhoAmI)
	app.Get("/admin/browsecourses", auth, coursesController.BrowseCoursesDetailed)
	app.Post("/admin/courses", auth, admin, coursesController.CreateCourse)
	app.Get("/admin/courses/:courseId", auth, coursesController.GetCourse)
	app.Put("/admin/courses/:courseId", auth, admin, coursesController.UpdateCourse)
	app.Post("/admin/courses/:courseId", auth, admin, coursesController.AddLesson)
	app.Delete("/admin/courses/:courseId", auth, admin, coursesController.DeleteCourse)
	app.Put("/admin/lessons/:lessonId", auth, admin, coursesController.UpdateLesson)
	app.Delete("/admin/lessons/:lessonId", auth, admin, coursesController.DeleteLesson)

	// Common routes
	app.Get("/role/me", auth, authController.WhoAmI)
	app.Get("/browsecourses", auth, coursesController.BrowseCourses)

	// User routes
	app.Post("/users/signup", authController.UserSignup)
	app.Post("/users/login", authController.UserLogin)
	app.Get("/user/me", auth, authController.UserMe)
	app.Get("/users/courses", auth, coursesController.BrowseCourses)
	app.Get("/users/purchasedCourses", auth, progressController.PurchasedCourses)
	app.Get("/users/courses/:courseId/check-purchase", auth, progressController.CheckPurchase)
	app.Post("/users/courses/:courseId", auth, progressController.PurchaseCourse)
	app.Put("/users/courses/:courseId/:lessonId", auth, progressController.CompleteLesson)
	app.Get("/users/courses/:courseId", auth, progressController.CompletedLessons)
}
