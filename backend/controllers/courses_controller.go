package controllers

import (
	"log"

	"horsera/backend/models"
	"horsera/backend/services"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoursesController struct {
	Courses *services.CourseService
	Logger  *log.Logger
}

func NewCoursesController(courses *services.CourseService, logger *log.Logger) *CoursesController {
	return &CoursesController{Courses: courses, Logger: logger}
}

type courseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageLink   string  `json:"imageLink"`
	Published   bool    `json:"published"`
}

type lessonInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LessonLink  string `json:"lessonLink"`
}

func (in *courseInput) toModel() *models.Course {
	return &models.Course{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageLink:   in.ImageLink,
		Published:   in.Published,
	}
}

func (in *lessonInput) toModel() *models.Lesson {
	return &models.Lesson{
		Title:       in.Title,
		Description: in.Description,
		LessonLink:  in.LessonLink,
	}
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input courseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	id, err := cc.Courses.CreateCourse(c.Context(), input.toModel())
	if err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "course created successfully",
		"courseId": id,
	})
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input courseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := cc.Courses.UpdateCourse(c.Context(), courseID, input.toModel()); err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
	})
}

func (cc *CoursesController) AddLesson(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input lessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	id, err := cc.Courses.AddLesson(c.Context(), courseID, input.toModel())
	if err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Lesson added successfully",
		"lessonId": id,
	})
}

func (cc *CoursesController) UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := primitive.ObjectIDFromHex(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var input lessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := cc.Courses.UpdateLesson(c.Context(), lessonID, input.toModel()); err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "lesson updated successfully",
	})
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, err := cc.Courses.GetCourse(c.Context(), courseID)
	if err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"course": course,
	})
}

// BrowseCoursesDetailed lists every course with lessons resolved (admin
// browse view).
func (cc *CoursesController) BrowseCoursesDetailed(c *fiber.Ctx) error {
	courses, err := cc.Courses.ListCoursesDetailed(c.Context())
	if err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"courses": courses,
	})
}

// BrowseCourses lists every course with lesson refs unresolved.
func (cc *CoursesController) BrowseCourses(c *fiber.Ctx) error {
	courses, err := cc.Courses.ListCourses(c.Context())
	if err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"courses": courses,
	})
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := cc.Courses.DeleteCourse(c.Context(), courseID); err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "Course deleted successfully",
	})
}

func (cc *CoursesController) DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := primitive.ObjectIDFromHex(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	if err := cc.Courses.DeleteLesson(c.Context(), lessonID); err != nil {
		return respondError(c, cc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "Lesson deleted successfully",
	})
}
