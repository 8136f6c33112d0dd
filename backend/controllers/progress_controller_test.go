package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPurchaseIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	adminToken := signupAdmin(t, app, "root")
	userToken := signupUser(t, app, "alice")
	courseID := createCourse(t, app, adminToken, "Course")

	status, result := request(t, app, "POST", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Course purchased successfully", result["message"])

	// Second purchase succeeds without duplicating the ref.
	status, result = request(t, app, "POST", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Course already purchased", result["message"])

	status, result = request(t, app, "GET", "/users/purchasedCourses", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, result["purchasedCourses"].([]interface{}), 1)
}

func TestPurchaseCourseNotFound(t *testing.T) {
	app := newTestApp(t)
	userToken := signupUser(t, app, "alice")

	status, result := request(t, app, "POST", "/users/courses/"+primitive.NewObjectID().Hex(), userToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "course not found", result["message"])
}

func TestCheckPurchase(t *testing.T) {
	app := newTestApp(t)
	adminToken := signupAdmin(t, app, "root")
	userToken := signupUser(t, app, "alice")
	courseID := createCourse(t, app, adminToken, "Course")

	status, result := request(t, app, "GET", "/users/courses/"+courseID+"/check-purchase", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, result["purchased"])

	status, _ = request(t, app, "POST", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, result = request(t, app, "GET", "/users/courses/"+courseID+"/check-purchase", userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["purchased"])
}

func TestCompleteLessonTwice(t *testing.T) {
	app := newTestApp(t)
	adminToken := signupAdmin(t, app, "root")
	userToken := signupUser(t, app, "alice")
	courseID := createCourse(t, app, adminToken, "Course")
	lessonID := addLesson(t, app, adminToken, courseID, "L1")

	status, _ := request(t, app, "POST", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, result := request(t, app, "PUT", "/users/courses/"+courseID+"/"+lessonID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Lesson marked as completed", result["message"])

	status, result = request(t, app, "PUT", "/users/courses/"+courseID+"/"+lessonID, userToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "lesson already marked complete", result["message"])

	// The completed list did not grow.
	status, result = request(t, app, "GET", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, result["completedLessons"].([]interface{}), 1)
}

func TestCompleteLessonRequiresPurchase(t *testing.T) {
	app := newTestApp(t)
	adminToken := signupAdmin(t, app, "root")
	userToken := signupUser(t, app, "alice")
	courseID := createCourse(t, app, adminToken, "Course")
	lessonID := addLesson(t, app, adminToken, courseID, "L1")

	status, result := request(t, app, "PUT", "/users/courses/"+courseID+"/"+lessonID, userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "You have not purchased this course.", result["message"])

	// Nothing was recorded: after purchasing, the course has no completions.
	status, _ = request(t, app, "POST", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	status, result = request(t, app, "GET", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "No completed lessons for this course.", result["message"])
}

func TestCompletedLessonsResolved(t *testing.T) {
	app := newTestApp(t)
	adminToken := signupAdmin(t, app, "root")
	userToken := signupUser(t, app, "alice")
	courseID := createCourse(t, app, adminToken, "Course")
	first := addLesson(t, app, adminToken, courseID, "L1")
	second := addLesson(t, app, adminToken, courseID, "L2")

	status, _ := request(t, app, "POST", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	for _, id := range []string{first, second} {
		status, _ = request(t, app, "PUT", "/users/courses/"+courseID+"/"+id, userToken, nil)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, result := request(t, app, "GET", "/users/courses/"+courseID, userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	lessons := result["completedLessons"].([]interface{})
	require.Len(t, lessons, 2)
	// Full lesson documents, not bare ids.
	assert.Equal(t, "L1", lessons[0].(map[string]interface{})["title"])
}

func TestCompletedLessonsRequirePurchase(t *testing.T) {
	app := newTestApp(t)
	adminToken := signupAdmin(t, app, "root")
	userToken := signupUser(t, app, "alice")
	courseID := createCourse(t, app, adminToken, "Course")

	status, result := request(t, app, "GET", "/users/courses/"+courseID, userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "You have not purchased this course.", result["message"])
}
