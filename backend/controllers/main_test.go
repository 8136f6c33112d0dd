package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"horsera/backend/config"
	"horsera/backend/repository"
	"horsera/backend/routes"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newTestApp wires a fresh app over the in-memory store so every test runs
// against its own state.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		DBDriver:   "memory",
		JWTSecret:  "testsecret",
		ServerPort: "3000",
	}
	store := repository.NewMemoryStore()
	logger := utils.InitLogger()

	app := fiber.New()
	routes.SetupRoutes(app, store, cfg, logger)
	return app
}

// request performs one JSON request and decodes the JSON reply.
func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func signupAdmin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	status, result := request(t, app, "POST", "/admin/signup", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, result["token"])
	return result["token"].(string)
}

func signupUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	status, result := request(t, app, "POST", "/users/signup", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, result["token"])
	return result["token"].(string)
}

func createCourse(t *testing.T, app *fiber.App, adminToken, title string) string {
	t.Helper()
	status, result := request(t, app, "POST", "/admin/courses", adminToken, map[string]interface{}{
		"title":       title,
		"description": "a course about " + title,
		"price":       49.99,
		"imageLink":   "https://img.example.com/" + title + ".png",
		"published":   true,
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.NotEmpty(t, result["courseId"])
	return result["courseId"].(string)
}

func addLesson(t *testing.T, app *fiber.App, adminToken, courseID, title string) string {
	t.Helper()
	status, result := request(t, app, "POST", "/admin/courses/"+courseID, adminToken, map[string]interface{}{
		"title":       title,
		"description": "lesson " + title,
		"lessonLink":  "https://videos.example.com/" + title,
	})
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, result["lessonId"])
	return result["lessonId"].(string)
}
