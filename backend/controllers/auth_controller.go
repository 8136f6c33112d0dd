package controllers

import (
	"errors"
	"log"

	"horsera/backend/middleware"
	"horsera/backend/services"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth   *services.AuthService
	Logger *log.Logger
}

func NewAuthController(auth *services.AuthService, logger *log.Logger) *AuthController {
	return &AuthController{Auth: auth, Logger: logger}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func parseCredentials(c *fiber.Ctx) (*credentialsInput, error) {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return nil, errors.New("Cannot parse JSON")
	}
	if input.Username == "" || input.Password == "" {
		return nil, errors.New("username and password are required")
	}
	return &input, nil
}

// [+] UserSignup godoc
// @Summary Register a new user
// @Description Creates a user account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} utils.ErrorResponse
// @Router /users/signup [post]
func (ac *AuthController) UserSignup(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	token, err := ac.Auth.SignupUser(c.Context(), input.Username, input.Password)
	if errors.Is(err, services.ErrUsernameTaken) {
		return utils.Conflict(c, "user already signed up")
	}
	if err != nil {
		return respondError(c, ac.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
	})
}

// [+] UserLogin godoc
// @Summary User login
// @Description Authenticates a user and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Router /users/login [post]
func (ac *AuthController) UserLogin(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	token, err := ac.Auth.LoginUser(c.Context(), input.Username, input.Password)
	if err != nil {
		return respondError(c, ac.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "logged in successfully",
		"token":   token,
	})
}

func (ac *AuthController) AdminSignup(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	token, err := ac.Auth.SignupAdmin(c.Context(), input.Username, input.Password)
	if errors.Is(err, services.ErrUsernameTaken) {
		return utils.Conflict(c, "Admin already exists")
	}
	if err != nil {
		return respondError(c, ac.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "admin created successfully",
		"token":   token,
	})
}

func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	token, err := ac.Auth.LoginAdmin(c.Context(), input.Username, input.Password)
	if err != nil {
		return respondError(c, ac.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "logged in successfully",
		"token":   token,
	})
}

// WhoAmI answers identity+role from the verified claims, for any valid
// token regardless of role.
func (ac *AuthController) WhoAmI(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return c.JSON(fiber.Map{
		"username": claims.Username,
		"role":     claims.Role,
	})
}

// UserMe answers the username behind a user token, checking the account
// still exists.
func (ac *AuthController) UserMe(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	exists, err := ac.Auth.UserExists(c.Context(), claims.Username)
	if err != nil {
		return respondError(c, ac.Logger, err)
	}
	if !exists {
		return utils.Unauthorized(c, "user not found")
	}

	return c.JSON(fiber.Map{
		"username": claims.Username,
	})
}
