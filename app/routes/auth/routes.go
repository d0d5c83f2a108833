package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Get("/register", ShowRegisterPage)
	auth.Post("/register", RegisterAPI)
	auth.Post("/logout", LogoutAPI)
	auth.Get("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title":  "Login - ReliefAssist",
		"Notice": c.Query("msg"),
	}, "")
}

func ShowRegisterPage(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title":  "Register - ReliefAssist",
		"Roles":  models.RegistrationRoles,
		"Notice": c.Query("msg"),
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := CurrentUser(c)

	// Managers carry an office in the managers extension table
	office := ""
	if user.Role == models.RoleManager || user.Role == models.RoleAdmin {
		if m, err := database.GetManagerByUserID(config.GetDB(), user.ID); err == nil {
			office = m.Office
		}
	}

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - ReliefAssist",
		"CurrentPage": "profile",
		"User":        user,
		"Email":       user.Email,
		"Role":        user.Role,
		"Office":      office,
	})
}

// CurrentUser returns the principal set by AuthMiddleware or LoadUser.
// It is nil on public pages when nobody is logged in.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("jwt_token"); token != "" {
		return token
	}
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func userFromClaims(claims *JWTClaims) *models.User {
	return &models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}
}

// AuthMiddleware validates the session token and sets the user context.
// Unauthenticated API requests get 401, page requests go to the login form.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c)
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user := userFromClaims(claims)
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_role", user.Role)
	c.Locals("user", user)

	return c.Next()
}

// LoadUser sets the user context when a valid token is present but lets the
// request through either way. Public pages use it so the layout can show
// login state.
func LoadUser(c *fiber.Ctx) error {
	if tokenString := tokenFromRequest(c); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			user := userFromClaims(claims)
			c.Locals("user_id", user.ID)
			c.Locals("user_email", user.Email)
			c.Locals("user_role", user.Role)
			c.Locals("user", user)
		}
	}
	return c.Next()
}

// Forbidden renders the 403 response for a handler whose Authorize check
// failed. Authorization lives in the handlers themselves, not in middleware.
func Forbidden(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
	return c.Status(403).Render("error", fiber.Map{
		"Title":        "Access Forbidden - ReliefAssist",
		"CurrentPage":  "",
		"ErrorCode":    "403",
		"ErrorTitle":   "Access Forbidden",
		"ErrorMessage": "You don't have permission to access this resource.",
		"User":         CurrentUser(c),
	})
}
