package auth

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
)

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})
}

// isFormContentType reports whether the request body is an HTML form
// submission. Browsers may append a charset parameter, so only the media
// type is compared.
func isFormContentType(contentType string) bool {
	return strings.HasPrefix(contentType, fiber.MIMEApplicationForm)
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setSessionCookie(c, token)

	// Form logins go back to the dashboard
	if isFormContentType(c.Get("Content-Type")) {
		return c.Redirect("/")
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

// RegisterAPI creates an account. Visitors may register as volunteer or
// donor; the matching volunteer/donor row is created and linked so the
// portals can find it.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email     string `json:"email" form:"email"`
		Password  string `json:"password" form:"password"`
		Role      string `json:"role" form:"role"`
		FirstName string `json:"first_name" form:"first_name"`
		LastName  string `json:"last_name" form:"last_name"`
		Phone     string `json:"phone" form:"phone"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleVolunteer
	}
	allowed := false
	for _, r := range models.RegistrationRoles {
		if role == r {
			allowed = true
			break
		}
	}
	if !allowed {
		return c.Status(400).JSON(fiber.Map{"error": "Role must be volunteer or donor"})
	}

	db := config.GetDB()
	user := &models.User{Email: req.Email, Password: req.Password, Role: role}
	if err := database.CreateUser(db, user); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Redirect("/auth/register?msg=Email+already+registered")
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	// Link the domain row to the new account
	switch role {
	case models.RoleVolunteer:
		v := &models.Volunteer{FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone, UserID: &user.ID}
		if v.FirstName == "" {
			v.FirstName = req.Email
		}
		if v.LastName == "" {
			v.LastName = "(volunteer)"
		}
		if err := database.CreateVolunteer(db, v); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create volunteer record"})
		}
	case models.RoleDonor:
		d := &models.Donor{FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone, UserID: &user.ID}
		if d.FirstName == "" {
			d.FirstName = req.Email
		}
		if d.LastName == "" {
			d.LastName = "(donor)"
		}
		if err := database.CreateDonor(db, d); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create donor record"})
		}
	}

	return c.Redirect("/auth/login?msg=Registration+successful,+please+log+in")
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user := CurrentUser(c)

	// Re-read the row to verify the current password against the stored hash
	stored, err := database.GetUserByID(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, stored.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}
