package dashboard

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
)

// SetupDashboardRoutes sets up the public dashboard and the admin panel
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", auth.LoadUser, renderDashboardPage)
	app.Get("/admin", auth.AuthMiddleware, renderAdminPage)

	api := app.Group("/api/admin")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetAdminStatsAPI)
}

// renderDashboardPage is public: the ten most recent disasters by start date.
func renderDashboardPage(c *fiber.Ctx) error {
	db := config.GetDB()
	disasters, err := database.GetRecentDisasters(db, 10)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching recent disasters: %v", err)
		errorMsg = "Failed to load recent disasters"
	}

	return c.Render("dashboard", fiber.Map{
		"Title":        "Dashboard - ReliefAssist",
		"CurrentPage":  "dashboard",
		"User":         auth.CurrentUser(c),
		"Disasters":    disasters,
		"HasDisasters": len(disasters) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

func renderAdminPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	stats, err := database.GetAdminStats(db)
	if err != nil {
		log.Printf("Error fetching admin stats: %v", err)
		stats = &database.AdminStats{}
	}

	roleCounts, err := database.GetUserRoleCounts(db)
	if err != nil {
		log.Printf("Error fetching role counts: %v", err)
	}

	return c.Render("admin", fiber.Map{
		"Title":       "Admin Panel - ReliefAssist",
		"CurrentPage": "admin",
		"User":        user,
		"Stats":       stats,
		"RoleCounts":  roleCounts,
	})
}

// GetAdminStatsAPI returns the admin panel numbers as JSON
func GetAdminStatsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()
	stats, err := database.GetAdminStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch stats",
		})
	}

	roleCounts, err := database.GetUserRoleCounts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch role counts",
		})
	}

	byRole := make(map[models.Role]int, len(roleCounts))
	for _, rc := range roleCounts {
		byRole[rc.Role] = rc.Count
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"stats":      stats,
		"role_users": byRole,
	})
}
