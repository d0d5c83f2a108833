package resources

import (
	"database/sql"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/henry-rob17/RELIEFASSIST/app/config"
	"github.com/henry-rob17/RELIEFASSIST/app/database"
	"github.com/henry-rob17/RELIEFASSIST/app/models"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/auth"
	"github.com/henry-rob17/RELIEFASSIST/app/routes/forms"
)

// SetupResourcesRoutes sets up the resource catalogue and per-center stock
// routes. The stock list is public; everything else is for managers.
func SetupResourcesRoutes(app *fiber.App) {
	app.Get("/resources", auth.LoadUser, renderStockPage)

	app.Get("/resource/new", auth.AuthMiddleware, renderResourceForm)
	app.Get("/resource/:id/edit", auth.AuthMiddleware, renderResourceForm)
	app.Post("/resource/new", auth.AuthMiddleware, saveResourceForm)
	app.Post("/resource/:id/edit", auth.AuthMiddleware, saveResourceForm)

	app.Get("/stock/new", auth.AuthMiddleware, renderStockForm)
	app.Get("/stock/:id/edit", auth.AuthMiddleware, renderStockForm)
	app.Post("/stock/new", auth.AuthMiddleware, saveStockForm)
	app.Post("/stock/:id/edit", auth.AuthMiddleware, saveStockForm)

	api := app.Group("/api/resources")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetResourcesAPI)
	api.Post("/", CreateResourceAPI)
	api.Get("/stock", GetCenterStockAPI)
	api.Post("/stock", CreateCenterResourceAPI)
	api.Put("/stock/:id", UpdateCenterResourceAPI)
}

// renderStockPage is public: per-center stock joined with center capacity.
func renderStockPage(c *fiber.Ctx) error {
	db := config.GetDB()
	stock, err := database.GetCenterResources(db)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching center stock: %v", err)
		errorMsg = "Failed to load stock"
	}

	return c.Render("resources/index", fiber.Map{
		"Title":        "Resources - ReliefAssist",
		"CurrentPage":  "resources",
		"User":         auth.CurrentUser(c),
		"Stock":        stock,
		"HasStock":     len(stock) > 0,
		"ErrorMessage": errorMsg,
		"Notice":       c.Query("msg"),
	})
}

func renderResourceForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	var record *models.Resource
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetResourceByID(config.GetDB(), id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/resources?msg=Resource+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("resources/form", fiber.Map{
		"Title":       "Resource - ReliefAssist",
		"CurrentPage": "resources",
		"User":        user,
		"Record":      record,
	})
}

func saveResourceForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	r := &models.Resource{
		ResourceType: c.FormValue("resource_type"),
		Unit:         c.FormValue("unit"),
	}
	if err := r.Validate(); err != nil {
		return c.Redirect("/resources?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		r.ID = id
		if err := database.UpdateResource(db, r); err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/resources?msg=Resource+not+found")
			}
			return c.Redirect("/resources?msg=Failed+to+update+resource")
		}
		return c.Redirect("/resources?msg=Resource+updated")
	}

	if err := database.CreateResource(db, r); err != nil {
		return c.Redirect("/resources?msg=Failed+to+create+resource")
	}
	return c.Redirect("/resources?msg=Resource+created")
}

func renderStockForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	db := config.GetDB()

	var record *models.CenterResource
	if idStr := c.Params("id"); idStr != "" {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.ErrBadRequest
		}
		record, err = database.GetCenterResourceByID(db, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/resources?msg=Stock+entry+not+found")
			}
			return fiber.ErrInternalServerError
		}
	}

	centers, err := database.CenterOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	resourceOpts, err := database.ResourceOptions(db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("resources/stock_form", fiber.Map{
		"Title":       "Center Stock - ReliefAssist",
		"CurrentPage": "resources",
		"User":        user,
		"Record":      record,
		"Centers":     centers,
		"Resources":   resourceOpts,
	})
}

func parseStockForm(c *fiber.Ctx) (*models.CenterResource, error) {
	centerID, err := forms.ParseInt(c.FormValue("center_id"))
	if err != nil {
		return nil, err
	}
	resourceID, err := forms.ParseInt(c.FormValue("resource_id"))
	if err != nil {
		return nil, err
	}
	qty, err := forms.ParseInt(c.FormValue("quantity_on_hand"))
	if err != nil {
		return nil, err
	}

	cr := &models.CenterResource{CenterID: centerID, ResourceID: resourceID, QuantityOnHand: qty}
	if err := cr.Validate(); err != nil {
		return nil, err
	}
	return cr, nil
}

func saveStockForm(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !auth.Authorize(user.Role, models.RoleManager) {
		return auth.Forbidden(c)
	}

	cr, err := parseStockForm(c)
	if err != nil {
		return c.Redirect("/resources?msg=" + url.QueryEscape(err.Error()))
	}

	db := config.GetDB()
	if idStr := c.Params("id"); idStr != "" {
		id, perr := c.ParamsInt("id")
		if perr != nil {
			return fiber.ErrBadRequest
		}
		cr.ID = id
		if err := database.UpdateCenterResource(db, cr); err != nil {
			if err == sql.ErrNoRows {
				return c.Redirect("/resources?msg=Stock+entry+not+found")
			}
			if database.IsUniqueViolation(err) {
				return c.Redirect("/resources?msg=That+center+already+stocks+this+resource")
			}
			return c.Redirect("/resources?msg=Failed+to+update+stock+entry")
		}
		return c.Redirect("/resources?msg=Stock+entry+updated")
	}

	if err := database.CreateCenterResource(db, cr); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Redirect("/resources?msg=That+center+already+stocks+this+resource,+edit+the+existing+entry")
		}
		if database.IsForeignKeyViolation(err) {
			return c.Redirect("/resources?msg=Unknown+center+or+resource")
		}
		return c.Redirect("/resources?msg=Failed+to+create+stock+entry")
	}
	return c.Redirect("/resources?msg=Stock+entry+created")
}
