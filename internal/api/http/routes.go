package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
)

const indexView = "index"

// RegisterRoutes wires the dashboard pages and the JSON API into the Fiber app.
func RegisterRoutes(app *fiber.App, ctrl *dashboard.Controller) {
	app.Get("/", func(c *fiber.Ctx) error {
		sel := ctrl.SelectionFor(c.Query("country"), c.Query("city"), c.Query("unit"))
		return c.Render(indexView, ctrl.Idle(sel))
	})

	// The fetch trigger. A failed fetch still renders the page, with the notice.
	app.Get("/weather", func(c *fiber.Ctx) error {
		sel, err := parseSelectionQuery(c, ctrl)
		if err != nil {
			return err
		}
		return c.Render(indexView, ctrl.HandleFetch(c.UserContext(), sel))
	})

	app.Get("/chart", func(c *fiber.Ctx) error {
		sel, err := parseSelectionQuery(c, ctrl)
		if err != nil {
			return err
		}

		view := ctrl.HandleFetch(c.UserContext(), sel)
		if view.Chart == nil {
			return fiber.NewError(fiber.StatusBadGateway, view.Notice)
		}

		c.Type("html", "utf-8")
		return dashboard.RenderChart(c, view.Chart)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/catalog", func(c *fiber.Ctx) error {
		return c.JSON(ctrl.Catalog().Countries())
	})

	v1.Get("/weather", func(c *fiber.Ctx) error {
		sel, err := parseSelectionQuery(c, ctrl)
		if err != nil {
			return err
		}

		view := ctrl.HandleFetch(c.UserContext(), sel)
		if view.State == dashboard.Failed {
			return c.Status(fiber.StatusBadGateway).JSON(view)
		}
		return c.JSON(view)
	})
}

func parseSelectionQuery(c *fiber.Ctx, ctrl *dashboard.Controller) (dashboard.Selection, error) {
	sel, err := ctrl.ParseSelection(c.Query("country"), c.Query("city"), c.Query("unit"))
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidSelection) {
			return sel, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return sel, err
	}
	return sel, nil
}
