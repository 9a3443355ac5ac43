package httpapi

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/location"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Dropdown entries contain spaces and emoji, which oneof cannot express.
	_ = v.RegisterValidation("location_option", func(fl validator.FieldLevel) bool {
		_, ok := location.ModeOf(fl.Field().String())
		return ok
	})
	return v
}

// ProbeReporter exposes the latest provider probe for the health endpoint.
type ProbeReporter interface {
	Last() (scheduler.Status, bool)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. probe may be nil.
func RegisterRoutes(app *fiber.App, service *dashboard.Service, probe ProbeReporter) {
	app.Get("/health", func(c *fiber.Ctx) error {
		resp := fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		}
		if probe != nil {
			if st, ok := probe.Last(); ok {
				resp["provider"] = st
			}
		}
		return c.JSON(resp)
	})

	app.Get("/", func(c *fiber.Ctx) error {
		page, err := render(c, service)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, page); err != nil {
			return err
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		page, err := render(c, service)
		if err != nil {
			return err
		}
		return c.JSON(page)
	})
}

// render binds the query string and performs exactly one dashboard render.
func render(c *fiber.Ctx, service *dashboard.Service) (dashboard.Page, error) {
	var q dashboardQuery
	if err := q.bind(c); err != nil {
		return dashboard.Page{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(q); err != nil {
		return dashboard.Page{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	page, err := service.Render(c.UserContext(), q.selection())
	if err != nil {
		return dashboard.Page{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return page, nil
}

// dashboardQuery holds the query parameters of a render. City is the dropdown
// entry, Q the free-text city, Lat/Lon the browser position if known.
type dashboardQuery struct {
	City string   `validate:"required,location_option"`
	Q    string   `validate:"max=200"`
	Lat  *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `validate:"omitempty,gte=-180,lte=180"`
}

func (d *dashboardQuery) bind(c *fiber.Ctx) error {
	d.City = c.Query("city", location.OptionGPS)
	d.Q = c.Query("q")

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if (latStr == "") != (lonStr == "") {
		return errors.New("lat and lon must be provided together")
	}
	if latStr == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("invalid lat")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return errors.New("invalid lon")
	}
	d.Lat, d.Lon = &lat, &lon
	return nil
}

func (d dashboardQuery) selection() location.Selection {
	sel := location.Selection{
		Option:     d.City,
		CustomCity: d.Q,
	}
	if d.Lat != nil && d.Lon != nil {
		sel.Coords = &location.Coordinates{Latitude: *d.Lat, Longitude: *d.Lon}
	}
	return sel
}
