package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/middleware"
	"github.com/piresc/passeio/internal/pkg/models"
)

// HeaderLocationPermission lets the app report that the tutor refused
// location access
const HeaderLocationPermission = "X-Location-Permission"

func sessionOf(c echo.Context) (models.Session, error) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return models.Session{}, errs.ErrUnauthenticated
	}
	return *session, nil
}

// locationFromQuery reads the device coordinate from the lat and lng query
// parameters. A missing coordinate means the permission was not granted.
func locationFromQuery(c echo.Context) (models.Coordinate, error) {
	if locationDenied(c) {
		return models.Coordinate{}, errs.ErrLocationPermissionDenied
	}

	lat, lng := strings.TrimSpace(c.QueryParam("lat")), strings.TrimSpace(c.QueryParam("lng"))
	if lat == "" || lng == "" {
		return models.Coordinate{}, errs.ErrLocationPermissionDenied
	}
	return parseCoordinate(lat, lng)
}

// optionalLocationFromQuery is like locationFromQuery but tolerates no coordinate
func optionalLocationFromQuery(c echo.Context) (*models.Coordinate, error) {
	if c.QueryParam("lat") == "" && c.QueryParam("lng") == "" {
		return nil, nil
	}
	coord, err := locationFromQuery(c)
	if err != nil {
		return nil, err
	}
	return &coord, nil
}

func parseCoordinate(lat, lng string) (models.Coordinate, error) {
	latitude, latErr := strconv.ParseFloat(lat, 64)
	longitude, lngErr := strconv.ParseFloat(lng, 64)
	coord := models.Coordinate{Latitude: latitude, Longitude: longitude}
	if latErr != nil || lngErr != nil || !coord.Valid() {
		return models.Coordinate{}, errs.NewValidationError("location", "Localização inválida.")
	}
	return coord, nil
}

func locationDenied(c echo.Context) bool {
	return strings.EqualFold(c.Request().Header.Get(HeaderLocationPermission), "denied")
}
