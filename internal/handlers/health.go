package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ayoo/internal/repositories"
)

// HealthCheck probes the database and cache rather than reporting a
// static payload, so load balancers see real backend state. A cache
// outage degrades the overall status but keeps the endpoint at 200:
// the cache is read-through only, so the API still serves requests
// without it. Only a database outage returns 503.
func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "unavailable"
	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbStatus = "connected"
		}
	}

	redisStatus := "connected"
	if repositories.CacheService == nil || repositories.CacheService.HealthCheck(c.Context()) != nil {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "ok"
	if redisStatus != "connected" {
		overall = "degraded"
	}
	if dbStatus != "connected" {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
