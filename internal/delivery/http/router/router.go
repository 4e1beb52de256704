// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"workdesk/internal/delivery/http/middleware"
	"workdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler  *handler.IdentityHandler
	AccountHandler   *handler.AccountHandler
	GeofenceHandler  *handler.GeofenceHandler
	EmployeeHandler  *handler.EmployeeHandler
	DeviceHandler    *handler.DeviceHandler
	DashboardHandler *handler.DashboardHandler
	ClockHandler     *handler.ClockHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler  *handler.IdentityHandler
	accountHandler   *handler.AccountHandler
	geofenceHandler  *handler.GeofenceHandler
	employeeHandler  *handler.EmployeeHandler
	deviceHandler    *handler.DeviceHandler
	dashboardHandler *handler.DashboardHandler
	clockHandler     *handler.ClockHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler:  params.IdentityHandler,
		accountHandler:   params.AccountHandler,
		geofenceHandler:  params.GeofenceHandler,
		employeeHandler:  params.EmployeeHandler,
		deviceHandler:    params.DeviceHandler,
		dashboardHandler: params.DashboardHandler,
		clockHandler:     params.ClockHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Session routes
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/profile", r.identityHandler.GetProfile)
	}

	// Account lifecycle routes
	userGroup := api.Group("/user")
	{
		userGroup.POST("/close-account-fixed", r.accountHandler.CloseAccount)
	}

	// Workforce routes, all tenant-scoped
	hrGroup := api.Group("/hr")
	hrGroup.Use(r.authMiddleware.RequireTenant)
	{
		hrGroup.GET("/v2/employees/", r.employeeHandler.ListEmployees)

		hrGroup.GET("/geofences/", r.geofenceHandler.ListGeofences)
		hrGroup.POST("/geofences/", r.geofenceHandler.CreateGeofence)
		hrGroup.GET("/geofences/debug_list/", r.geofenceHandler.DebugListGeofences)
		hrGroup.GET("/geofences/map_config/", r.geofenceHandler.MapConfig)
		hrGroup.GET("/geofences/:id/", r.geofenceHandler.GetGeofence)
		hrGroup.PATCH("/geofences/:id/", r.geofenceHandler.UpdateGeofence)
		hrGroup.DELETE("/geofences/:id/", r.geofenceHandler.DeleteGeofence)
		hrGroup.GET("/geofences/:id/qrcode", r.geofenceHandler.SiteQRCode)
		hrGroup.POST("/geofences/:id/assign_employees/", r.employeeHandler.AssignEmployees)

		hrGroup.GET("/employee-geofences/", r.employeeHandler.ListAssignments)

		hrGroup.POST("/clock-events/", r.clockHandler.PublishClockEvent)
	}

	// Push device routes
	deviceGroup := api.Group("/devices")
	{
		deviceGroup.POST("/", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("/", r.deviceHandler.ListDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Dashboard routes, tenant-scoped
	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.RequireTenant)
	{
		dashboardGroup.GET("/summary", r.dashboardHandler.GetSummary)
	}
}
