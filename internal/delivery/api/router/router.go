// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alzassist/internal/delivery/api/middleware"
	"alzassist/internal/delivery/api/router/handler"
	"alzassist/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	LocationHandler   *handler.LocationHandler
	ConnectionHandler *handler.ConnectionHandler
	AlertHandler      *handler.AlertHandler
	CareRecordHandler *handler.CareRecordHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	locationHandler   *handler.LocationHandler
	connectionHandler *handler.ConnectionHandler
	alertHandler      *handler.AlertHandler
	careRecordHandler *handler.CareRecordHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		locationHandler:   params.LocationHandler,
		connectionHandler: params.ConnectionHandler,
		alertHandler:      params.AlertHandler,
		careRecordHandler: params.CareRecordHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate) // Every API route needs a verified token

	// Onboarding only needs a token; the profile does not exist yet
	api.POST("/profiles", r.profileHandler.CreateProfile)

	member := api.Group("")
	member.Use(r.authMiddleware.RequireProfile)

	member.GET("/auth/me", r.authHandler.Me)

	profilesGroup := member.Group("/profiles")
	{
		profilesGroup.PUT("/me", r.profileHandler.UpdateMyProfile)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
	}

	patientOnly := r.authMiddleware.RequireRole(entity.RolePatient)
	caretakerOnly := r.authMiddleware.RequireRole(entity.RoleCaretaker)

	// Location routes
	locationsGroup := member.Group("/locations")
	{
		locationsGroup.POST("", r.locationHandler.SubmitLocation, patientOnly)
		locationsGroup.GET("/:patientId", r.locationHandler.GetHistory, caretakerOnly)
		locationsGroup.GET("/:patientId/latest", r.locationHandler.GetLatest, caretakerOnly)
		locationsGroup.GET("/:patientId/track", r.locationHandler.GetTrack, caretakerOnly)
	}

	// Connection routes
	connectionsGroup := member.Group("/connections")
	{
		connectionsGroup.POST("", r.connectionHandler.SendRequest, caretakerOnly)
		connectionsGroup.PUT("/:id", r.connectionHandler.UpdateStatus, patientOnly)
		connectionsGroup.GET("/patients", r.connectionHandler.ListPatients, caretakerOnly)
		connectionsGroup.GET("/caretakers", r.connectionHandler.ListCaretakers, patientOnly)
		connectionsGroup.GET("/requests", r.connectionHandler.ListRequests, patientOnly)
		connectionsGroup.GET("/qr", r.connectionHandler.GetInviteQR, patientOnly)
		connectionsGroup.POST("/qr", r.connectionHandler.SendRequestFromQR, caretakerOnly)
	}

	// Alert routes (caretakers only)
	alertsGroup := member.Group("/alerts")
	alertsGroup.Use(caretakerOnly)
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.GET("/count", r.alertHandler.CountUnresolved)
		alertsGroup.PUT("/:id/resolve", r.alertHandler.ResolveAlert)
	}

	// Care records. Caretakers read journals, medications and tasks with ?patient_id
	journalsGroup := member.Group("/journals")
	{
		journalsGroup.GET("", r.careRecordHandler.ListJournals)
		journalsGroup.POST("", r.careRecordHandler.CreateJournal, patientOnly)
		journalsGroup.PUT("/:id", r.careRecordHandler.UpdateJournal, patientOnly)
		journalsGroup.DELETE("/:id", r.careRecordHandler.DeleteJournal, patientOnly)
	}

	medicationsGroup := member.Group("/medications")
	{
		medicationsGroup.GET("", r.careRecordHandler.ListMedications)
		medicationsGroup.POST("", r.careRecordHandler.CreateMedication, patientOnly)
		medicationsGroup.PUT("/:id", r.careRecordHandler.UpdateMedication, patientOnly)
		medicationsGroup.DELETE("/:id", r.careRecordHandler.DeleteMedication, patientOnly)
	}

	tasksGroup := member.Group("/tasks")
	{
		tasksGroup.GET("", r.careRecordHandler.ListTasks)
		tasksGroup.POST("", r.careRecordHandler.CreateTask, patientOnly)
		tasksGroup.PUT("/:id", r.careRecordHandler.UpdateTask, patientOnly)
		tasksGroup.DELETE("/:id", r.careRecordHandler.DeleteTask, patientOnly)
	}

	galleryGroup := member.Group("/gallery")
	galleryGroup.Use(patientOnly)
	{
		galleryGroup.GET("", r.careRecordHandler.ListFaces)
		galleryGroup.POST("", r.careRecordHandler.AddFace)
		galleryGroup.DELETE("/:id", r.careRecordHandler.DeleteFace)
	}

	contactsGroup := member.Group("/emergency-contacts")
	contactsGroup.Use(patientOnly)
	{
		contactsGroup.GET("", r.careRecordHandler.ListEmergencyContacts)
		contactsGroup.POST("", r.careRecordHandler.AddEmergencyContact)
		contactsGroup.DELETE("/:id", r.careRecordHandler.DeleteEmergencyContact)
	}
}
