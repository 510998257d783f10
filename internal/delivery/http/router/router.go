// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"easy/internal/delivery/http/middleware"
	"easy/internal/delivery/http/router/handler"
	"easy/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	DeliveryHandler     *handler.DeliveryHandler
	NotificationHandler *handler.NotificationHandler
	SubscriptionHandler *handler.SubscriptionHandler
	UnitHandler         *handler.UnitHandler
	ProfileHandler      *handler.ProfileHandler
	InviteHandler       *handler.InviteHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	deliveryHandler     *handler.DeliveryHandler
	notificationHandler *handler.NotificationHandler
	subscriptionHandler *handler.SubscriptionHandler
	unitHandler         *handler.UnitHandler
	profileHandler      *handler.ProfileHandler
	inviteHandler       *handler.InviteHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		deliveryHandler:     params.DeliveryHandler,
		notificationHandler: params.NotificationHandler,
		subscriptionHandler: params.SubscriptionHandler,
		unitHandler:         params.UnitHandler,
		profileHandler:      params.ProfileHandler,
		inviteHandler:       params.InviteHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth and invite redemption routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/refresh", r.sessionHandler.Refresh)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	e.GET("/invites/validate", r.inviteHandler.ValidateInvite)
	e.POST("/invites/accept", r.inviteHandler.AcceptInvite)

	// Any signed-in user
	authenticated := e.Group("")
	authenticated.Use(r.authMiddleware.Authenticate)
	{
		authenticated.GET("/session", r.sessionHandler.GetSession)
		authenticated.GET("/notifications", r.notificationHandler.ListNotifications)
		authenticated.GET("/notifications/unread-count", r.notificationHandler.UnreadCount)
		authenticated.POST("/notifications/:id/read", r.notificationHandler.MarkRead)
		authenticated.PUT("/push-subscription", r.subscriptionHandler.Subscribe)
		authenticated.DELETE("/push-subscription", r.subscriptionHandler.Unsubscribe)
		authenticated.GET("/units/:id/deliveries", r.deliveryHandler.ListUnitDeliveries)
	}

	// Front-desk routes; admins can also operate the desk
	frontDesk := e.Group("/deliveries")
	frontDesk.Use(r.authMiddleware.Authenticate)
	frontDesk.Use(r.authMiddleware.RequireRole(entity.RoleFrontDesk, entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		frontDesk.POST("", r.deliveryHandler.RegisterDelivery)
		frontDesk.GET("", r.deliveryHandler.SearchDeliveries)
		frontDesk.GET("/:id", r.deliveryHandler.GetDelivery)
		frontDesk.POST("/:id/pickup", r.deliveryHandler.RegisterPickup)
	}

	// Admin routes
	admin := e.Group("")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		admin.POST("/units", r.unitHandler.CreateUnit)
		admin.GET("/units", r.unitHandler.ListUnits)
		admin.GET("/units/:id", r.unitHandler.GetUnit)
		admin.POST("/units/:id/residents", r.unitHandler.AddResident)
		admin.GET("/units/:id/residents", r.unitHandler.ListUnitResidents)
		admin.DELETE("/units/:id/residents/:profileID", r.unitHandler.RemoveResident)

		admin.GET("/profiles", r.profileHandler.ListProfilesByRole)
		admin.DELETE("/profiles/:id", r.profileHandler.RemoveProfile)

		admin.POST("/invites", r.inviteHandler.CreateInvite)
		admin.GET("/invites/:id/qr", r.inviteHandler.GetInviteQR)
	}
}
