package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ReplaceClaims(c *ginext.Context)
	GetConflicts(c *ginext.Context)
	SubmitEvent(c *ginext.Context)
	StartEvent(c *ginext.Context)
	CompleteEvent(c *ginext.Context)

	ListPending(c *ginext.Context)
	HODApprove(c *ginext.Context)
	HODReject(c *ginext.Context)
	DeanApprove(c *ginext.Context)
	HeadApprove(c *ginext.Context)

	ListVenues(c *ginext.Context)
	ListVenueEvents(c *ginext.Context)
	ListResources(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	CreateResource(c *ginext.Context)
	UpdateResourceQuantity(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter mounts the API. Routes under /api other than /api/users pass
// through actor, which resolves the caller from X-User-ID.
func InitRouter(mode string, h Handler, actor ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users are provisioned by the identity side, before any actor exists.
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	authed := api.Group("")
	authed.Use(actor)
	{
		// Events
		authed.POST("/events", h.CreateEvent)
		authed.GET("/events", h.ListEvents)
		authed.GET("/events/:id", h.GetEvent)
		authed.PUT("/events/:id/resources", h.ReplaceClaims)
		authed.GET("/events/:id/conflicts", h.GetConflicts)
		authed.POST("/events/:id/submit", h.SubmitEvent)
		authed.POST("/events/:id/start", h.StartEvent)
		authed.POST("/events/:id/complete", h.CompleteEvent)

		// Approvals
		authed.GET("/approvals/pending", h.ListPending)
		authed.POST("/approvals/:id/hod-approve", h.HODApprove)
		authed.POST("/approvals/:id/hod-reject", h.HODReject)
		authed.POST("/approvals/:id/dean-approve", h.DeanApprove)
		authed.POST("/approvals/:id/head-approve", h.HeadApprove)

		// Inventory
		authed.GET("/venues", h.ListVenues)
		authed.GET("/venues/:id/events", h.ListVenueEvents)
		authed.GET("/resources", h.ListResources)
		authed.POST("/admin/venues", h.CreateVenue)
		authed.POST("/admin/resources", h.CreateResource)
		authed.PUT("/admin/resources/:id/quantity", h.UpdateResourceQuantity)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
