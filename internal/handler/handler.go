package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stpnv0/EventApproval/internal/handler/dto"
	"github.com/stpnv0/EventApproval/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error)
	ReplaceClaims(ctx context.Context, actor domain.Actor, eventID string, claims []domain.ClaimInput) ([]domain.ResourceClaim, error)
	GetDetails(ctx context.Context, actor domain.Actor, id string) (*domain.EventDetails, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Event, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error)
	Conflicts(ctx context.Context, actor domain.Actor, eventID string) (*domain.ConflictReport, error)
}

type ApprovalSvc interface {
	Submit(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	HODApprove(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	HODReject(ctx context.Context, actor domain.Actor, id, reason string) (*domain.Event, error)
	DeanApprove(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	HeadApprove(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	Start(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	Complete(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)
	Pending(ctx context.Context, actor domain.Actor) ([]*domain.Event, error)
}

type InventorySvc interface {
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	ListResources(ctx context.Context) ([]*domain.Resource, error)
	CreateVenue(ctx context.Context, actor domain.Actor, input domain.CreateVenueInput) (*domain.Venue, error)
	CreateResource(ctx context.Context, actor domain.Actor, input domain.CreateResourceInput) (*domain.Resource, error)
	UpdateResourceQuantity(ctx context.Context, actor domain.Actor, id string, total int) (*domain.Resource, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService     EventSvc
	approvalService  ApprovalSvc
	inventoryService InventorySvc
	userService      UserSvc
}

func NewHandler(
	eventService EventSvc,
	approvalService ApprovalSvc,
	inventoryService InventorySvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		eventService:     eventService,
		approvalService:  approvalService,
		inventoryService: inventoryService,
		userService:      userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	input := domain.CreateEventInput{
		Title:            req.Title,
		Department:       req.Department,
		VenueID:          req.VenueID,
		StartTime:        start,
		EndTime:          end,
		ParticipantCount: req.ParticipantCount,
		Claims:           toClaims(req.Resources),
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), actor, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	events, err := h.eventService.List(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events))
}

func (h *Handler) ReplaceClaims(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.ReplaceClaimsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := h.eventService.ReplaceClaims(c.Request.Context(), actor, id, toClaims(req.Resources))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClaimsResponse(claims))
}

func (h *Handler) GetConflicts(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	report, err := h.eventService.Conflicts(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) ListVenueEvents(c *ginext.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	events, err := h.eventService.ListByVenue(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events))
}

// Lifecycle

type transitionFunc func(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error)

func (h *Handler) transition(c *ginext.Context, fn transitionFunc) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	event, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) SubmitEvent(c *ginext.Context)   { h.transition(c, h.approvalService.Submit) }
func (h *Handler) StartEvent(c *ginext.Context)    { h.transition(c, h.approvalService.Start) }
func (h *Handler) CompleteEvent(c *ginext.Context) { h.transition(c, h.approvalService.Complete) }
func (h *Handler) HODApprove(c *ginext.Context)    { h.transition(c, h.approvalService.HODApprove) }
func (h *Handler) DeanApprove(c *ginext.Context)   { h.transition(c, h.approvalService.DeanApprove) }
func (h *Handler) HeadApprove(c *ginext.Context)   { h.transition(c, h.approvalService.HeadApprove) }

func (h *Handler) HODReject(c *ginext.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.transition(c, func(ctx context.Context, actor domain.Actor, id string) (*domain.Event, error) {
		return h.approvalService.HODReject(ctx, actor, id, req.Reason)
	})
}

func (h *Handler) ListPending(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	events, err := h.approvalService.Pending(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsResponse(events))
}

// Inventory

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.inventoryService.ListVenues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListResources(c *ginext.Context) {
	resources, err := h.inventoryService.ListResources(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateVenue(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.inventoryService.CreateVenue(c.Request.Context(), actor, domain.CreateVenueInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) CreateResource(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.inventoryService.CreateResource(c.Request.Context(), actor, domain.CreateResourceInput{
		Name:          req.Name,
		TotalQuantity: req.TotalQuantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceResponse(res))
}

func (h *Handler) UpdateResourceQuantity(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "resource")
	if !ok {
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.inventoryService.UpdateResourceQuantity(c.Request.Context(), actor, id, *req.TotalQuantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceResponse(res))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
	}
	return actor, ok
}

func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func toClaims(req []dto.ClaimRequest) []domain.ClaimInput {
	claims := make([]domain.ClaimInput, 0, len(req))
	for _, r := range req {
		claims = append(claims, domain.ClaimInput{ResourceID: r.ResourceID, Quantity: r.Quantity})
	}
	return claims
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var allocErr *domain.AllocationError
	switch {
	case errors.As(err, &allocErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: allocErr.Error(), Conflict: allocErr})

	case errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
