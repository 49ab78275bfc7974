package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"church_backend/internal/domain"
	"church_backend/internal/handler/dto"
	"church_backend/internal/service"
)

type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

type SermonSvc interface {
	List(ctx context.Context, category string) ([]domain.Sermon, error)
	GetByVideoID(ctx context.Context, externalVideoID string) (*domain.Sermon, error)
	GetFeatured(ctx context.Context) (*domain.Sermon, error)
}

type EventSvc interface {
	List(ctx context.Context, category string) ([]domain.Event, error)
}

type RegistrationSvc interface {
	Create(ctx context.Context, input service.RegistrationInput) (*domain.Registration, error)
	List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error)
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Registration, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	sermonSync    Syncer
	eventSync     Syncer
	sermons       SermonSvc
	events        EventSvc
	registrations RegistrationSvc
	logger        *slog.Logger
}

func New(
	sermonSync Syncer,
	eventSync Syncer,
	sermons SermonSvc,
	events EventSvc,
	registrations RegistrationSvc,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		sermonSync:    sermonSync,
		eventSync:     eventSync,
		sermons:       sermons,
		events:        events,
		registrations: registrations,
		logger:        logger,
	}
}

// Sync triggers

func (h *Handler) SyncVideos(c *fiber.Ctx) error {
	result, err := h.sermonSync.Sync(c.UserContext())
	if err != nil {
		h.logger.Error("video sync failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Message: "video sync failed",
		})
	}
	return c.JSON(dto.ToSyncResponse(result))
}

func (h *Handler) SyncEvents(c *fiber.Ctx) error {
	result, err := h.eventSync.Sync(c.UserContext())
	if err != nil {
		h.logger.Error("event sync failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Message: "event sync failed",
		})
	}
	return c.JSON(dto.ToSyncResponse(result))
}

// Sermon reads

func (h *Handler) ListSermons(c *fiber.Ctx) error {
	sermons, err := h.sermons.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(dto.SermonListResponse{
		Success:     true,
		Count:       len(sermons),
		LastUpdated: time.Now().UTC(),
		Sermons:     sermons,
	})
}

func (h *Handler) GetSermon(c *fiber.Ctx) error {
	sermon, err := h.sermons.GetByVideoID(c.UserContext(), c.Params("videoId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(dto.SermonResponse{Success: true, Sermon: *sermon})
}

func (h *Handler) GetFeaturedSermon(c *fiber.Ctx) error {
	sermon, err := h.sermons.GetFeatured(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(dto.SermonResponse{Success: true, Sermon: *sermon})
}

// Event reads

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.events.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(dto.EventListResponse{
		Success:     true,
		Count:       len(events),
		LastUpdated: time.Now().UTC(),
		Events:      events,
	})
}

// Registration

func (h *Handler) Register(c *fiber.Ctx) error {
	var input service.RegistrationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "invalid request body",
		})
	}

	reg, err := h.registrations.Create(c.UserContext(), input)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToRegistrationCreated(reg))
}

func (h *Handler) ListRegistrations(c *fiber.Ctx) error {
	filter := domain.RegistrationFilter{
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if year := c.Query("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "invalid year filter",
			})
		}
		filter.CampYear = y
	}

	regs, err := h.registrations.List(c.UserContext(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(dto.RegistrationListResponse{
		Success:       true,
		Count:         len(regs),
		Registrations: regs,
	})
}

func (h *Handler) GetRegistration(c *fiber.Ctx) error {
	reg, err := h.registrations.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(reg)
}

func (h *Handler) UpdateRegistrationStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "invalid request body",
		})
	}

	reg, err := h.registrations.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(reg)
}

func (h *Handler) DeleteRegistration(c *fiber.Ctx) error {
	if err := h.registrations.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleError translates domain errors into responses. Anything unexpected
// becomes a generic message; details stay in the log.
func (h *Handler) handleError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "validation failed",
			Errors:  ve.Fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateRegistration),
		errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrSermonNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: err.Error(),
		})
	}

	h.logger.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Message: "internal server error",
	})
}
