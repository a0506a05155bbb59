package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/joshishrau/FacilityFlow/internal/handler/dto"
	"github.com/joshishrau/FacilityFlow/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Submit(ctx context.Context, input domain.SubmitBookingInput) (*domain.Booking, error)
	ApproveByHOD(ctx context.Context, bookingID, approverUID string) (*domain.Booking, error)
	ApproveByHall(ctx context.Context, bookingID, approverUID string) (*domain.Booking, error)
	ListForUser(ctx context.Context, uid, scope string) (*domain.BookingFeed, error)
	PublicApproved(ctx context.Context) ([]*domain.ApprovedPublic, error)
}

type UserSvc interface {
	Sync(ctx context.Context, input domain.SyncUserInput) (*domain.User, error)
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
}

type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
}

type Handler struct {
	bookingService BookingSvc
	userService    UserSvc
	files          FileStore
}

func NewHandler(bookingService BookingSvc, userService UserSvc, files FileStore) *Handler {
	return &Handler{
		bookingService: bookingService,
		userService:    userService,
		files:          files,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SubmitBookingInput{
		UID:               c.GetString(middleware.UIDKey),
		Department:        req.Department,
		EventName:         req.EventName,
		Purpose:           req.Purpose,
		Date:              req.Date,
		Hall:              req.Hall,
		Notes:             req.Notes,
		Slots:             req.Slots,
		SupportingDocPath: req.SupportingDocPath,
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	feed, err := h.bookingService.ListForUser(
		c.Request.Context(),
		c.GetString(middleware.UIDKey),
		c.Query("scope"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingFeedResponse(feed))
}

func (h *Handler) ApproveHOD(c *ginext.Context) {
	booking, err := h.bookingService.ApproveByHOD(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.UIDKey),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveHall(c *ginext.Context) {
	booking, err := h.bookingService.ApproveByHall(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.UIDKey),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PublicApproved(c *ginext.Context) {
	approved, err := h.bookingService.PublicApproved(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ApprovedPublicResponse, 0, len(approved))
	for _, a := range approved {
		resp = append(resp, dto.ToApprovedPublicResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) SyncUser(c *ginext.Context) {
	var req dto.SyncUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SyncUserInput{
		UID:                c.GetString(middleware.UIDKey),
		Name:               req.Name,
		Email:              req.Email,
		Role:               req.Role,
		Department:         req.Department,
		HallResponsibility: req.HallResponsibility,
		TelegramChatID:     req.TelegramChatID,
	}

	if file, err := c.FormFile("signature"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "read signature upload"})
			return
		}
		path, err := h.files.Save(file.Filename, src)
		src.Close()
		if err != nil {
			h.handleError(c, err)
			return
		}
		input.SignaturePath = &path
	}

	user, err := h.userService.Sync(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) GetProfile(c *ginext.Context) {
	user, err := h.userService.GetByUID(c.Request.Context(), c.GetString(middleware.UIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
