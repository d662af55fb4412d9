package handler

import (
	"fmt"
	"net/http"
	"strconv"

	md "github.com/Astemirdum/rental-service/pkg/middleware"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/pkg/auth"
	"github.com/Astemirdum/rental-service/pkg/validate"
	_ "github.com/Astemirdum/rental-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	bookingSvc BookingService
	userSvc    UserService
	itemSvc    ItemService
	statsSvc   StatsService
	log        *zap.Logger
}

func New(bookingSvc BookingService, userSvc UserService, itemSvc ItemService, statsSvc StatsService, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		userSvc:    userSvc,
		itemSvc:    itemSvc,
		statsSvc:   statsSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.GetUsers)
	api.GET("/users/:userId", h.GetUser)
	api.PATCH("/users/:userId", h.UpdateUser)
	api.DELETE("/users/:userId", h.DeleteUser)

	api.GET("/stats", h.GetStats)

	authAPI := api.Group("", md.AuthContext)

	authAPI.POST("/items", h.CreateItem)
	authAPI.GET("/items", h.GetItems)
	authAPI.GET("/items/:itemId", h.GetItem)
	authAPI.PATCH("/items/:itemId", h.UpdateItem)

	authAPI.POST("/bookings", h.CreateBooking)
	authAPI.GET("/bookings", h.GetBookings)
	authAPI.GET("/bookings/owner", h.GetOwnerBookings)
	authAPI.GET("/bookings/:bookingId", h.GetBooking)
	authAPI.PATCH("/bookings/:bookingId", h.ApproveBooking)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()
	bookerID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingSvc.CreateBooking(ctx, req, bookerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrForbidden) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrInvalidRequest) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookingId is invalid"))
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("approved is invalid"))
	}

	booking, err := h.bookingSvc.ApproveBooking(ctx, bookingID, ownerID, approved)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrForbidden) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrInvalidRequest) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookingId is invalid"))
	}

	booking, err := h.bookingSvc.GetBooking(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrForbidden) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBookings(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	state := c.QueryParam("state")
	if state == "" {
		state = string(model.StateAll)
	}

	bookings, err := h.bookingSvc.ListByBooker(ctx, userID, state)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrUnsupportedState) {
			return c.JSON(http.StatusInternalServerError, errs.ErrorResponse{Error: fmt.Sprintf("Unknown state: %s", state)})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetOwnerBookings(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	state := c.QueryParam("state")
	if state == "" {
		state = string(model.StateAll)
	}

	bookings, err := h.bookingSvc.ListByOwner(ctx, ownerID, state)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrUnsupportedState) {
			return c.JSON(http.StatusInternalServerError, errs.ErrorResponse{Error: fmt.Sprintf("Unknown state: %s", state)})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}
