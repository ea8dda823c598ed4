// Package http exposes the order dispatch contract over HTTP. All commands
// arrive as POST /commands/:command with a JSON payload; the response is the
// dispatched result or a JSON error envelope.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Dispatcher executes one wire command against its handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, command string, payload []byte) (any, error)
}

// ErrorResponse is the JSON error envelope returned for failed commands.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server handles HTTP requests by forwarding them to the command dispatcher.
type Server struct {
	dispatcher Dispatcher
}

// NewServer creates a new HTTP server around the dispatcher.
func NewServer(dispatcher Dispatcher) *Server {
	return &Server{dispatcher: dispatcher}
}

// Register attaches the server's routes to an echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/commands/:command", s.HandleCommand)
	e.GET("/health", s.Health)
}

// HandleCommand executes one wire command. Validation and state-conflict
// errors map to 400, not-found to 404, everything else to 500.
func (s *Server) HandleCommand(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	result, err := s.dispatcher.Dispatch(ctx.Request().Context(), ctx.Param("command"), payload)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, order.ErrNoItems):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
