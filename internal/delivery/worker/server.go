package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"alzassist/config"
	"alzassist/internal/delivery"
	"alzassist/internal/delivery/middleware"
	"alzassist/internal/delivery/worker/handler"
	"alzassist/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBodyLimit bounds a Pub/Sub push envelope. Geofence exit events are a few hundred bytes.
const pushBodyLimit = "256K"

// alertWorker is the push endpoint that receives geofence exit events.
type alertWorker struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the alert worker and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	w := &alertWorker{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   newWorkerEcho(params.Cfg, params.Logger),
	}
	registerWorkerRoutes(w.echo, params.PushHandler)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

// newWorkerEcho returns an echo instance carrying the correlation and access-log chain.
// Recover runs outermost so a panicking push still yields a 500 that Pub/Sub retries.
func newWorkerEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	return e
}

func registerWorkerRoutes(e *echo.Echo, push *handler.PushHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": "alert-worker"})
	})
	e.POST("/push", push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))
}

// Serve blocks until the listener closes. A graceful shutdown is not an error.
func (w *alertWorker) Serve(_ context.Context) error {
	w.logger.Info("Alert worker listening", slog.String("addr", w.addr))

	err := w.echo.Start(w.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (w *alertWorker) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	w.logger.Info("Alert worker draining")

	return errors.WithStack(w.echo.Shutdown(ctx))
}
