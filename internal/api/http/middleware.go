package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/observability"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// RegisterMiddlewares attaches global middlewares such as fault handling and
// request logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(faultHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

// faultHandlingMiddleware converts faults returned by handlers into the
// console's error envelope. No fault propagates past this boundary.
func faultHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = faultutil.NewInternal(nil)
			}
			if err != nil {
				fault := faultutil.ToFault(err)
				metrics.RecordFault(c.Path(), c.Method(), string(fault.Kind))
				if fault.HTTPStatus() >= 500 {
					logger.Error("request failed", zap.Error(fault))
				}
				c.Status(fault.HTTPStatus())
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"kind":    fault.Kind,
					"message": fault.Message,
				}})
				err = nil
			}
		}()
		return c.Next()
	}
}
