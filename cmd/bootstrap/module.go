package bootstrap

import (
	"stable-booking/cmd/bootstrap/components"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Application is the HTTP graph on top of a pool, a config and a logger.
// The e2e suite supplies those three itself and reuses the rest.
var Application = fx.Options(
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.Provide(NewEngine),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	Application,
)

func NewEngine() *gin.Engine {
	return gin.New()
}
