package api

import (
	"fairhold/internal/logger"
	"fairhold/internal/service"
	"fairhold/internal/util"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type ApiHandler struct {
	Cfg                    util.Config
	Logger                 *zap.SugaredLogger
	SuiteService           service.SuiteService
	YieldSimulationService service.YieldSimulationService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fairhold"})
	})
	router.POST("/yield/simple", m.simpleYield)
	router.POST("/yield/compound", m.compoundYield)
	router.GET("/yield/scenarios", m.yieldScenarios)
	router.GET("/health", m.health)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) baseLogger() *zap.SugaredLogger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.S()
}

// logRequestMiddlware tags every request with an id and carries a scoped
// logger on the request context
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	requestID := uuid.New()
	ctx.Header(requestIDHeader, requestID.String())

	log := m.baseLogger().With("requestID", requestID.String())
	ctx.Request = ctx.Request.WithContext(logger.WithLogger(ctx.Request.Context(), log))

	start := time.Now()
	ctx.Next()

	log.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.FullPath(),
		"status", ctx.Writer.Status(),
		"latencyMs", time.Since(start).Milliseconds(),
	)
}
