package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/redisdb-exchange/internal/exchange/application"
	"github.com/davicafu/redisdb-exchange/internal/exchange/domain"
	"github.com/davicafu/redisdb-exchange/pkg/utils"
)

// ExchangeHandler expone la publicación en el exchange vía HTTP
type ExchangeHandler struct {
	service *application.ExchangeService
	log     *zap.Logger
}

func NewExchangeHandler(service *application.ExchangeService, log *zap.Logger) *ExchangeHandler {
	return &ExchangeHandler{service: service, log: log}
}

// PublishMessage endpoint POST /exchange/messages
func (h *ExchangeHandler) PublishMessage(c *gin.Context) {
	var req struct {
		Origin     string                 `json:"origin" binding:"required"`
		RoutingKey string                 `json:"routing_key" binding:"required"`
		Data       map[string]interface{} `json:"data"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, utils.CodeInvalidRequest, err.Error())
		return
	}

	err := h.service.Publish(c.Request.Context(), req.Origin, req.RoutingKey, req.Data)
	switch {
	case err == nil:
		utils.SendSuccess(c, http.StatusAccepted, gin.H{"status": "published"})
	case errors.Is(err, domain.ErrUnknownOrigin):
		utils.SendBadRequest(c, utils.CodeUnknownOrigin, err.Error())
	case errors.Is(err, domain.ErrUnknownRoutingKey):
		utils.SendBadRequest(c, utils.CodeUnknownRoutingKey, err.Error())
	case errors.Is(err, domain.ErrEncodeEnvelope):
		utils.SendBadRequest(c, utils.CodeInvalidPayload, err.Error())
	default:
		h.log.Error("Error publicando en el exchange", zap.Error(err))
		utils.SendBadGateway(c, "exchange unavailable")
	}
}
