// Package httpapi exposes the table service over HTTP for browser clients:
// a JSON API for the session shell plus a websocket feed for the live roll
// log.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	commonUUID "github.com/goldhollow/trophytable/internal/common/uuid"
	"github.com/goldhollow/trophytable/internal/services/table"
)

// clientTokenCookie carries the anonymous client identity used for join
// preferences. It is not authentication.
const clientTokenCookie = "tg_client"

// cookieMaxAge keeps the client token around for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// Config holds the handler dependencies.
type Config struct {
	TableService  table.Service
	UUIDGenerator commonUUID.UUID
	Logger        *zap.Logger
}

// Handler serves the table API.
type Handler struct {
	service table.Service
	uuid    commonUUID.UUID
	logger  *zap.Logger
}

// New creates an HTTP handler.
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.TableService == nil {
		return nil, errors.New("table service cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Handler{
		service: cfg.TableService,
		uuid:    cfg.UUIDGenerator,
		logger:  cfg.Logger,
	}, nil
}

// RegisterRoutes attaches the API to a router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/landing", h.landing)
		api.GET("/reference", h.reference)
		api.POST("/sessions", h.createSession)

		session := api.Group("/sessions/:id")
		{
			session.GET("", h.prefill)
			session.POST("/join", h.join)

			session.GET("/rolls", h.history)
			session.POST("/rolls", h.roll)
			session.POST("/rolls/push", h.push)
			session.DELETE("/rolls", h.purgeHistory)
			session.GET("/feed", h.feed)

			session.GET("/characters", h.party)
			session.GET("/characters/:player", h.getCharacter)
			session.GET("/characters/:player/export", h.exportCharacter)
			session.PATCH("/characters/:player", h.updateCharacter)
			session.PUT("/characters/:player", h.importCharacter)
		}
	}
}

// clientToken returns the anonymous client token, minting and setting one
// when the client does not carry it yet.
func (h *Handler) clientToken(c *gin.Context) string {
	token, err := c.Cookie(clientTokenCookie)
	if err == nil && token != "" {
		return token
	}

	token = h.uuid.NewUUID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(clientTokenCookie, token, cookieMaxAge, "/", "", false, true)
	return token
}
