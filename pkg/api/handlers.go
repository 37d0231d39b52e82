package api

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"obra_api/pkg/models"
	"obra_api/pkg/prompting"
	"obra_api/pkg/prompts"
)

// ChatCompleter generates a reply for an ordered message list.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []prompts.Message, temperature float64) (string, error)
}

// VisionCompleter generates a JSON verdict for a prompt pair plus one inline image.
type VisionCompleter interface {
	CompleteVision(ctx context.Context, system, user string, image []byte, temperature float64) (string, error)
}

// Handlers serves the persona chat and catalog match endpoints.
type Handlers struct {
	chat   ChatCompleter
	vision VisionCompleter

	chatTemperature   float64
	visionTemperature float64
}

// NewHandlers constructs Handlers with the provided gateways.
func NewHandlers(chat ChatCompleter, vision VisionCompleter, chatTemperature, visionTemperature float64) *Handlers {
	return &Handlers{
		chat:              chat,
		vision:            vision,
		chatTemperature:   chatTemperature,
		visionTemperature: visionTemperature,
	}
}

// Register mounts all routes on the echo instance.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/healthz", h.Healthz)
	e.POST("/chat", h.Chat)
	e.POST("/match", h.Match)
}

// Root lists the available operations.
func (h *Handlers) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service":    "obra_api",
		"operations": []string{"/chat", "/match"},
	})
}

// Healthz is the liveness probe.
func (h *Handlers) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Chat handles POST /chat: assemble the persona conversation and return the
// generated reply. A missing title fails before the gateway is invoked.
func (h *Handlers) Chat(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad json: " + err.Error()})
	}

	descriptor := prompting.Descriptor{
		Title:  req.Title,
		Author: req.Author,
		Color:  req.Color,
		Length: req.Length,
	}
	messages, err := prompting.Assemble(descriptor, req.History, req.UserMessage)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}

	reply, err := h.chat.Complete(c.Request().Context(), messages, h.chatTemperature)
	if err != nil {
		log.Ctx(c.Request().Context()).Error().Err(err).Msg("chat generation failed")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// Match handles POST /match: decode the photo, build the disambiguation
// prompt from the catalog and normalize the model's JSON verdict.
func (h *Handlers) Match(c echo.Context) error {
	var req models.MatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad json: " + err.Error()})
	}

	image, err := base64.StdEncoding.DecodeString(stripDataURL(req.ImageB64))
	if err != nil || len(image) == 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad image_b64"})
	}

	system, user := prompting.BuildMatchPrompt(catalogEntries(req))

	raw, err := h.vision.CompleteVision(c.Request().Context(), system, user, image, h.visionTemperature)
	if err != nil {
		log.Ctx(c.Request().Context()).Error().Err(err).Msg("match generation failed")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}

	result, err := prompting.Normalize(raw)
	if err != nil {
		log.Ctx(c.Request().Context()).Error().Err(err).Msg("match output unparseable")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// catalogEntries zips the parallel request lists into entries, tolerating
// authors/colors lists shorter than names.
func catalogEntries(req models.MatchRequest) []prompting.Entry {
	entries := make([]prompting.Entry, len(req.Names))
	for i, name := range req.Names {
		e := prompting.Entry{Name: name}
		if i < len(req.Authors) {
			e.Author = req.Authors[i]
		}
		if i < len(req.Colors) {
			e.Color = req.Colors[i]
		}
		entries[i] = e
	}
	return entries
}

// stripDataURL drops a "data:...;base64," prefix if the frontend sent one.
func stripDataURL(b64 string) string {
	s := strings.TrimSpace(b64)
	if i := strings.Index(s, ","); i != -1 && strings.HasPrefix(strings.ToLower(s[:i]), "data:") {
		return s[i+1:]
	}
	return s
}
