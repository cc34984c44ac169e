package reply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"daykeeper/pkg/config"
	"daykeeper/pkg/metrics"
)

const assistantPersona = "You are Dia, an intelligent and sophisticated AI personal assistant. " +
	"You are professional, helpful, and empathetic. Your purpose is to help users manage " +
	"their daily tasks, build productive habits, and achieve their goals through personalized " +
	"guidance and support. You provide clear, actionable advice while maintaining a warm but " +
	"professional tone. Always be encouraging and focus on helping users organize their lives better."

const motivationCacheKey = "daykeeper:motivation"
const motivationCacheTTL = 10 * time.Minute

// Generator produces conversational replies: a local generative model when
// reachable, a canned response table otherwise.
type Generator struct {
	baseURL string
	model   string

	httpClient *http.Client
	cache      *redis.Client
	logger     *zap.Logger
}

func NewGenerator(cfg config.OllamaConfig, cache *redis.Client, logger *zap.Logger) *Generator {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Generator{
		baseURL: cfg.URL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:  cache,
		logger: logger,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Reply answers a free-form user message. It never fails: any model error
// falls back to the canned table.
func (g *Generator) Reply(ctx context.Context, userMessage string) string {
	prompt := fmt.Sprintf("%s\n\nUser: %s\nDia:", assistantPersona, userMessage)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		g.logger.Warn("Model unavailable, using fallback reply", zap.Error(err))
		metrics.IncrementReplyFallback()
		return FallbackReply(userMessage)
	}
	return text
}

// Motivation returns a short motivational message, cached for a few minutes
// so repeated page loads do not hammer the model.
func (g *Generator) Motivation(ctx context.Context) string {
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, motivationCacheKey).Result(); err == nil && cached != "" {
			g.logger.Debug("Motivation served from cache")
			return cached
		} else if err != nil && err != redis.Nil {
			g.logger.Warn("Motivation cache read failed", zap.Error(err))
		}
	}

	text, err := g.generate(ctx, "Give me a short, positive motivational message for today.")
	if err != nil {
		g.logger.Warn("Model unavailable, using fallback motivation", zap.Error(err))
		metrics.IncrementReplyFallback()
		return randomFrom(motivationMessages)
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, motivationCacheKey, text, motivationCacheTTL).Err(); err != nil {
			g.logger.Warn("Motivation cache write failed", zap.Error(err))
		}
	}
	return text
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model endpoint returned %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Response == "" {
		return "I am here for you. How can I help?", nil
	}
	return decoded.Response, nil
}

func randomFrom(options []string) string {
	return options[rand.Intn(len(options))]
}
