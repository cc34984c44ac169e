package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daykeeper/internal/service/interpreter"
)

// Conversation is the chat/voice command surface: the single-intent command
// interpreter plus the multi-match proactive detector.
type Conversation interface {
	Interpret(ctx context.Context, text string) interpreter.Outcome
	DetectAndCreate(ctx context.Context, message string) interpreter.DetectedItems
}

// ReplyGenerator produces free-form conversational text.
type ReplyGenerator interface {
	Reply(ctx context.Context, text string) string
	Motivation(ctx context.Context) string
}

// Transcriber turns an uploaded audio payload into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type AssistantHandler struct {
	conversation Conversation
	replies      ReplyGenerator
	transcriber  Transcriber
	logger       *zap.Logger
}

func NewAssistantHandler(
	conversation Conversation,
	replies ReplyGenerator,
	transcriber Transcriber,
	logger *zap.Logger,
) *AssistantHandler {
	return &AssistantHandler{
		conversation: conversation,
		replies:      replies,
		transcriber:  transcriber,
		logger:       logger,
	}
}

// Chat handles POST /api/chat. The proactive detector runs first and any
// created items are acknowledged in front of the generated reply.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	ctx := c.Request.Context()
	detected := h.conversation.DetectAndCreate(ctx, req.Message)
	reply := h.replies.Reply(ctx, req.Message)

	if len(detected.Habits) > 0 {
		reply = fmt.Sprintf("Perfect! I've added '%s' to your habits tracker. %s",
			strings.Join(detected.Habits, ", "), reply)
	}
	if len(detected.Tasks) > 0 {
		reply = fmt.Sprintf("Great! I've created the task '%s' for you. %s",
			strings.Join(detected.Tasks, ", "), reply)
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Motivation handles GET /api/motivation.
func (h *AssistantHandler) Motivation(c *gin.Context) {
	message := h.replies.Motivation(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"motivation": message})
}

// Voice handles POST /api/voice: transcribe the uploaded audio, run the
// command interpreter on the transcript, and report both.
func (h *AssistantHandler) Voice(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		h.logger.Warn("Voice: no audio file in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Voice: failed to read audio payload", zap.Error(err))
		h.voiceError(c)
		return
	}

	h.logger.Info("Voice request received",
		zap.String("filename", header.Filename),
		zap.Int("audio_bytes", len(audio)),
	)

	ctx := c.Request.Context()
	transcript, err := h.transcriber.Transcribe(ctx, audio, header.Filename)
	if err != nil {
		h.logger.Error("Voice: transcription failed", zap.Error(err))
		h.voiceError(c)
		return
	}

	if strings.TrimSpace(transcript) == "" {
		c.JSON(http.StatusOK, gin.H{
			"transcript": "",
			"reply":      "I didn't catch that. Could you please try speaking again?",
			"action":     "error",
		})
		return
	}

	outcome := h.conversation.Interpret(ctx, transcript)

	resp := gin.H{
		"transcript": transcript,
		"reply":      outcome.Reply,
		"action":     outcome.Action,
	}
	if outcome.TaskAdded != "" {
		resp["task_added"] = outcome.TaskAdded
	}
	if outcome.App != "" {
		resp["app"] = outcome.App
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssistantHandler) voiceError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"transcript": "",
		"reply":      "Sorry, there was an error processing your voice command.",
		"action":     "error",
	})
}
