package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"daykeeper/pkg/config"
	"daykeeper/pkg/metrics"
)

// Transcriber turns audio into text by calling an external speech-to-text
// service. One client is created at startup and injected where needed.
type Transcriber struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTranscriber(cfg config.SpeechConfig, logger *zap.Logger) *Transcriber {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Transcriber{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio payload and returns the recognized text.
// An empty transcript with a nil error means the service understood the
// audio but heard nothing usable.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	start := time.Now()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/transcribe", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		metrics.RecordTranscriptionLatency("error", time.Since(start))
		t.logger.Error("Speech service unreachable", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordTranscriptionLatency("error", time.Since(start))
		t.logger.Error("Speech service error", zap.Int("status_code", resp.StatusCode))
		return "", fmt.Errorf("speech service returned %d", resp.StatusCode)
	}

	var decoded transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.RecordTranscriptionLatency("error", time.Since(start))
		return "", err
	}

	metrics.RecordTranscriptionLatency("success", time.Since(start))
	t.logger.Info("Audio transcribed",
		zap.Int("audio_bytes", len(audio)),
		zap.Int("transcript_length", len(decoded.Text)),
	)
	return decoded.Text, nil
}
