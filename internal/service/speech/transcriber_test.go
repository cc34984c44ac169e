package speech

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"daykeeper/pkg/config"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		file, header, err := r.FormFile("audio")
		if err != nil {
			t.Fatalf("missing audio form file: %v", err)
		}
		defer file.Close()

		if header.Filename != "command.webm" {
			t.Errorf("filename = %q, want command.webm", header.Filename)
		}
		payload, _ := io.ReadAll(file)
		if string(payload) != "fake-audio" {
			t.Errorf("payload = %q, want fake-audio", payload)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "remind me to buy milk"})
	}))
	defer srv.Close()

	tr := NewTranscriber(config.SpeechConfig{URL: srv.URL, TimeoutSeconds: 2}, zap.NewNop())
	got, err := tr.Transcribe(context.Background(), []byte("fake-audio"), "command.webm")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "remind me to buy milk" {
		t.Errorf("transcript = %q, want %q", got, "remind me to buy milk")
	}
}

func TestTranscribeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewTranscriber(config.SpeechConfig{URL: srv.URL, TimeoutSeconds: 2}, zap.NewNop())
	if _, err := tr.Transcribe(context.Background(), []byte("x"), "a.webm"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestTranscribeEmptyTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": ""})
	}))
	defer srv.Close()

	tr := NewTranscriber(config.SpeechConfig{URL: srv.URL, TimeoutSeconds: 2}, zap.NewNop())
	got, err := tr.Transcribe(context.Background(), []byte("x"), "a.webm")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "" {
		t.Errorf("transcript = %q, want empty", got)
	}
}
