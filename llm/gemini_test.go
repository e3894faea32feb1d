package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewGeminiClientDefaults(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{APIKey: "key"})
	typed, ok := client.(*geminiClient)
	if !ok {
		t.Fatalf("client type = %T, want *geminiClient", client)
	}
	if typed.cfg.HTTPClient == nil {
		t.Fatal("expected non-nil HTTP client")
	}
	if typed.cfg.BaseURL != defaultGeminiBaseURL {
		t.Fatalf("base url = %q", typed.cfg.BaseURL)
	}
	if typed.cfg.Model != defaultGeminiModel {
		t.Fatalf("model = %q", typed.cfg.Model)
	}
}

func TestGenerateTextRequiresAPIKey(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{})
	if _, err := client.GenerateText(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error without an api key")
	}
}

func TestGenerateTextRequiresPrompt(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{APIKey: "key"})
	if _, err := client.GenerateText(context.Background(), "  "); err == nil {
		t.Fatal("expected an error for a blank prompt")
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte

	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			gotPath = req.URL.Path
			gotKey = req.Header.Get("x-goog-api-key")
			gotBody, _ = io.ReadAll(req.Body)
			return response(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Match "},{"text":"report"}]}}]}`), nil
		}),
	}

	client := NewGeminiClient(GeminiConfig{
		APIKey:     "secret",
		Model:      "gemini-flash-latest",
		HTTPClient: httpClient,
	})

	text, err := client.GenerateText(context.Background(), "write a report")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "Match report" {
		t.Fatalf("text = %q, want parts joined", text)
	}
	if gotPath != "/v1beta/models/gemini-flash-latest:generateContent" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("api key header = %q", gotKey)
	}

	var req geminiRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 || req.Contents[0].Parts[0].Text != "write a report" {
		t.Fatalf("request body = %s", gotBody)
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return response(http.StatusTooManyRequests, `{"error":{"message":"quota exceeded"}}`), nil
		}),
	}

	client := NewGeminiClient(GeminiConfig{APIKey: "key", HTTPClient: httpClient})

	_, err := client.GenerateText(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error for a 429 response")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error %q should carry the provider message", err)
	}
}

func TestGenerateTextNoCandidates(t *testing.T) {
	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return response(http.StatusOK, `{"candidates":[]}`), nil
		}),
	}

	client := NewGeminiClient(GeminiConfig{APIKey: "key", HTTPClient: httpClient})

	if _, err := client.GenerateText(context.Background(), "prompt"); err == nil {
		t.Fatal("expected an error for an empty candidate list")
	}
}
