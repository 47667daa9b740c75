// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/notesmith/internal/httputil"
	"github.com/pdiddy/notesmith/pkg/types"
)

// geminiAPIBase is the Generative Language API root. Declared as a var so
// tests can substitute an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com"

// File states reported by the files API.
const (
	fileStateActive = "ACTIVE"
	fileStateFailed = "FAILED"
)

// GeminiBackend transcribes PDFs through the Gemini files and
// generateContent APIs: upload the PDF, poll until it is ACTIVE, generate
// the transcription, then delete the uploaded file.
type GeminiBackend struct {
	Client *http.Client
	APIKey string
	Config types.TranscriptionConfig
	Log    *logrus.Logger
}

// geminiFile is the file resource returned by the files API.
type geminiFile struct {
	Name  string `json:"name"`
	URI   string `json:"uri"`
	State string `json:"state"`
}

type uploadResponse struct {
	File geminiFile `json:"file"`
}

type generateRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text     string          `json:"text,omitempty"`
	FileData *geminiFileData `json:"fileData,omitempty"`
}

type geminiFileData struct {
	MimeType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Transcribe uploads the PDF, waits for server-side processing, and returns
// the generated Markdown.
func (b *GeminiBackend) Transcribe(ctx context.Context, pdfPath string) (string, error) {
	file, err := b.upload(ctx, pdfPath)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", pdfPath, err)
	}

	file, err = b.waitForActive(ctx, file)
	if err != nil {
		return "", err
	}

	markdown, err := b.generate(ctx, file)
	if err != nil {
		return "", err
	}

	// Remote cleanup is best-effort; the file expires server-side anyway.
	if err := b.delete(ctx, file); err != nil {
		b.log().WithError(err).Warnf("could not delete uploaded file %s", file.Name)
	}

	return markdown, nil
}

func (b *GeminiBackend) upload(ctx context.Context, pdfPath string) (geminiFile, error) {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return geminiFile{}, err
	}

	reqURL := geminiAPIBase + "/upload/v1beta/files?key=" + url.QueryEscape(b.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return geminiFile{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("X-Goog-Upload-Protocol", "raw")

	resp, err := httputil.DoWithRetry(ctx, b.client(), req, b.Config.MaxRetries)
	if err != nil {
		return geminiFile{}, fmt.Errorf("Gemini upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geminiFile{}, apiError("Gemini upload", resp)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return geminiFile{}, fmt.Errorf("parsing upload response: %w", err)
	}
	if ur.File.Name == "" {
		return geminiFile{}, fmt.Errorf("Gemini upload returned no file name")
	}
	return ur.File, nil
}

// waitForActive polls the files API until the uploaded PDF is ACTIVE,
// failing on the FAILED state or when the configured timeout elapses.
func (b *GeminiBackend) waitForActive(ctx context.Context, file geminiFile) (geminiFile, error) {
	timeout := b.Config.UploadTimeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	interval := b.Config.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	deadline := time.Now().Add(timeout)
	for {
		current, err := b.getFile(ctx, file.Name)
		if err != nil {
			return geminiFile{}, err
		}

		switch current.State {
		case fileStateActive:
			return current, nil
		case fileStateFailed:
			return geminiFile{}, fmt.Errorf("Gemini file processing failed for %s", file.Name)
		}

		if time.Now().After(deadline) {
			return geminiFile{}, fmt.Errorf("file %s did not become active within %v", file.Name, timeout)
		}

		b.log().Debugf("file %s is %s, polling again in %v", file.Name, current.State, interval)
		select {
		case <-ctx.Done():
			return geminiFile{}, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (b *GeminiBackend) getFile(ctx context.Context, name string) (geminiFile, error) {
	reqURL := fmt.Sprintf("%s/v1beta/%s?key=%s", geminiAPIBase, name, url.QueryEscape(b.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return geminiFile{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, b.client(), req, b.Config.MaxRetries)
	if err != nil {
		return geminiFile{}, fmt.Errorf("Gemini file status request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geminiFile{}, apiError("Gemini file status", resp)
	}

	var f geminiFile
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return geminiFile{}, fmt.Errorf("parsing file status response: %w", err)
	}
	return f, nil
}

func (b *GeminiBackend) generate(ctx context.Context, file geminiFile) (string, error) {
	body := generateRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{FileData: &geminiFileData{MimeType: "application/pdf", FileURI: file.URI}},
				{Text: userPrompt},
			},
		}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		geminiAPIBase, b.Config.Model, url.QueryEscape(b.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, b.client(), req, b.Config.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("Gemini generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError("Gemini generate", resp)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("parsing generate response: %w", err)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("Gemini returned no candidates")
	}

	var b2 strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		b2.WriteString(part.Text)
	}
	return b2.String(), nil
}

func (b *GeminiBackend) delete(ctx context.Context, file geminiFile) error {
	reqURL := fmt.Sprintf("%s/v1beta/%s?key=%s", geminiAPIBase, file.Name, url.QueryEscape(b.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := b.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}

func (b *GeminiBackend) client() *http.Client {
	if b.Client != nil {
		return b.Client
	}
	return http.DefaultClient
}

func (b *GeminiBackend) log() *logrus.Logger {
	if b.Log != nil {
		return b.Log
	}
	return logrus.StandardLogger()
}

// apiError builds an error from a non-200 API response, including a snippet
// of the body when present.
func apiError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(body) > 0 {
		return fmt.Errorf("%s returned HTTP %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return fmt.Errorf("%s returned HTTP %d", operation, resp.StatusCode)
}
