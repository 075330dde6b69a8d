// Package remote talks to a QuizCraft backend over HTTP. The backend
// owns PDF extraction and model calls; this client speaks its two
// endpoints: POST /api/upload (multipart) and POST /api/chat (JSON).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"quizcraft/internal/generation"
	"quizcraft/internal/studykit"
)

// DefaultTimeout bounds one backend round trip. Generation reads a whole
// document through an LLM, so this is deliberately generous.
const DefaultTimeout = 3 * time.Minute

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the backend at baseURL, e.g.
// "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
	}
}

// Generate uploads the document and returns the generated study kit.
// A kit without usable questions is an error even on HTTP 200.
func (c *Client) Generate(ctx context.Context, genReq generation.Request) (*studykit.StudyKit, error) {
	file, err := os.Open(genReq.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("pdf", filepath.Base(genReq.DocumentPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if err := form.WriteField("num_questions", strconv.Itoa(genReq.Count)); err != nil {
		return nil, err
	}
	if err := form.WriteField("difficulty", string(genReq.Difficulty)); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload response: %w", err)
	}
	kit, err := studykit.DecodeKit(raw)
	if err != nil {
		return nil, err
	}
	if err := kit.Validate(); err != nil {
		return nil, err
	}
	return kit, nil
}

// Ask sends a question with the extracted document text as context and
// returns the backend's answer.
func (c *Client) Ask(ctx context.Context, question, referenceContext string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"question": question,
		"context":  referenceContext,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send question: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorFromResponse(resp)
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return out.Answer, nil
}

// errorFromResponse extracts the backend's {"error": "..."} message,
// falling back to the raw body for non-JSON errors.
func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s", payload.Error)
	}
	return fmt.Errorf("backend status %d: %s", resp.StatusCode, string(body))
}
