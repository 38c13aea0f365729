// Package tts synthesizes word pronunciations with Google Cloud Text-to-Speech.
package tts

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrTTSUnavailable = errors.New("tts unavailable")

const defaultEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// Config configures the client. An empty APIKey disables synthesis; cached
// audio is still served.
type Config struct {
	APIKey   string
	CacheDir string
	Language string
	Timeout  time.Duration
}

// Client fetches MP3 audio and caches it on disk by text and language.
type Client struct {
	apiKey     string
	cacheDir   string
	language   string
	endpoint   string
	mu         sync.Mutex
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new client and its cache directory.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	if cfg.CacheDir != "" {
		if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("create tts cache dir: %w", err)
		}
	}

	return &Client{
		apiKey:   cfg.APIKey,
		cacheDir: cfg.CacheDir,
		language: cfg.Language,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

func (c *Client) cacheKey(text string) string {
	h := sha256.Sum256([]byte(c.language + ":" + text))
	return hex.EncodeToString(h[:16])
}

func (c *Client) cachePath(text string) string {
	if c.cacheDir == "" {
		return ""
	}
	return filepath.Join(c.cacheDir, c.cacheKey(text)+".mp3")
}

// Synthesize returns MP3 audio for text, from cache when possible.
// Failures are not cached.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	path := c.cachePath(text)
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have filled the cache while we waited.
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("%q: no api key: %w", text, ErrTTSUnavailable)
	}

	data, err := c.callGoogleTTS(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", text, ErrTTSUnavailable, err)
	}

	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			c.logger.Warn("failed to cache tts audio", zap.String("path", path), zap.Error(err))
		}
	}

	return data, nil
}

func (c *Client) callGoogleTTS(ctx context.Context, text string) ([]byte, error) {
	reqBody := map[string]any{
		"input": map[string]string{
			"text": text,
		},
		"voice": map[string]any{
			"languageCode": c.language,
			"ssmlGender":   "FEMALE",
		},
		"audioConfig": map[string]any{
			"audioEncoding": "MP3",
			"speakingRate":  0.9,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts api error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}

	return audio, nil
}
