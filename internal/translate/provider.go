package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"menuhub/pkg/utils"
)

// Provider turns text into its translation for a target language tag.
// Implementations are expected to bound their own network calls.
type Provider interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// MyMemory calls the public MyMemory REST endpoint.
type MyMemory struct {
	Client  *http.Client
	BaseURL string
	Source  string // source half of the langpair parameter
}

func NewMyMemory(cfg utils.TranslateConfig) *MyMemory {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MyMemory{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: cfg.BaseURL,
		Source:  cfg.PrimaryTag,
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus json.Number `json:"responseStatus"`
}

func (p *MyMemory) Translate(ctx context.Context, text, target string) (string, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("q", text)
	q.Set("langpair", fmt.Sprintf("%s|%s", p.Source, target))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("translator status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read translator body: %w", err)
	}

	var decoded myMemoryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode translator body: %w", err)
	}
	if decoded.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("translator returned empty translation")
	}

	return decoded.ResponseData.TranslatedText, nil
}
