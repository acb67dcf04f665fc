package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nutrikit/backend/internal/domain"
)

const matchPrompt = `You are a food matching agent. Given a query string and a list of food
descriptions, pick the single description that best represents the queried
food. Prefer whole, primary ingredients over composite or processed foods
(e.g. "apple" matches "apples, raw" rather than "apple pie").

The input is a JSON object with a "query" string and a "search_results" array
of {"index", "description"} objects.

Respond with exactly one JSON object and nothing else:
- a confident match:    {"index": 2, "description": "apples, raw"}
- no confident match:   {"index": null, "description": "No confident match found"}`

// Client calls an OpenAI-compatible chat completions endpoint to pick the
// best food candidate for a query. It implements domain.FoodMatcher.
type Client struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

// NewClient creates a new matching backend client
func NewClient(apiKey, apiURL, model string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
	TopP           float64           `json:"top_p"`
	MaxTokens      int               `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type searchResult struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
}

type matchInput struct {
	Query         string         `json:"query"`
	SearchResults []searchResult `json:"search_results"`
}

// matchOutput is the structured reply the prompt demands. A null index is
// the explicit "no confident match" signal.
type matchOutput struct {
	Index       *int   `json:"index"`
	Description string `json:"description"`
}

// MatchFood submits the query and candidate descriptions to the backend and
// parses its structured choice.
func (c *Client) MatchFood(ctx context.Context, query string, candidates []string) (domain.Choice, error) {
	input := matchInput{
		Query:         query,
		SearchResults: make([]searchResult, len(candidates)),
	}
	for i, description := range candidates {
		input.SearchResults[i] = searchResult{Index: i, Description: description}
	}

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return domain.NoMatch, fmt.Errorf("%w: failed to marshal input: %v", domain.ErrMatchFailure, err)
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: matchPrompt},
			{Role: "user", Content: string(inputJSON)},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.6,
		TopP:           0.95,
		MaxTokens:      256,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return domain.NoMatch, fmt.Errorf("%w: failed to marshal request: %v", domain.ErrMatchFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return domain.NoMatch, fmt.Errorf("%w: failed to create request: %v", domain.ErrMatchFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NoMatch, fmt.Errorf("%w: %v", domain.ErrMatchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.NoMatch, fmt.Errorf("%w: status %d, body: %s", domain.ErrMatchFailure, resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return domain.NoMatch, fmt.Errorf("%w: failed to decode response: %v", domain.ErrMatchFailure, err)
	}
	if len(chatResp.Choices) == 0 {
		return domain.NoMatch, fmt.Errorf("%w: no choices in response", domain.ErrMatchFailure)
	}

	var output matchOutput
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &output); err != nil {
		return domain.NoMatch, fmt.Errorf("%w: unparsable model output: %v", domain.ErrMatchFailure, err)
	}

	if output.Index == nil {
		return domain.NoMatch, nil
	}
	return domain.MatchedChoice(*output.Index), nil
}
