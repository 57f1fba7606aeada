// Package client talks to the authoritative game server. Word checks
// are advisory and safe to retry; move submissions are guarded against
// overlap and never retried blindly, since the server arbitrates
// duplicates through the move count.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/halldorb/skraflmotor/game"
	"github.com/halldorb/skraflmotor/move"
)

// ErrSubmitInFlight is returned when a submission is attempted while a
// previous one has not completed.
var ErrSubmitInFlight = errors.New("a move submission is already in flight")

// A Client is an HTTP client for the game server's JSON API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	submitting atomic.Bool
}

// New creates a client for the server at baseURL.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// WordCheckResult is the server's verdict on a word list. Word echoes
// the main word of the request; a caller must discard the result if it
// no longer matches the currently tentative word.
type WordCheckResult struct {
	Word string `json:"word"`
	OK   bool   `json:"ok"`
}

// Fresh reports whether the result still applies to the given
// tentative word.
func (r *WordCheckResult) Fresh(currentWord string) bool {
	return r.Word == currentWord
}

// WordCheck asks the server whether every word formed by the tentative
// move is in the dictionary. Advisory only; a negative answer does not
// block submission.
func (c *Client) WordCheck(ctx context.Context, word string, words []string) (*WordCheckResult, error) {
	reqBody := map[string]any{
		"word":  word,
		"words": lo.Uniq(words),
	}
	var result WordCheckResult
	err := retry.Do(
		func() error {
			return c.post(ctx, "/wordcheck", reqBody, &result)
		},
		retry.Attempts(3),
		retry.Context(ctx),
		retry.Delay(250*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MoveResponse is the server's reply to a move submission.
type MoveResponse struct {
	Result   int               `json:"result"`
	Message  string            `json:"msg"`
	Rack     string            `json:"rack"`
	BagCount int               `json:"bag"`
	NewMoves []game.ServerMove `json:"newmoves"`
	Scores   [2]int            `json:"scores"`
}

// GameOver reports whether the response carries the terminal result
// code.
func (r *MoveResponse) GameOver() bool {
	return r.Result == ResultGameOver
}

// SubmitMove sends a move to the server. moveCount is the client's
// committed move count, which the server uses to reject out-of-sync
// submissions. Only one submission may be in flight at a time.
func (c *Client) SubmitMove(ctx context.Context, gameID string, moveCount int,
	m *move.Move) (*MoveResponse, error) {

	if !c.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer c.submitting.Store(false)

	reqBody := map[string]any{
		"uuid":   gameID,
		"mcount": moveCount,
		"moves":  m.Wire(),
	}
	var resp MoveResponse
	if err := c.post(ctx, "/submitmove", reqBody, &resp); err != nil {
		return nil, err
	}
	log.Debug().
		Str("game", gameID).
		Int("result", resp.Result).
		Msg("move submitted")
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody any, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
