package api

import (
	"context"
	"fmt"
	"net/http"
)

type addWordRequest struct {
	WordSD    string `json:"word_sd"`
	WordRoman string `json:"word_roman"`
}

type syncResponse struct {
	NewEntries int `json:"newEntries"`
}

// AddWord stores a manual romanization in the dictionary.
func (c *Client) AddWord(ctx context.Context, wordSD, wordRoman string) error {
	req := addWordRequest{WordSD: wordSD, WordRoman: wordRoman}
	if err := c.do(ctx, http.MethodPost, "/api/admin/roman-words", req, nil); err != nil {
		return fmt.Errorf("add roman word: %w", err)
	}
	return nil
}

// Sync merges unsynced dictionary entries into the lookup artifact and
// returns the number of new entries.
func (c *Client) Sync(ctx context.Context) (int, error) {
	var resp syncResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/roman-words/sync", nil, &resp); err != nil {
		return 0, fmt.Errorf("sync dictionary: %w", err)
	}
	return resp.NewEntries, nil
}
