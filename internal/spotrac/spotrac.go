package spotrac

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches real-world MLB contract pages from Spotrac. The bot uses
// it for the on-demand contract lookup command, not for the planning
// snapshot.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

// Search looks a player up by name. Spotrac redirects straight to the
// player page on a unique hit, so both outcomes are handled.
func (c *Client) Search(query string) (*SearchResult, error) {
	searchURL := fmt.Sprintf("https://www.spotrac.com/search?q=%s", url.QueryEscape(query))

	req, err := http.NewRequest("GET", searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	finalURL := resp.Request.URL.String()
	if strings.Contains(finalURL, "/player/") && !strings.Contains(finalURL, "/search") {
		return singleResultFromURL(finalURL), nil
	}

	return ParseSearchResults(bytes.NewReader(body))
}

// GetPlayerContract fetches and parses the contract page for a player URL.
func (c *Client) GetPlayerContract(playerURL string) (*ContractInfo, error) {
	req, err := http.NewRequest("GET", playerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return ParseContractInfo(bytes.NewReader(body))
}

func singleResultFromURL(finalURL string) *SearchResult {
	parts := strings.Split(finalURL, "/")
	var playerID, playerName string
	for i, part := range parts {
		if part == "id" && i+1 < len(parts) {
			playerID = parts[i+1]
		}
		if i == len(parts)-1 && part != "" {
			playerName = strings.Title(strings.ReplaceAll(part, "-", " "))
		}
	}

	return &SearchResult{
		Type: "single",
		PlayerResults: []PlayerSearchResult{
			{Name: playerName, URL: finalURL, ID: playerID},
		},
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}
