package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Oleguzik/myMovies/internal/movies"
)

// Client queries the OMDb API for movie metadata.
// A lookup miss returns movies.ErrTitleNotFound; transport failures
// come back as wrapped errors so the caller can tell the two apart.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient constructs an OMDb client. A timeout of 0 disables the
// client-side deadline; cancellation then rests entirely on the
// caller's context.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup fetches metadata for the given free-text title.
func (c *Client) Lookup(ctx context.Context, title string) (*movies.MovieInfo, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	endpoint := c.baseURL + "/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("omdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb: upstream returned %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("omdb: decoding response: %w", err)
	}

	// OMDb reports misses in the body, not the status code.
	if payload.Response == "False" {
		return nil, movies.ErrTitleNotFound
	}

	return &movies.MovieInfo{
		Title:  payload.Title,
		Year:   parseYear(payload.Year),
		Rating: parseRating(payload.ImdbRating),
		Poster: payload.Poster,
	}, nil
}

type apiResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// parseYear extracts the first 4-digit run from OMDb's year field,
// which may be a range like "2008–2013" for series. Returns 0 when no
// year is present.
func parseYear(s string) int {
	m := yearPattern.FindString(s)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}

// parseRating converts OMDb's rating string, treating "N/A" and other
// unparsable values as 0.
func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Compile-time check that Client implements the metadata lookup interface
var _ movies.MetadataClient = (*Client)(nil)
