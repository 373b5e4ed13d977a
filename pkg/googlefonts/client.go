package googlefonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fontwell/fontwell/pkg/cache"
	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/fontset"
)

const (
	// defaultBaseURL is the css2 stylesheet endpoint.
	defaultBaseURL = "https://fonts.googleapis.com/css2"

	// httpTimeout bounds the stylesheet request and each asset download.
	httpTimeout = 10 * time.Second

	// userAgent makes the service serve woff2 asset URLs.
	userAgent = "Mozilla/5.0"

	// DefaultStylesheetTTL is how long parsed stylesheet responses stay
	// cached. Asset files on disk never expire; only the stylesheet
	// lookup is refreshed.
	DefaultStylesheetTTL = 24 * time.Hour
)

// Client fetches font families from Google Fonts and caches the assets
// in a local directory.
//
// All methods make sequential, blocking requests with a fixed timeout
// and no retries; a failed attempt is terminal for that call.
type Client struct {
	http     *http.Client
	baseURL  string
	assetDir string
	styles   cache.Cache
	styleTTL time.Duration
	logger   *log.Logger

	// Refresh bypasses the stylesheet cache when set. Asset files on
	// disk are still reused.
	Refresh bool
}

// NewClient creates a Client that stores font assets under assetDir.
//
// Parameters:
//   - assetDir: Directory for downloaded font files (created on demand).
//   - styles: Cache backend for stylesheet responses. Use
//     cache.NewNullCache() to always hit the network for stylesheets.
//   - styleTTL: TTL for cached stylesheets (use DefaultStylesheetTTL, or
//     0 for no expiration).
//   - logger: Destination for progress and diagnostics. nil uses
//     log.Default().
func NewClient(assetDir string, styles cache.Cache, styleTTL time.Duration, logger *log.Logger) *Client {
	if styles == nil {
		styles = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		http:     &http.Client{Timeout: httpTimeout},
		baseURL:  defaultBaseURL,
		assetDir: assetDir,
		styles:   styles,
		styleTTL: styleTTL,
		logger:   logger,
	}
}

// AssetDir returns the directory downloaded font files are written to.
func (c *Client) AssetDir() string { return c.assetDir }

// Fetch resolves family into a complete font set, downloading any assets
// not already cached. Passing nil weights requests the standard light,
// regular, and bold triple.
//
// Returns a structured error with one of the following codes on failure:
// NETWORK_ERROR (stylesheet request failed), PARSE_ERROR (no usable
// @font-face blocks), MISSING_ASSET (no asset could be downloaded), or a
// validation code for bad input. Per-role download failures are logged
// and tolerated as long as at least one role succeeds.
func (c *Client) Fetch(ctx context.Context, family string, weights []int) (*fontset.Set, error) {
	if err := errors.ValidateFamilyName(family); err != nil {
		return nil, err
	}
	if weights == nil {
		weights = fontset.DefaultWeights()
	}
	if err := errors.ValidateWeights(weights); err != nil {
		return nil, err
	}

	css, err := c.stylesheet(ctx, family, weights)
	if err != nil {
		return nil, err
	}

	byWeight := parseStylesheet(css)
	if len(byWeight) == 0 {
		return nil, errors.New(errors.ErrCodeParse, "no usable @font-face blocks in stylesheet for %q", family)
	}
	available := availableWeights(byWeight)

	b := fontset.NewBuilder()
	for _, weight := range weights {
		role := fontset.RoleForWeight(weight)

		assetURL, ok := byWeight[weight]
		if !ok {
			closest, found := fontset.Closest(available, weight)
			if !found {
				continue
			}
			assetURL = byWeight[closest]
			c.logger.Info("Substituting closest available weight",
				"family", family, "role", role, "requested", weight, "using", closest)
		}

		path, err := c.ensureAsset(ctx, family, role, assetURL)
		if err != nil {
			c.logger.Warn("Skipping font weight after download failure",
				"family", family, "role", role, "err", errors.UserMessage(err))
			continue
		}
		b.Assign(role, path)
	}

	if b.Empty() {
		return nil, errors.New(errors.ErrCodeMissingAsset, "no font assets could be resolved for %q", family)
	}
	b.Fill()
	return b.Set()
}

// stylesheet returns the css2 response for family at the given weights,
// serving from the stylesheet cache when possible.
func (c *Client) stylesheet(ctx context.Context, family string, weights []int) (string, error) {
	key := stylesheetKey(family, weights)

	if !c.Refresh {
		if data, hit, err := c.styles.Get(ctx, key); err == nil && hit {
			c.logger.Debug("Stylesheet cache hit", "family", family)
			return string(data), nil
		}
	}

	css, err := c.fetchStylesheet(ctx, family, weights)
	if err != nil {
		return "", err
	}
	if err := c.styles.Set(ctx, key, []byte(css), c.styleTTL); err != nil {
		c.logger.Debug("Failed to cache stylesheet", "family", family, "err", err)
	}
	return css, nil
}

func (c *Client) fetchStylesheet(ctx context.Context, family string, weights []int) (string, error) {
	specs := make([]string, len(weights))
	for i, w := range weights {
		specs[i] = strconv.Itoa(w)
	}

	params := url.Values{}
	params.Set("family", fmt.Sprintf("%s:wght@%s", family, strings.Join(specs, ";")))
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "build stylesheet request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "stylesheet request for %q failed", family)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.New(errors.ErrCodeNetwork, "stylesheet request for %q returned %s", family, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "read stylesheet response for %q", family)
	}
	return string(body), nil
}

// ensureAsset returns the cache path for (family, role), downloading the
// asset first unless a file already exists under the deterministic name.
func (c *Client) ensureAsset(ctx context.Context, family string, role fontset.Role, assetURL string) (string, error) {
	path := filepath.Join(c.assetDir, assetFilename(family, role, assetURL))

	if _, err := os.Stat(path); err == nil {
		c.logger.Debug("Using cached font asset", "family", family, "role", role)
		return path, nil
	}

	if err := os.MkdirAll(c.assetDir, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create asset cache directory")
	}

	c.logger.Info("Downloading font asset", "family", family, "role", role)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "build asset request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "asset download failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.New(errors.ErrCodeNetwork, "asset download returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "read asset response")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write font asset %s", path)
	}
	return path, nil
}

// NormalizeFamily converts a family name to its cache filename form:
// lowercased with spaces replaced by underscores.
func NormalizeFamily(family string) string {
	return strings.ReplaceAll(strings.ToLower(family), " ", "_")
}

// assetFilename derives the deterministic cache filename for a resolved
// (family, role, URL) triple. Only the URL's extension contributes, so
// repeat fetches always land on the same file.
func assetFilename(family string, role fontset.Role, assetURL string) string {
	ext := "ttf"
	if strings.HasSuffix(assetURL, ".woff2") {
		ext = "woff2"
	}
	return fmt.Sprintf("%s_%s.%s", NormalizeFamily(family), role, ext)
}

// stylesheetKey builds the cache key for a stylesheet response.
func stylesheetKey(family string, weights []int) string {
	specs := make([]string, len(weights))
	for i, w := range weights {
		specs[i] = strconv.Itoa(w)
	}
	return "stylesheet:" + NormalizeFamily(family) + ":" + strings.Join(specs, ";")
}
