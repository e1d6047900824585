// Package imagecache keeps one decoded copy of each album-art image
// per process. Failed fetches are cached too, so a dead URL costs one
// network call for the process lifetime.
package imagecache

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves raw image bytes for a URL. Tests substitute a
// deterministic stub so renders never touch the network.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// HTTPFetcher fetches over HTTP with retries and a hard 10s timeout.
type HTTPFetcher struct {
	client *retryablehttp.Client
}

// NewHTTPFetcher builds the production fetcher.
func NewHTTPFetcher() *HTTPFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	client.HTTPClient.Timeout = 10 * time.Second
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Cache maps URLs to decoded images. A nil value is a remembered
// failure. Entries live for the process lifetime; working sets are
// small enough that unbounded growth is the cheaper trade.
type Cache struct {
	fetcher Fetcher

	mu     sync.RWMutex
	images map[string]image.Image

	group singleflight.Group
}

// New creates an empty cache backed by the given fetcher.
func New(fetcher Fetcher) *Cache {
	return &Cache{
		fetcher: fetcher,
		images:  make(map[string]image.Image),
	}
}

// Get returns the decoded image for url, fetching it on first use.
// Concurrent first requests for one URL share a single fetch. Any
// fetch or decode failure returns nil, permanently.
func (c *Cache) Get(url string) image.Image {
	if url == "" {
		return nil
	}

	c.mu.RLock()
	img, ok := c.images[url]
	c.mu.RUnlock()
	if ok {
		return img
	}

	v, _, _ := c.group.Do(url, func() (any, error) {
		img := c.fetch(url)
		c.mu.Lock()
		c.images[url] = img
		c.mu.Unlock()
		return img, nil
	})
	img, _ = v.(image.Image)
	return img
}

// Len reports the number of cached entries, failures included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

func (c *Cache) fetch(url string) image.Image {
	data, err := c.fetcher.Fetch(url)
	if err != nil {
		log.Printf("imagecache: fetch %s: %v", url, err)
		return nil
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("imagecache: decode %s: %v", url, err)
		return nil
	}
	return img
}
