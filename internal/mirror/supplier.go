package mirror

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Supplier manages a pool of fixture server base URLs with round-robin selection
type Supplier interface {
	Get() string
	// Rotation returns every mirror once, starting at the next round-robin
	// position. Concurrent callers get independent snapshots.
	Rotation() []string
	Len() int
}

type supplier struct {
	mirrors []string
	current int
	mutex   sync.Mutex
}

// Static returns a supplier over the given base URLs without probing them.
func Static(baseURLs ...string) Supplier {
	mirrors := make([]string, 0, len(baseURLs))
	for _, u := range baseURLs {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			mirrors = append(mirrors, u)
		}
	}
	return &supplier{mirrors: mirrors}
}

// NewSupplier probes every base URL in parallel by fetching probePath and
// keeps the ones that answer. A single URL is trusted without a probe.
func NewSupplier(ctx context.Context, baseURLs []string, probePath string, timeout time.Duration) (Supplier, error) {
	candidates := Static(baseURLs...).(*supplier).mirrors
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no fixture mirrors configured")
	}
	if len(candidates) == 1 {
		return &supplier{mirrors: candidates}, nil
	}

	log.Infof("🔄 Testing %d fixture mirrors in parallel...", len(candidates))

	healthy := make([]bool, len(candidates))
	var wg sync.WaitGroup

	for i, baseURL := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if isMirrorHealthy(ctx, baseURL+probePath, timeout) {
				healthy[i] = true
				log.Infof("✅ Mirror %s is working", baseURL)
			} else {
				log.Infof("❌ Mirror %s is not working, skipping", baseURL)
			}
		}()
	}

	wg.Wait()

	// Keep configured order so the primary base_url is tried first.
	mirrors := make([]string, 0, len(candidates))
	for i, ok := range healthy {
		if ok {
			mirrors = append(mirrors, candidates[i])
		}
	}

	if len(mirrors) == 0 {
		return nil, fmt.Errorf("none of %d fixture mirrors is reachable", len(candidates))
	}

	log.Infof("✅ Mirror supplier initialized with %d working mirrors out of %d tested", len(mirrors), len(candidates))

	return &supplier{mirrors: mirrors}, nil
}

// Get returns the next base URL in round-robin fashion
func (s *supplier) Get() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.mirrors) == 0 {
		return ""
	}

	mirror := s.mirrors[s.current]
	s.current = (s.current + 1) % len(s.mirrors)

	return mirror
}

func (s *supplier) Rotation() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	n := len(s.mirrors)
	out := make([]string, 0, n)
	for i := range n {
		out = append(out, s.mirrors[(s.current+i)%n])
	}
	if n > 0 {
		s.current = (s.current + 1) % n
	}

	return out
}

func (s *supplier) Len() int {
	return len(s.mirrors)
}

func isMirrorHealthy(ctx context.Context, url string, timeout time.Duration) bool {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		Head(url)

	if err != nil {
		log.Debugf("Mirror probe failed for %s: %v", url, err)
		return false
	}

	if resp.IsError() {
		log.Debugf("Mirror probe failed for %s with status: %s", url, resp.Status())
		return false
	}

	return true
}
