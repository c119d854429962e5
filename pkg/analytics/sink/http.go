package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/teavault/storefront-analytics/pkg/analytics/build"
	"github.com/teavault/storefront-analytics/pkg/analytics/log"
	"github.com/teavault/storefront-analytics/pkg/analytics/model"
)

const (
	defaultTimeout = 5 * time.Second
)

// HTTPSink posts each record to a collector endpoint as a JSON body. Posts
// are one-shot: a failed delivery is logged and dropped, never retried.
type HTTPSink struct {
	Url           		string
	UserAgent			string
	Headers       		map[string]string
	Timeout			    time.Duration

	client 				*http.Client
	now 				func() time.Time
}

func NewHTTPSink(url string) *HTTPSink {
	return &HTTPSink{
		Url:     url,
		Timeout: defaultTimeout,
		now:     time.Now,
	}
}

func (s *HTTPSink) SetUserAgent(userAgent string) {
	s.UserAgent = userAgent
}

func (s *HTTPSink) SetHeader(key, value string) {
	if s.Headers == nil {
		s.Headers = map[string]string{}
	}

	s.Headers[key] = value
}

func (s *HTTPSink) Record(name string, parameters map[string]any) {
	err := s.post(model.NewEvent(name, parameters, s.now()))
	if err != nil {
		log.Warnf("collector post failed: %v", err)
	}
}

func (s *HTTPSink) post(event model.Event) error {
	body, err := json.Marshal(event.Flatten())
	if err != nil {
		return fmt.Errorf("error marshaling record: %w", err)
	}

	req, err := http.NewRequest("POST", s.Url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error creating collector request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent())

	for key, value := range s.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("error posting event %s: %w", event.Name, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf(
			"collector returned status %d for event %s",
			resp.StatusCode,
			event.Name,
		)
	}

	return nil
}

func (s *HTTPSink) userAgent() string {
	if s.UserAgent != "" {
		return s.UserAgent
	}

	return fmt.Sprintf(
		"storefront-analytics/%s (%s %s)",
		build.GetBuildInfo().Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

func (s *HTTPSink) httpClient() *http.Client {
	if s.client == nil {
		s.client = &http.Client{Timeout: s.Timeout}
	}

	return s.client
}
