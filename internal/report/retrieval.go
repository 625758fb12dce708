package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jacoco-tools/covertree/coverage"
	"github.com/jacoco-tools/covertree/internal/util"
	"github.com/jacoco-tools/covertree/jacoco"
	"github.com/pkg/errors"
)

var (
	timeout           = time.Second * 30
	r       retriever = &httpRetriever{}
	retry             = util.ApplyWithBackoff
)

type retriever interface {
	getRawReport(url string) ([]byte, error)
}

type httpRetriever struct {
}

func (h *httpRetriever) getRawReport(url string) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	client.HTTPClient.Timeout = timeout

	response, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode > 299 || response.StatusCode < 200 {
		return nil, errors.Errorf("status code: %d, error: %s", response.StatusCode, response.Status)
	}

	return io.ReadAll(response.Body)
}

// SetTimeout sets the timeout for a single report fetch.
func SetTimeout(d time.Duration) {
	timeout = d
}

// RetrieveReport retrieves the JaCoCo report at the specified URL and parses it
// into a coverage tree. The fetch is retried with exponential backoff; a report
// that cannot be retrieved at all surfaces as jacoco.SourceUnavailableError.
func RetrieveReport(url string) (*coverage.Node, error) {
	// append version string to the report URL to avoid any caching issues when retrieving the report
	fetchURL := fmt.Sprintf("%s?version=%d", url, time.Now().UnixNano()/int64(time.Millisecond))

	var raw []byte
	fetch := func() error {
		var err error
		raw, err = r.getRawReport(fetchURL)
		return err
	}
	if err := retry(fetch); err != nil {
		return nil, &jacoco.SourceUnavailableError{Source: url, Err: err}
	}

	return jacoco.Parse(bytes.NewReader(raw), url)
}
