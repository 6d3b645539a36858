package cloud

import (
	"io"
	"net/http"
	"time"

	"github.com/auditkit/ossaudit/common"
)

// License repositories sit behind flaky CDNs, so transient statuses
// get a bounded retry with a short pause, everything else fails fast.
var retryableStatus = map[int]bool{
	429: true,
	502: true,
	503: true,
	504: true,
}

const (
	defaultTries = 3
	retryPause   = 3 * time.Second
)

type Request struct {
	Url     string
	Headers map[string]string
}

type Response struct {
	Status  int
	Err     error
	Body    []byte
	Elapsed common.Duration
}

type Client interface {
	Get(request *Request) *Response
	WithTimeout(timeout time.Duration) Client
}

type internalClient struct {
	client *http.Client
	tries  int
	pause  time.Duration
}

func NewClient() Client {
	return &internalClient{
		client: &http.Client{Timeout: 60 * time.Second},
		tries:  defaultTries,
		pause:  retryPause,
	}
}

func (it *internalClient) WithTimeout(timeout time.Duration) Client {
	return &internalClient{
		client: &http.Client{Timeout: timeout},
		tries:  it.tries,
		pause:  it.pause,
	}
}

func (it *internalClient) once(request *Request) *Response {
	stopwatch := common.Stopwatch("GET %q lasted", request.Url)
	response := new(Response)
	defer func() {
		response.Elapsed = stopwatch.Elapsed()
	}()
	httpRequest, err := http.NewRequest(http.MethodGet, request.Url, nil)
	if err != nil {
		response.Status = 9001
		response.Err = err
		return response
	}
	for name, value := range request.Headers {
		httpRequest.Header.Set(name, value)
	}
	httpResponse, err := it.client.Do(httpRequest)
	if err != nil {
		response.Status = 9002
		response.Err = err
		return response
	}
	defer httpResponse.Body.Close()
	response.Status = httpResponse.StatusCode
	response.Body, response.Err = io.ReadAll(httpResponse.Body)
	return response
}

func (it *internalClient) Get(request *Request) *Response {
	var response *Response
	for round := 0; round < it.tries; round++ {
		if round > 0 {
			common.Debug("Retrying %q in %v ...", request.Url, it.pause)
			time.Sleep(it.pause)
		}
		response = it.once(request)
		if response.Err == nil && !retryableStatus[response.Status] {
			return response
		}
		common.Debug("Download failed: %q: %d %v", request.Url, response.Status, response.Err)
	}
	return response
}
