package cloud

import (
	"fmt"
	"net/url"
	"os"

	"github.com/auditkit/ossaudit/pathlib"
)

// ReadFile accepts either a local path or an URL, so that policy
// lists can live next to the build or on a shared server.
func ReadFile(resource string) ([]byte, error) {
	if pathlib.IsFile(resource) {
		return os.ReadFile(resource)
	}
	link, err := url.ParseRequestURI(resource)
	if err != nil {
		return os.ReadFile(resource)
	}
	if link.Scheme == "file" {
		return os.ReadFile(link.Path)
	}
	if link.Scheme == "" {
		return os.ReadFile(resource)
	}
	response := NewClient().Get(&Request{Url: resource})
	if response.Err != nil {
		return nil, response.Err
	}
	if response.Status != 200 {
		return nil, fmt.Errorf("%q: unexpected status %d", resource, response.Status)
	}
	return response.Body, nil
}
