package licenses

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/auditkit/ossaudit/cloud"
	"github.com/auditkit/ossaudit/common"
)

// PomResolver fetches the .pom file that maven repositories keep next
// to each jar, and reads the license names declared in it.
type PomResolver struct {
	client cloud.Client
}

func NewPomResolver() *PomResolver {
	return &PomResolver{client: cloud.NewClient()}
}

// PomLocation derives the .pom URL from the jar URL: same directory,
// same basename, .pom extension.
func PomLocation(jarURL string) (string, error) {
	cut := strings.LastIndex(jarURL, "/")
	if cut < 0 {
		return "", fmt.Errorf("%q does not look like an artifact URL", jarURL)
	}
	filename := strings.Replace(jarURL[cut+1:], ".jar", ".pom", 1)
	if filename == jarURL[cut+1:] {
		return "", fmt.Errorf("%q does not point to a .jar artifact", jarURL)
	}
	return jarURL[:cut+1] + filename, nil
}

func (it *PomResolver) Resolve(jarURL string) (string, error) {
	if len(jarURL) == 0 {
		common.Debug("Empty artifact URL, using license value %q.", Unknown)
		return Unknown, nil
	}
	pomURL, err := PomLocation(jarURL)
	if err != nil {
		return "", err
	}
	common.Trace("Downloading .pom from: %s", pomURL)
	response := it.client.Get(&cloud.Request{Url: pomURL})
	if response.Err != nil {
		return "", fmt.Errorf("unable to download .pom from %q: %w", pomURL, response.Err)
	}
	if response.Status != 200 {
		return "", fmt.Errorf("unable to download .pom from %q: status %d", pomURL, response.Status)
	}
	names, err := licenseNames(response.Body)
	if err != nil {
		return "", fmt.Errorf("cannot parse .pom from %q: %w", pomURL, err)
	}
	if len(names) == 0 {
		common.Debug("No license metadata in %q, using license value %q.", pomURL, Unknown)
		return Unknown, nil
	}
	return strings.Join(names, ";"), nil
}

// licenseNames walks project/licenses/license/name elements. Element
// namespaces vary between poms, so only local names are compared.
func licenseNames(blob []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(blob))
	names := make([]string, 0, 2)
	path := make([]string, 0, 8)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch actual := token.(type) {
		case xml.StartElement:
			path = append(path, actual.Name.Local)
		case xml.EndElement:
			path = path[:len(path)-1]
		case xml.CharData:
			if tailMatches(path, "licenses", "license", "name") {
				name := strings.TrimSpace(string(actual))
				if len(name) > 0 {
					names = append(names, name)
				}
			}
		}
	}
	return names, nil
}

func tailMatches(path []string, tail ...string) bool {
	if len(path) < len(tail) {
		return false
	}
	offset := len(path) - len(tail)
	for at, expected := range tail {
		if path[offset+at] != expected {
			return false
		}
	}
	return true
}
