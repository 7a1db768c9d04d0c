package out

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed assets/index.html
var defaultPageMarkup string

// LoadPageMarkup reads the page skeleton at path, or returns the embedded
// default page when path is empty.
func LoadPageMarkup(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return defaultPageMarkup, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read page %s: %w", path, err)
	}
	return string(data), nil
}
