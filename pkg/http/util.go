package http

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL joins baseURL and path, replaces every {name} placeholder in path
// with the escaped segment value and encodes queryParams.
func BuildURL(baseURL, path string, segments map[string]string, queryParams url.Values) (string, error) {
	// Parse the base URL
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}

	rawPath := path
	for name, value := range segments {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
		rawPath = strings.ReplaceAll(rawPath, "{"+name+"}", url.PathEscape(value))
	}
	if strings.Contains(rawPath, "{") && strings.Contains(rawPath, "}") {
		return "", fmt.Errorf("unresolved placeholder in path %q", rawPath)
	}

	// Append the path
	prefix := strings.TrimSuffix(parsedURL.Path, "/") + "/"
	parsedURL.Path = prefix + strings.TrimPrefix(path, "/")
	parsedURL.RawPath = prefix + strings.TrimPrefix(rawPath, "/")

	if len(queryParams) > 0 {
		parsedURL.RawQuery = queryParams.Encode()
	}

	// Return the full URL as a string
	return parsedURL.String(), nil
}
