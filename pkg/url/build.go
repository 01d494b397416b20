// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package url

import (
	"fmt"
	"net/url"
)

// Build joins pathSegments onto baseURL, which must carry a host.
func Build(baseURL string, pathSegments ...string) (*string, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("failed to parse base URL: no host in %q", baseURL)
	}

	for _, segment := range pathSegments {
		parsedURL = parsedURL.JoinPath(segment)
	}
	fullUrl := parsedURL.String()
	return &fullUrl, nil
}
