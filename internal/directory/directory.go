// Package directory resolves clinician codes entered by patients against the
// clinic's doctor directory.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when a doctor code has no directory entry. Callers
// distinguish it from transport errors, which get a different re-prompt.
var ErrNotFound = errors.New("directory: doctor not found")

// Doctor is one clinician directory entry.
type Doctor struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}

// Lookup resolves a doctor code to a directory entry.
type Lookup interface {
	LookupByCode(ctx context.Context, code string) (*Doctor, error)
}

// HTTPDirectory queries the scheduling backend's doctor endpoint.
type HTTPDirectory struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPDirectory creates a directory client against the given base URL.
func NewHTTPDirectory(baseURL, apiKey string, timeout time.Duration) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// LookupByCode fetches the doctor for code. A 404 maps to ErrNotFound; any
// other non-200 status or transport failure is a transient error.
func (d *HTTPDirectory) LookupByCode(ctx context.Context, code string) (*Doctor, error) {
	endpoint := fmt.Sprintf("%s/doctors/%s", d.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: build request: %w", err)
	}
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory: lookup %s: %w", code, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("directory: lookup %s: unexpected status %d", code, resp.StatusCode)
	}

	var doc Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("directory: decode response: %w", err)
	}
	if doc.Code == "" {
		doc.Code = code
	}
	return &doc, nil
}

// StaticDirectory serves a fixed in-memory roster. Used in development and
// whenever no scheduling backend is configured.
type StaticDirectory struct {
	doctors map[string]Doctor
}

// NewStaticDirectory returns a directory seeded with the demo roster.
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{doctors: map[string]Doctor{
		"DOC001": {Code: "DOC001", Name: "Smith", Specialty: "General Physician"},
		"DOC002": {Code: "DOC002", Name: "Johnson", Specialty: "Cardiologist"},
		"DOC003": {Code: "DOC003", Name: "Williams", Specialty: "Pediatrician"},
	}}
}

func (d *StaticDirectory) LookupByCode(_ context.Context, code string) (*Doctor, error) {
	doc, ok := d.doctors[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}
