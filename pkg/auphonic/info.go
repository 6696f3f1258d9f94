package auphonic

import (
	"context"
	"net/http"
)

// The info endpoints are public and need no session.

// GetInfo retrieves all reference data in one call
func (c *Client) GetInfo(ctx context.Context) (*Info, error) {
	return call[*Info](ctx, c, NewRequest("api/info.json", http.MethodGet), AuthNone, BodyNone)
}

// GetAlgorithms retrieves the available audio algorithms
func (c *Client) GetAlgorithms(ctx context.Context) (map[string]Algorithm, error) {
	return call[map[string]Algorithm](ctx, c, NewRequest("api/info/algorithms.json", http.MethodGet), AuthNone, BodyNone)
}

// GetFileEndings retrieves the supported input file endings per format
func (c *Client) GetFileEndings(ctx context.Context) (map[string][]string, error) {
	return call[map[string][]string](ctx, c, NewRequest("api/info/file_endings.json", http.MethodGet), AuthNone, BodyNone)
}

// GetOutputFileTypes retrieves the supported output formats
func (c *Client) GetOutputFileTypes(ctx context.Context) (map[string]OutputFileType, error) {
	return call[map[string]OutputFileType](ctx, c, NewRequest("api/info/output_files.json", http.MethodGet), AuthNone, BodyNone)
}

// GetProductionStatus retrieves the display text of every production status
func (c *Client) GetProductionStatus(ctx context.Context) (map[ProductionStatus]string, error) {
	statuses, err := call[StatusMap](ctx, c, NewRequest("api/info/production_status.json", http.MethodGet), AuthNone, BodyNone)
	if err != nil {
		return nil, err
	}
	return map[ProductionStatus]string(statuses), nil
}

// GetServiceTypes retrieves the supported external service types
func (c *Client) GetServiceTypes(ctx context.Context) (map[string]ServiceType, error) {
	return call[map[string]ServiceType](ctx, c, NewRequest("api/info/service_types.json", http.MethodGet), AuthNone, BodyNone)
}
