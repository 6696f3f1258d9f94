package auphonic

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"go.uber.org/zap"
)

const (
	productionResource = "api/production/{productionUuid}.json"
	uploadFieldName    = "input_file"
)

func productionRequest(resource, method, productionUUID string) *Request {
	return NewRequest(resource, method).AddURLSegment("productionUuid", productionUUID)
}

// beginProductionCall runs the session and UUID checks shared by every
// production operation.
func (c *Client) beginProductionCall(productionUUID string) error {
	if err := c.checkAuthentication(); err != nil {
		return err
	}
	return precondition.NotBlank(productionUUID, "productionUuid")
}

// CreateProduction creates a new production
func (c *Client) CreateProduction(ctx context.Context, production *Production) (*Production, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.NotNil(production, "production"); err != nil {
		return nil, err
	}

	req := NewRequest("api/productions.json", http.MethodPost).AddJSONBody(production)
	created, err := call[*Production](ctx, c, req, AuthBearer, BodyJSON)
	if err != nil {
		return nil, err
	}
	if created != nil {
		c.logger.Info("Created production", zap.String("production_uuid", created.UUID))
	}
	return created, nil
}

// DeleteProduction deletes a production and all its files
func (c *Client) DeleteProduction(ctx context.Context, productionUUID string) error {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return err
	}
	req := productionRequest(productionResource, http.MethodDelete, productionUUID)
	return callNoData(ctx, c, req, AuthBearer, BodyNone)
}

// DeleteProductionChapters removes all chapter marks of a production
func (c *Client) DeleteProductionChapters(ctx context.Context, productionUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	req := productionRequest("api/production/{productionUuid}/chapters.json", http.MethodDelete, productionUUID)
	return call[*Production](ctx, c, req, AuthBearer, BodyNone)
}

// DeleteProductionCoverImage removes the cover image of a production
func (c *Client) DeleteProductionCoverImage(ctx context.Context, productionUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	req := productionRequest(productionResource, http.MethodPost, productionUUID).
		AddRawJSONBody([]byte(`{"reset_cover_image":true}`))
	return call[*Production](ctx, c, req, AuthBearer, BodyJSON)
}

// DeleteProductionOutputFiles removes all output files of a production
func (c *Client) DeleteProductionOutputFiles(ctx context.Context, productionUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	req := productionRequest("api/production/{productionUuid}/output_files.json", http.MethodDelete, productionUUID)
	return call[*Production](ctx, c, req, AuthBearer, BodyNone)
}

// DeleteProductionSpeechRecognition removes the speech recognition service of a production
func (c *Client) DeleteProductionSpeechRecognition(ctx context.Context, productionUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	req := productionRequest("api/production/{productionUuid}/speech_recognition.json", http.MethodDelete, productionUUID)
	return call[*Production](ctx, c, req, AuthBearer, BodyNone)
}

// GetProduction retrieves a single production
func (c *Client) GetProduction(ctx context.Context, productionUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	req := productionRequest(productionResource, http.MethodGet, productionUUID)
	return call[*Production](ctx, c, req, AuthBearer, BodyNone)
}

// GetProductions retrieves productions with pagination. Zero limit or offset
// means the server default.
func (c *Client) GetProductions(ctx context.Context, limit, offset int) ([]Production, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.First(
		precondition.NotNegative(limit, "limit"),
		precondition.NotNegative(offset, "offset"),
	); err != nil {
		return nil, err
	}

	req := NewRequest("api/productions.json", http.MethodGet)
	addPaging(req, limit, offset)
	return call[[]Production](ctx, c, req, AuthBearer, BodyNone)
}

// GetProductionUUIDs retrieves the UUIDs of all productions
func (c *Client) GetProductionUUIDs(ctx context.Context) ([]string, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	req := NewRequest("api/productions.json", http.MethodGet).AddParameter("uuids_only", "1")
	return call[[]string](ctx, c, req, AuthBearer, BodyNone)
}

// SetProductionCoverImageFromPreset copies the cover image of a preset to a production
func (c *Client) SetProductionCoverImageFromPreset(ctx context.Context, productionUUID, presetUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	if err := precondition.NotBlank(presetUUID, "presetUuid"); err != nil {
		return nil, err
	}

	req := productionRequest(productionResource, http.MethodPost, productionUUID).
		AddJSONBody(map[string]string{"preset_cover_image": presetUUID})
	return call[*Production](ctx, c, req, AuthBearer, BodyJSON)
}

// StartProduction starts audio processing
func (c *Client) StartProduction(ctx context.Context, productionUUID string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	req := productionRequest("api/production/{productionUuid}/start.json", http.MethodPost, productionUUID)
	production, err := call[*Production](ctx, c, req, AuthBearer, BodyNone)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Started production", zap.String("production_uuid", productionUUID))
	return production, nil
}

// StopProduction stops audio processing
func (c *Client) StopProduction(ctx context.Context, productionUUID string) error {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return err
	}
	req := productionRequest("api/production/{productionUuid}/stop.json", http.MethodPost, productionUUID)
	return callNoData(ctx, c, req, AuthBearer, BodyNone)
}

// UpdateProduction replaces the production identified by production.UUID
func (c *Client) UpdateProduction(ctx context.Context, production *Production) (*Production, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.NotNil(production, "production"); err != nil {
		return nil, err
	}
	if err := precondition.Valid(func() bool { return isBlank(production.UUID) },
		"Production UUID cannot be null or empty.", "production"); err != nil {
		return nil, err
	}

	req := productionRequest(productionResource, http.MethodPost, production.UUID).AddJSONBody(production)
	return call[*Production](ctx, c, req, AuthBearer, BodyJSON)
}

// UploadProductionFile uploads the audio file at filePath as the production input
func (c *Client) UploadProductionFile(ctx context.Context, productionUUID, filePath string) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	if err := precondition.FileExists(filePath, "filePath"); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		c.logger.Error("Failed to read upload file", zap.Error(err), zap.String("file_path", filePath))
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}

	c.logger.Info("Uploading production file",
		zap.String("production_uuid", productionUUID),
		zap.String("file_name", filepath.Base(filePath)),
		zap.Int("size", len(content)))

	req := productionRequest("api/production/{productionUuid}/upload.json", http.MethodPost, productionUUID).
		AddFile(uploadFieldName, filepath.Base(filePath), content)
	return call[*Production](ctx, c, req, AuthBearer, BodyNone)
}
