package auphonic

import (
	"context"
	"net/http"
	"strconv"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"go.uber.org/zap"
)

// CreatePreset creates a new preset
func (c *Client) CreatePreset(ctx context.Context, preset *Preset) (*Preset, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.NotNil(preset, "preset"); err != nil {
		return nil, err
	}

	req := NewRequest("api/presets.json", http.MethodPost).AddJSONBody(preset)
	created, err := call[*Preset](ctx, c, req, AuthBearer, BodyJSON)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Created preset", zap.String("preset_uuid", created.uuidOrEmpty()))
	return created, nil
}

// DeletePreset deletes a preset
func (c *Client) DeletePreset(ctx context.Context, presetUUID string) error {
	if err := c.checkAuthentication(); err != nil {
		return err
	}
	if err := precondition.NotBlank(presetUUID, "presetUuid"); err != nil {
		return err
	}

	req := NewRequest("api/preset/{presetUuid}.json", http.MethodDelete).
		AddURLSegment("presetUuid", presetUUID)
	return callNoData(ctx, c, req, AuthBearer, BodyNone)
}

// GetPreset retrieves a single preset
func (c *Client) GetPreset(ctx context.Context, presetUUID string) (*Preset, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.NotBlank(presetUUID, "presetUuid"); err != nil {
		return nil, err
	}

	req := NewRequest("api/preset/{presetUuid}.json", http.MethodGet).
		AddURLSegment("presetUuid", presetUUID)
	return call[*Preset](ctx, c, req, AuthBearer, BodyNone)
}

// GetPresets retrieves presets with pagination. Zero limit or offset means
// the server default.
func (c *Client) GetPresets(ctx context.Context, limit, offset int) ([]Preset, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.First(
		precondition.NotNegative(limit, "limit"),
		precondition.NotNegative(offset, "offset"),
	); err != nil {
		return nil, err
	}

	req := NewRequest("api/presets.json", http.MethodGet)
	addPaging(req, limit, offset)
	return call[[]Preset](ctx, c, req, AuthBearer, BodyNone)
}

// GetPresetUUIDs retrieves the UUIDs of all presets
func (c *Client) GetPresetUUIDs(ctx context.Context) ([]string, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}

	req := NewRequest("api/presets.json", http.MethodGet).AddParameter("uuids_only", "1")
	return call[[]string](ctx, c, req, AuthBearer, BodyNone)
}

// UpdatePreset replaces the preset identified by preset.UUID
func (c *Client) UpdatePreset(ctx context.Context, preset *Preset) (*Preset, error) {
	if err := c.checkAuthentication(); err != nil {
		return nil, err
	}
	if err := precondition.NotNil(preset, "preset"); err != nil {
		return nil, err
	}
	if err := precondition.Valid(func() bool { return isBlank(preset.UUID) },
		"Preset UUID cannot be null or empty.", "preset"); err != nil {
		return nil, err
	}

	req := NewRequest("api/preset/{presetUuid}.json", http.MethodPost).
		AddURLSegment("presetUuid", preset.UUID).
		AddJSONBody(preset)
	return call[*Preset](ctx, c, req, AuthBearer, BodyJSON)
}

func (p *Preset) uuidOrEmpty() string {
	if p == nil {
		return ""
	}
	return p.UUID
}

func addPaging(req *Request, limit, offset int) {
	if limit > 0 {
		req.AddParameter("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		req.AddParameter("offset", strconv.Itoa(offset))
	}
}
