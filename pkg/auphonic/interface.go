package auphonic

import "context"

// API defines the Auphonic operations implemented by *Client
type API interface {
	// Authenticate starts a session with an existing access token
	Authenticate(accessToken string) error

	// AuthenticateWithPassword exchanges user credentials for an access token
	AuthenticateWithPassword(ctx context.Context, username, password string) (*OAuthToken, error)

	GetAccountInfo(ctx context.Context) (*Account, error)

	CreatePreset(ctx context.Context, preset *Preset) (*Preset, error)
	DeletePreset(ctx context.Context, presetUUID string) error
	GetPreset(ctx context.Context, presetUUID string) (*Preset, error)
	GetPresets(ctx context.Context, limit, offset int) ([]Preset, error)
	GetPresetUUIDs(ctx context.Context) ([]string, error)
	UpdatePreset(ctx context.Context, preset *Preset) (*Preset, error)

	CreateProduction(ctx context.Context, production *Production) (*Production, error)
	DeleteProduction(ctx context.Context, productionUUID string) error
	DeleteProductionChapters(ctx context.Context, productionUUID string) (*Production, error)
	DeleteProductionCoverImage(ctx context.Context, productionUUID string) (*Production, error)
	DeleteProductionOutputFiles(ctx context.Context, productionUUID string) (*Production, error)
	DeleteProductionSpeechRecognition(ctx context.Context, productionUUID string) (*Production, error)
	GetProduction(ctx context.Context, productionUUID string) (*Production, error)
	GetProductions(ctx context.Context, limit, offset int) ([]Production, error)
	GetProductionUUIDs(ctx context.Context) ([]string, error)
	SetProductionCoverImageFromPreset(ctx context.Context, productionUUID, presetUUID string) (*Production, error)
	StartProduction(ctx context.Context, productionUUID string) (*Production, error)
	StopProduction(ctx context.Context, productionUUID string) error
	UpdateProduction(ctx context.Context, production *Production) (*Production, error)
	UploadProductionFile(ctx context.Context, productionUUID, filePath string) (*Production, error)

	// WaitForProduction polls until the production is done or failed
	WaitForProduction(ctx context.Context, productionUUID string, opts WaitOptions) (*Production, error)

	GetServiceFiles(ctx context.Context, serviceUUID string) ([]string, error)
	GetServices(ctx context.Context) ([]Service, error)

	// Public reference data, no session required
	GetInfo(ctx context.Context) (*Info, error)
	GetAlgorithms(ctx context.Context) (map[string]Algorithm, error)
	GetFileEndings(ctx context.Context) (map[string][]string, error)
	GetOutputFileTypes(ctx context.Context) (map[string]OutputFileType, error)
	GetProductionStatus(ctx context.Context) (map[ProductionStatus]string, error)
	GetServiceTypes(ctx context.Context) (map[string]ServiceType, error)
}

var _ API = (*Client)(nil)
