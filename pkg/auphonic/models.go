package auphonic

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/akordowski/auphonic-go/pkg/precondition"
)

// Account is the authenticated user's account.
type Account struct {
	Credits                  float64 `json:"credits"`
	DateJoined               APITime `json:"date_joined"`
	Email                    string  `json:"email"`
	ErrorEmail               bool    `json:"error_email"`
	LowCreditsEmail          bool    `json:"low_credits_email"`
	LowCreditsThreshold      float64 `json:"low_credits_threshold"`
	NotificationEmail        bool    `json:"notification_email"`
	OnetimeCredits           float64 `json:"onetime_credits"`
	RechargeDate             APITime `json:"recharge_date"`
	RechargeRecurringCredits float64 `json:"recharge_recurring_credits"`
	RecurringCredits         float64 `json:"recurring_credits"`
	UserID                   string  `json:"user_id"`
	Username                 string  `json:"username"`
	WarningEmail             bool    `json:"warning_email"`
}

func (a Account) String() string { return a.Username }

// Algorithm describes a configurable audio algorithm.
type Algorithm struct {
	BelongsTo    string   `json:"belongs_to"`
	DefaultValue string   `json:"default_value"`
	Description  string   `json:"description"`
	DisplayName  string   `json:"display_name"`
	Options      []Option `json:"options"`
	Type         string   `json:"type"`
}

func (a Algorithm) String() string {
	return fmt.Sprintf("%s = %s", a.DisplayName, a.DefaultValue)
}

// Algorithms is the audio algorithm settings of a preset or production.
type Algorithms struct {
	Denoise        bool    `json:"denoise"`
	DenoiseAmount  int     `json:"denoiseamount"`
	HipFilter      bool    `json:"hipfilter"`
	Leveler        bool    `json:"leveler"`
	LoudnessTarget float64 `json:"loudnesstarget"`
	NormLoudness   bool    `json:"normloudness"`
}

// Chapter is a chapter mark.
type Chapter struct {
	Image          string  `json:"image"`
	Start          string  `json:"start"`
	StartOutput    string  `json:"start_output"`
	StartOutputSec float64 `json:"start_output_sec"`
	StartSec       float64 `json:"start_sec"`
	Title          string  `json:"title"`
	URL            string  `json:"url"`
}

// NewChapter creates a chapter mark; start and title are required.
func NewChapter(start, title, url, image string) (*Chapter, error) {
	if err := precondition.First(
		precondition.NotBlank(start, "start"),
		precondition.NotBlank(title, "title"),
	); err != nil {
		return nil, err
	}
	return &Chapter{Start: start, Title: title, URL: url, Image: image}, nil
}

func (c Chapter) String() string { return c.Title }

// MarshalJSON leaves out the server computed offsets.
func (c Chapter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Image string `json:"image"`
		Start string `json:"start"`
		Title string `json:"title"`
		URL   string `json:"url"`
	}{c.Image, c.Start, c.Title, c.URL})
}

// Credits is the credit usage of a production.
type Credits struct {
	Combined  float64 `json:"combined"`
	Onetime   float64 `json:"onetime"`
	Recurring float64 `json:"recurring"`
}

func (c Credits) String() string {
	return fmt.Sprintf("Combined = %s; Onetime = %s; Recurring = %s",
		formatDecimal(c.Combined), formatDecimal(c.Onetime), formatDecimal(c.Recurring))
}

// Format is the audio format of a production's input.
type Format struct {
	Bitrate    float64 `json:"bitrate"`
	Channels   int     `json:"channels"`
	FileFormat string  `json:"format"`
	LengthSec  float64 `json:"length_sec"`
	SampleRate int     `json:"samplerate"`
}

func (f Format) String() string { return f.FileFormat }

// Info bundles all public reference data.
type Info struct {
	Algorithms       map[string]Algorithm      `json:"algorithms"`
	FileEndings      map[string][]string       `json:"file_endings"`
	OutputFiles      map[string]OutputFileType `json:"output_files"`
	ProductionStatus StatusMap                 `json:"production_status"`
	ServiceTypes     map[string]ServiceType    `json:"service_types"`
}

// LevelStatistics holds loudness measurements of one audio stream.
type LevelStatistics struct {
	GainMax      *Level `json:"gain_max"`
	GainMean     *Level `json:"gain_mean"`
	GainMin      *Level `json:"gain_min"`
	Loudness     *Level `json:"loudness"`
	Lra          *Level `json:"lra"`
	MaxMomentary *Level `json:"max_momentary"`
	MaxShortterm *Level `json:"max_shortterm"`
	NoiseLevel   *Level `json:"noise_level"`
	Peak         *Level `json:"peak"`
	SignalLevel  *Level `json:"signal_level"`
	Snr          *Level `json:"snr"`
}

// Levels compares input and output loudness.
type Levels struct {
	Input  *LevelStatistics `json:"input"`
	Output *LevelStatistics `json:"output"`
}

// Location is a geographic position; coordinates are kept as strings with
// three decimals.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// NewLocation formats the coordinates with three decimals.
func NewLocation(latitude, longitude float64) Location {
	return Location{
		Latitude:  strconv.FormatFloat(latitude, 'f', 3, 64),
		Longitude: strconv.FormatFloat(longitude, 'f', 3, 64),
	}
}

func (l Location) String() string {
	return fmt.Sprintf("Latitude = %s; Longitude = %s", l.Latitude, l.Longitude)
}

// Metadata is the descriptive metadata of a preset or production.
type Metadata struct {
	Album          string    `json:"album"`
	AppendChapters bool      `json:"append_chapters"`
	Artist         string    `json:"artist"`
	Genre          string    `json:"genre"`
	License        string    `json:"license"`
	LicenseURL     string    `json:"license_url"`
	Location       *Location `json:"location"`
	Publisher      string    `json:"publisher"`
	Subtitle       string    `json:"subtitle"`
	Summary        string    `json:"summary"`
	Tags           []string  `json:"tags"`
	Title          string    `json:"title"`
	Track          string    `json:"track"`
	URL            string    `json:"url"`
	Year           string    `json:"year"`
}

func (m Metadata) String() string { return m.Title }

// MarshalJSON omits tags when nil.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type plain Metadata
	return json.Marshal(struct {
		plain
		Tags *[]string `json:"tags,omitempty"`
	}{plain(m), nilOmit(m.Tags)})
}

// MultiInputFile is one track of a multitrack production.
type MultiInputFile struct {
	Algorithms      *Algorithms `json:"algorithms"`
	ID              string      `json:"id"`
	InputBitrate    int         `json:"input_bitrate"`
	InputChannels   int         `json:"input_channels"`
	InputFile       string      `json:"input_file"`
	InputFiletype   string      `json:"input_filetype"`
	InputLength     float64     `json:"input_length"`
	InputSamplerate int         `json:"input_samplerate"`
	Offset          float64     `json:"offset"`
	Service         string      `json:"service"`
	Type            string      `json:"type"`
}

// MarshalJSON leaves out the input file analysis.
func (f MultiInputFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Algorithms *Algorithms `json:"algorithms"`
		ID         string      `json:"id"`
		InputFile  string      `json:"input_file"`
		Offset     float64     `json:"offset"`
		Service    string      `json:"service"`
		Type       string      `json:"type"`
	}{f.Algorithms, f.ID, f.InputFile, f.Offset, f.Service, f.Type})
}

// MusicSpeech is a music or speech segment found by classification.
type MusicSpeech struct {
	Label    string  `json:"label"`
	Start    string  `json:"start"`
	StartSec float64 `json:"start_sec"`
	Stop     string  `json:"stop"`
	StopSec  float64 `json:"stop_sec"`
}

func (m MusicSpeech) String() string {
	return fmt.Sprintf("%s (Start = %s; Stop = %s)", m.Label, m.Start, m.Stop)
}

// NoiseHumReduction is a segment where noise or hum reduction was applied.
type NoiseHumReduction struct {
	Dehum    NullableInt `json:"dehum"`
	Denoise  NullableInt `json:"denoise"`
	Start    string      `json:"start"`
	StartSec float64     `json:"start_sec"`
	Stop     string      `json:"stop"`
	StopSec  float64     `json:"stop_sec"`
}

// Option is one allowed value of an algorithm or service parameter.
type Option struct {
	DisplayName string `json:"display_name"`
	Value       string `json:"value"`
}

func (o Option) String() string {
	return fmt.Sprintf("%s = %s", o.DisplayName, o.Value)
}

// OutgoingService is an external service a production result is sent to.
// Only the UUID is sent back to the API.
type OutgoingService struct {
	BaseURL         string   `json:"base_url"`
	Category        string   `json:"category"`
	DisplayName     string   `json:"display_name"`
	Downloadable    bool     `json:"downloadable"`
	Email           string   `json:"email"`
	ErrorMessage    string   `json:"error_message"`
	Host            string   `json:"host"`
	Incoming        bool     `json:"incomming"`
	Outgoing        bool     `json:"outgoing"`
	Path            string   `json:"path"`
	Port            int      `json:"port"`
	Privacy         string   `json:"privacy"`
	ResultPage      string   `json:"result_page"`
	ResultURLs      []string `json:"result_urls"`
	Sharing         string   `json:"sharing"`
	TrackType       string   `json:"track_type"`
	TransferSuccess bool     `json:"transfer_success"`
	Type            string   `json:"type"`
	UUID            string   `json:"uuid"`
}

// NewOutgoingService references an existing service by UUID.
func NewOutgoingService(uuid string) (*OutgoingService, error) {
	if err := precondition.NotBlank(uuid, "uuid"); err != nil {
		return nil, err
	}
	return &OutgoingService{UUID: uuid}, nil
}

func (s OutgoingService) String() string { return s.DisplayName }

func (s OutgoingService) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UUID string `json:"uuid"`
	}{s.UUID})
}

// OutputFile is a requested or produced output file.
type OutputFile struct {
	Bitrate          int               `json:"bitrate"`
	Checksum         string            `json:"checksum"`
	DownloadURL      string            `json:"download_url"`
	Ending           string            `json:"ending"`
	Filename         string            `json:"filename"`
	Format           string            `json:"format"`
	MonoMixdown      bool              `json:"mono_mixdown"`
	OutgoingServices []OutgoingService `json:"outgoing_services"`
	Size             int64             `json:"size"`
	SizeString       string            `json:"size_string"`
	SplitOnChapters  bool              `json:"split_on_chapters"`
	Suffix           string            `json:"suffix"`
}

// MarshalJSON leaves out download details and omits a nil service list.
func (f OutputFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Bitrate          int                `json:"bitrate"`
		Ending           string             `json:"ending"`
		Filename         string             `json:"filename"`
		Format           string             `json:"format"`
		MonoMixdown      bool               `json:"mono_mixdown"`
		OutgoingServices *[]OutgoingService `json:"outgoing_services,omitempty"`
		SplitOnChapters  bool               `json:"split_on_chapters"`
		Suffix           string             `json:"suffix"`
	}{
		Bitrate:          f.Bitrate,
		Ending:           f.Ending,
		Filename:         f.Filename,
		Format:           f.Format,
		MonoMixdown:      f.MonoMixdown,
		OutgoingServices: nilOmit(f.OutgoingServices),
		SplitOnChapters:  f.SplitOnChapters,
		Suffix:           f.Suffix,
	})
}

// OutputFileType describes a supported output format.
type OutputFileType struct {
	Bitrates       []string `json:"bitrates"`
	BitrateStrings []string `json:"bitrate_strings"`
	DefaultBitrate string   `json:"default_bitrate"`
	DisplayName    string   `json:"display_name"`
	Endings        []string `json:"endings"`
	Type           string   `json:"type"`
}

func (t OutputFileType) String() string { return t.DisplayName }

// Parameter describes a service type parameter.
type Parameter struct {
	DefaultValue string   `json:"default_value"`
	DisplayName  string   `json:"display_name"`
	Options      []Option `json:"options"`
	Type         string   `json:"type"`
}

func (p Parameter) String() string { return p.DisplayName }

// Preset is a reusable production template.
type Preset struct {
	Algorithms        *Algorithms        `json:"algorithms"`
	CreationTime      APITime            `json:"creation_time"`
	Image             string             `json:"image"`
	IsMultitrack      bool               `json:"is_multitrack"`
	Metadata          *Metadata          `json:"metadata"`
	MultiInputFiles   []MultiInputFile   `json:"multi_input_files"`
	OutgoingServices  []OutgoingService  `json:"outgoing_services"`
	OutputBasename    string             `json:"output_basename"`
	OutputFiles       []OutputFile       `json:"output_files"`
	PresetName        string             `json:"preset_name"`
	SpeechRecognition *SpeechRecognition `json:"speech_recognition"`
	Thumbnail         string             `json:"thumbnail"`
	UUID              string             `json:"uuid"`
	Webhook           string             `json:"webhook"`
}

// NewPreset creates an empty preset with the given name.
func NewPreset(presetName string) (*Preset, error) {
	if err := precondition.NotBlank(presetName, "presetName"); err != nil {
		return nil, err
	}
	return &Preset{PresetName: presetName}, nil
}

func (p Preset) String() string { return p.PresetName }

// MarshalJSON omits creation time, empty image and basename, and nil lists.
func (p Preset) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Algorithms        *Algorithms        `json:"algorithms"`
		Image             string             `json:"image,omitempty"`
		IsMultitrack      bool               `json:"is_multitrack"`
		Metadata          *Metadata          `json:"metadata"`
		MultiInputFiles   *[]MultiInputFile  `json:"multi_input_files,omitempty"`
		OutgoingServices  *[]OutgoingService `json:"outgoing_services,omitempty"`
		OutputBasename    string             `json:"output_basename,omitempty"`
		OutputFiles       *[]OutputFile      `json:"output_files,omitempty"`
		PresetName        string             `json:"preset_name"`
		SpeechRecognition *SpeechRecognition `json:"speech_recognition"`
		Thumbnail         string             `json:"thumbnail"`
		UUID              string             `json:"uuid"`
		Webhook           string             `json:"webhook"`
	}{
		Algorithms:        p.Algorithms,
		Image:             p.Image,
		IsMultitrack:      p.IsMultitrack,
		Metadata:          p.Metadata,
		MultiInputFiles:   nilOmit(p.MultiInputFiles),
		OutgoingServices:  nilOmit(p.OutgoingServices),
		OutputBasename:    p.OutputBasename,
		OutputFiles:       nilOmit(p.OutputFiles),
		PresetName:        p.PresetName,
		SpeechRecognition: p.SpeechRecognition,
		Thumbnail:         p.Thumbnail,
		UUID:              p.UUID,
		Webhook:           p.Webhook,
	})
}

// Production is an audio processing job.
type Production struct {
	Algorithms        *Algorithms        `json:"algorithms"`
	Bitrate           *float64           `json:"bitrate"`
	ChangeAllowed     bool               `json:"change_allowed"`
	ChangeTime        APITime            `json:"change_time"`
	Channels          *int               `json:"channels"`
	Chapters          []Chapter          `json:"chapters"`
	CreationTime      APITime            `json:"creation_time"`
	CutEnd            float64            `json:"cut_end"`
	CutStart          float64            `json:"cut_start"`
	EditPage          string             `json:"edit_page"`
	ErrorMessage      string             `json:"error_message"`
	ErrorStatus       string             `json:"error_status"`
	Format            string             `json:"format"`
	HasVideo          bool               `json:"has_video"`
	Image             string             `json:"image"`
	InputFile         string             `json:"input_file"`
	IsMultitrack      bool               `json:"is_multitrack"`
	Length            *float64           `json:"length"`
	LengthTimestring  string             `json:"length_timestring"`
	Metadata          *Metadata          `json:"metadata"`
	MultiInputFiles   []MultiInputFile   `json:"multi_input_files"`
	OutgoingServices  []OutgoingService  `json:"outgoing_services"`
	OutputBasename    string             `json:"output_basename"`
	OutputFiles       []OutputFile       `json:"output_files"`
	Preset            string             `json:"preset"`
	Samplerate        *int               `json:"samplerate"`
	Service           string             `json:"service"`
	SpeechRecognition *SpeechRecognition `json:"speech_recognition"`
	StartAllowed      bool               `json:"start_allowed"`
	Statistics        *Statistics        `json:"statistics"`
	Status            ProductionStatus   `json:"status"`
	StatusPage        string             `json:"status_page"`
	StatusString      string             `json:"status_string"`
	Thumbnail         string             `json:"thumbnail"`
	UsedCredits       *Credits           `json:"used_credits"`
	UUID              string             `json:"uuid"`
	WarningMessage    string             `json:"warning_message"`
	WarningStatus     string             `json:"warning_status"`
	WaveformImage     string             `json:"waveform_image"`
	Webhook           string             `json:"webhook"`
}

// NewProduction creates a production based on an existing preset.
func NewProduction(presetUUID string) (*Production, error) {
	if err := precondition.NotBlank(presetUUID, "presetUuid"); err != nil {
		return nil, err
	}
	return &Production{Preset: presetUUID}, nil
}

// MarshalJSON sends only the fields a client may set.
func (p Production) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Algorithms        *Algorithms        `json:"algorithms"`
		ChangeAllowed     bool               `json:"change_allowed"`
		Chapters          *[]Chapter         `json:"chapters,omitempty"`
		CutEnd            float64            `json:"cut_end"`
		CutStart          float64            `json:"cut_start"`
		HasVideo          bool               `json:"has_video"`
		Image             string             `json:"image,omitempty"`
		InputFile         string             `json:"input_file,omitempty"`
		IsMultitrack      bool               `json:"is_multitrack"`
		Metadata          *Metadata          `json:"metadata"`
		MultiInputFiles   *[]MultiInputFile  `json:"multi_input_files,omitempty"`
		OutgoingServices  *[]OutgoingService `json:"outgoing_services,omitempty"`
		OutputBasename    string             `json:"output_basename,omitempty"`
		OutputFiles       *[]OutputFile      `json:"output_files,omitempty"`
		Preset            string             `json:"preset,omitempty"`
		Service           string             `json:"service"`
		SpeechRecognition *SpeechRecognition `json:"speech_recognition"`
		StartAllowed      bool               `json:"start_allowed"`
		Thumbnail         string             `json:"thumbnail"`
		Webhook           string             `json:"webhook"`
	}{
		Algorithms:        p.Algorithms,
		ChangeAllowed:     p.ChangeAllowed,
		Chapters:          nilOmit(p.Chapters),
		CutEnd:            p.CutEnd,
		CutStart:          p.CutStart,
		HasVideo:          p.HasVideo,
		Image:             p.Image,
		InputFile:         p.InputFile,
		IsMultitrack:      p.IsMultitrack,
		Metadata:          p.Metadata,
		MultiInputFiles:   nilOmit(p.MultiInputFiles),
		OutgoingServices:  nilOmit(p.OutgoingServices),
		OutputBasename:    p.OutputBasename,
		OutputFiles:       nilOmit(p.OutputFiles),
		Preset:            p.Preset,
		Service:           p.Service,
		SpeechRecognition: p.SpeechRecognition,
		StartAllowed:      p.StartAllowed,
		Thumbnail:         p.Thumbnail,
		Webhook:           p.Webhook,
	})
}

// Service is an external service connected to the account.
type Service struct {
	BaseURL         string `json:"base_url"`
	Bucket          string `json:"bucket"`
	CannedACL       string `json:"canned_acl"`
	DisplayName     string `json:"display_name"`
	Email           string `json:"email"`
	Host            string `json:"host"`
	Incoming        bool   `json:"incoming"`
	KeyPrefix       string `json:"key_prefix"`
	LibsynDirectory string `json:"libsyn_directory"`
	LibsynShowSlug  string `json:"libsyn_show_slug"`
	Outgoing        bool   `json:"outgoing"`
	Path            string `json:"path"`
	Permissions     string `json:"permissions"`
	Port            string `json:"port"`
	ProgramKeyword  string `json:"program_keyword"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	UUID            string `json:"uuid"`
}

func (s Service) String() string { return s.DisplayName }

// ServiceType describes a kind of external service and its parameters.
type ServiceType struct {
	DisplayName string               `json:"display_name"`
	Parameters  map[string]Parameter `json:"parameters"`
}

func (t ServiceType) String() string { return t.DisplayName }

// SpeechRecognition configures a speech recognition service.
type SpeechRecognition struct {
	Keywords []string `json:"keywords"`
	Language string   `json:"language"`
	Type     string   `json:"type"`
	UUID     string   `json:"uuid"`
}

// NewSpeechRecognition requires a service UUID, a language and at least one
// keyword.
func NewSpeechRecognition(uuid, language string, keywords []string) (*SpeechRecognition, error) {
	if err := precondition.First(
		precondition.NotBlank(uuid, "uuid"),
		precondition.NotBlank(language, "language"),
		precondition.NotEmpty(keywords, "keywords"),
	); err != nil {
		return nil, err
	}
	return &SpeechRecognition{UUID: uuid, Language: language, Keywords: keywords}, nil
}

// Statistics is the audio analysis of a finished production.
type Statistics struct {
	Format            *Format             `json:"format"`
	Levels            *Levels             `json:"levels"`
	MusicSpeech       []MusicSpeech       `json:"music_speech"`
	NoiseHumReduction []NoiseHumReduction `json:"noise_hum_reduction"`
}

// OAuthToken is the result of a password grant.
type OAuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Username    string `json:"user_name"`
	Scope       string `json:"scope"`
}

func (t OAuthToken) String() string {
	return fmt.Sprintf("AccessToken = %s; TokenType = %s", t.AccessToken, t.TokenType)
}

// ResponseError is the error body of the OAuth endpoints.
type ResponseError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func nilOmit[T any](values []T) *[]T {
	if values == nil {
		return nil
	}
	return &values
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
