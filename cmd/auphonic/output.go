package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/akordowski/auphonic-go/pkg/auphonic"
	"gopkg.in/yaml.v3"
)

// render writes v in the format selected with --output.
func render(w io.Writer, v any) error {
	switch outputFormat {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

// The model types serialize as request bodies, so output goes through these
// views instead.

type tokenView struct {
	AccessToken string `json:"access_token" yaml:"access_token"`
	TokenType   string `json:"token_type" yaml:"token_type"`
	ExpiresIn   int    `json:"expires_in" yaml:"expires_in"`
	Username    string `json:"username" yaml:"username"`
}

type accountView struct {
	Username         string  `json:"username" yaml:"username"`
	Email            string  `json:"email" yaml:"email"`
	Credits          float64 `json:"credits" yaml:"credits"`
	OnetimeCredits   float64 `json:"onetime_credits" yaml:"onetime_credits"`
	RecurringCredits float64 `json:"recurring_credits" yaml:"recurring_credits"`
	DateJoined       string  `json:"date_joined,omitempty" yaml:"date_joined,omitempty"`
}

type presetView struct {
	UUID         string `json:"uuid" yaml:"uuid"`
	Name         string `json:"name" yaml:"name"`
	CreationTime string `json:"creation_time,omitempty" yaml:"creation_time,omitempty"`
	OutputFiles  int    `json:"output_files" yaml:"output_files"`
}

type outputFileView struct {
	Format      string `json:"format" yaml:"format"`
	Filename    string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Size        string `json:"size,omitempty" yaml:"size,omitempty"`
	DownloadURL string `json:"download_url,omitempty" yaml:"download_url,omitempty"`
}

type productionView struct {
	UUID         string           `json:"uuid" yaml:"uuid"`
	Title        string           `json:"title,omitempty" yaml:"title,omitempty"`
	Status       string           `json:"status" yaml:"status"`
	StatusString string           `json:"status_string,omitempty" yaml:"status_string,omitempty"`
	InputFile    string           `json:"input_file,omitempty" yaml:"input_file,omitempty"`
	Length       string           `json:"length,omitempty" yaml:"length,omitempty"`
	CreationTime string           `json:"creation_time,omitempty" yaml:"creation_time,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	OutputFiles  []outputFileView `json:"output_files,omitempty" yaml:"output_files,omitempty"`
}

type serviceView struct {
	UUID        string `json:"uuid" yaml:"uuid"`
	Type        string `json:"type" yaml:"type"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Incoming    bool   `json:"incoming" yaml:"incoming"`
	Outgoing    bool   `json:"outgoing" yaml:"outgoing"`
}

type infoView struct {
	Algorithms      map[string]string `json:"algorithms" yaml:"algorithms"`
	FileEndings     map[string]string `json:"file_endings" yaml:"file_endings"`
	OutputFileTypes map[string]string `json:"output_file_types" yaml:"output_file_types"`
	ProductionState map[string]string `json:"production_status" yaml:"production_status"`
	ServiceTypes    map[string]string `json:"service_types" yaml:"service_types"`
}

func formatTime(t auphonic.APITime) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func newTokenView(t *auphonic.OAuthToken) tokenView {
	return tokenView{AccessToken: t.AccessToken, TokenType: t.TokenType, ExpiresIn: t.ExpiresIn, Username: t.Username}
}

func newAccountView(a *auphonic.Account) accountView {
	return accountView{
		Username:         a.Username,
		Email:            a.Email,
		Credits:          a.Credits,
		OnetimeCredits:   a.OnetimeCredits,
		RecurringCredits: a.RecurringCredits,
		DateJoined:       formatTime(a.DateJoined),
	}
}

func newPresetView(p *auphonic.Preset) presetView {
	return presetView{
		UUID:         p.UUID,
		Name:         p.PresetName,
		CreationTime: formatTime(p.CreationTime),
		OutputFiles:  len(p.OutputFiles),
	}
}

func newProductionView(p *auphonic.Production) productionView {
	v := productionView{
		UUID:         p.UUID,
		Status:       p.Status.String(),
		StatusString: p.StatusString,
		InputFile:    p.InputFile,
		Length:       p.LengthTimestring,
		CreationTime: formatTime(p.CreationTime),
		ErrorMessage: p.ErrorMessage,
	}
	if p.Metadata != nil {
		v.Title = p.Metadata.Title
	}
	for _, f := range p.OutputFiles {
		v.OutputFiles = append(v.OutputFiles, outputFileView{
			Format:      f.Format,
			Filename:    f.Filename,
			Size:        f.SizeString,
			DownloadURL: f.DownloadURL,
		})
	}
	return v
}

func newServiceView(s auphonic.Service) serviceView {
	return serviceView{UUID: s.UUID, Type: s.Type, DisplayName: s.DisplayName, Incoming: s.Incoming, Outgoing: s.Outgoing}
}

// displayNames maps each key to the String of its value.
func displayNames[V fmt.Stringer](m map[string]V) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}

func joinEndings(m map[string][]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, endings := range m {
		sorted := append([]string(nil), endings...)
		sort.Strings(sorted)
		out[k] = fmt.Sprint(sorted)
	}
	return out
}

func statusNames(m map[auphonic.ProductionStatus]string) map[string]string {
	out := make(map[string]string, len(m))
	for status, text := range m {
		out[status.String()] = text
	}
	return out
}
