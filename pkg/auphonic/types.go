package auphonic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// APITime is a custom time type that handles the Auphonic API date formats.
// The API returns dates with or without timezone (e.g., "2018-01-01T00:12:34").
type APITime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for APITime
func (t *APITime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var timeStr string
	if err := json.Unmarshal(data, &timeStr); err != nil {
		return err
	}

	if timeStr == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, format := range []string{time.RFC3339, time.RFC3339Nano} {
		if parsed, err := time.Parse(format, timeStr); err == nil {
			t.Time = parsed
			return nil
		}
	}

	// No timezone: drop fractional seconds before parsing
	if i := strings.Index(timeStr, "."); i > 0 {
		timeStr = timeStr[:i]
	}
	if parsed, err := time.Parse("2006-01-02T15:04:05", timeStr); err == nil {
		t.Time = parsed
		return nil
	}

	return fmt.Errorf("unable to parse time string: %s", timeStr)
}

// MarshalJSON implements json.Marshaler for APITime
func (t APITime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// ProductionStatus is the processing state of a production.
type ProductionStatus int

const (
	StatusFileUpload ProductionStatus = iota
	StatusWaiting
	StatusError
	StatusDone
	StatusAudioProcessing
	StatusAudioEncoding
	StatusOutgoingFileTransfer
	StatusAudioMonoMixdown
	StatusSplitAudioOnChapterMarks
	StatusIncompleteForm
	StatusProductionNotStartedYet
	StatusProductionOutdated
	StatusIncomingFileTransfer
	StatusStoppingTheProduction
	StatusSpeechRecognition
)

var productionStatusNames = [...]string{
	"FileUpload",
	"Waiting",
	"Error",
	"Done",
	"AudioProcessing",
	"AudioEncoding",
	"OutgoingFileTransfer",
	"AudioMonoMixdown",
	"SplitAudioOnChapterMarks",
	"IncompleteForm",
	"ProductionNotStartedYet",
	"ProductionOutdated",
	"IncomingFileTransfer",
	"StoppingTheProduction",
	"SpeechRecognition",
}

// ProductionStatuses lists every known status in wire order.
func ProductionStatuses() []ProductionStatus {
	out := make([]ProductionStatus, len(productionStatusNames))
	for i := range out {
		out[i] = ProductionStatus(i)
	}
	return out
}

func (s ProductionStatus) String() string {
	if s >= 0 && int(s) < len(productionStatusNames) {
		return productionStatusNames[s]
	}
	return "ProductionStatus(" + strconv.Itoa(int(s)) + ")"
}

// Terminal reports whether no further processing will happen.
func (s ProductionStatus) Terminal() bool {
	return s == StatusDone || s == StatusError
}

// ParseProductionStatus accepts a status name (case-insensitive) or its
// numeric code.
func ParseProductionStatus(value string) (ProductionStatus, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n >= len(productionStatusNames) {
			return 0, fmt.Errorf("unknown production status %d", n)
		}
		return ProductionStatus(n), nil
	}
	for i, name := range productionStatusNames {
		if strings.EqualFold(name, value) {
			return ProductionStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown production status %q", value)
}

// UnmarshalJSON decodes a status from a number, a numeric string or a name.
func (s *ProductionStatus) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	parsed, err := ParseProductionStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s ProductionStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

// StatusMap maps each production status to its display text. On the wire
// the keys are status names or numeric codes.
type StatusMap map[ProductionStatus]string

func (m *StatusMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(StatusMap, len(raw))
	for key, value := range raw {
		status, err := ParseProductionStatus(key)
		if err != nil {
			return err
		}
		out[status] = value
	}
	*m = out
	return nil
}

// Level is a measured value with its unit, e.g. -16 LUFS. The API encodes
// it as a two element array.
type Level struct {
	Value float64
	Unit  string
}

func (l *Level) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("level must be an array: %w", err)
	}
	*l = Level{}
	if len(parts) != 2 {
		return nil
	}

	value, err := parseLevelValue(parts[0])
	if err != nil {
		return err
	}
	l.Value = value

	var unit string
	if err := json.Unmarshal(parts[1], &unit); err != nil {
		// non-string units keep their literal form
		unit = strings.TrimSpace(string(parts[1]))
	}
	l.Unit = unit
	return nil
}

func parseLevelValue(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("invalid level value %s", raw)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid level value %q: %w", s, err)
	}
	return f, nil
}

func (l Level) String() string {
	return strings.TrimSpace(strconv.FormatFloat(l.Value, 'f', -1, 64) + " " + l.Unit)
}

// NullableInt holds an integer that the API may send as false, null or
// another non-integer value, all of which mean "not set".
type NullableInt struct {
	Value int64
	Valid bool
}

func (n *NullableInt) UnmarshalJSON(data []byte) error {
	*n = NullableInt{}
	v, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return nil
	}
	n.Value = v
	n.Valid = true
	return nil
}

func (n NullableInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Value, 10)), nil
}
