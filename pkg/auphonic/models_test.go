package auphonic

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productionFixture = `{
	"algorithms": {"denoise": true, "denoiseamount": 12, "hipfilter": true, "leveler": true, "loudnesstarget": -16, "normloudness": true},
	"bitrate": 320,
	"change_allowed": true,
	"change_time": "2018-02-02T12:34:56",
	"channels": 2,
	"chapters": [],
	"creation_time": "2018-01-01T00:12:34",
	"cut_end": 34,
	"cut_start": 12,
	"edit_page": "edit_page",
	"error_message": "error_message",
	"error_status": "error_status",
	"format": "format",
	"has_video": true,
	"image": "image",
	"input_file": "input_file",
	"is_multitrack": true,
	"length": 123,
	"length_timestring": "length_timestring",
	"metadata": {"title": "title", "tags": ["a", "b"], "location": {"latitude": "1.000", "longitude": "2.000"}},
	"multi_input_files": [],
	"outgoing_services": [],
	"output_basename": "output_basename",
	"output_files": [],
	"preset": null,
	"samplerate": 44100,
	"service": "service",
	"speech_recognition": null,
	"start_allowed": true,
	"statistics": {
		"format": {"bitrate": 320, "channels": 2, "format": "mp3", "length_sec": 61.5, "samplerate": 44100},
		"levels": {"input": {"loudness": [-20.1, "LUFS"]}, "output": {"loudness": [-16, "LUFS"]}},
		"music_speech": [{"label": "speech", "start": "00:00:00", "start_sec": 0, "stop": "00:01:00", "stop_sec": 60}],
		"noise_hum_reduction": [{"dehum": false, "denoise": 12, "start": "0", "start_sec": 0, "stop": "1", "stop_sec": 1}]
	},
	"status": 14,
	"status_page": "status_page",
	"status_string": "status_string",
	"thumbnail": "thumbnail",
	"used_credits": {"combined": 1.5, "onetime": 0.5, "recurring": 1},
	"uuid": "uuid",
	"warning_message": "warning_message",
	"warning_status": "warning_status",
	"waveform_image": "waveform_image",
	"webhook": "webhook"
}`

func keysOf(t *testing.T, data []byte) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestProduction_Decode(t *testing.T) {
	var p Production
	require.NoError(t, json.Unmarshal([]byte(productionFixture), &p))

	assert.Equal(t, "uuid", p.UUID)
	assert.Equal(t, StatusSpeechRecognition, p.Status)
	require.NotNil(t, p.Bitrate)
	assert.Equal(t, 320.0, *p.Bitrate)
	require.NotNil(t, p.Channels)
	assert.Equal(t, 2, *p.Channels)
	require.NotNil(t, p.Samplerate)
	assert.Equal(t, 44100, *p.Samplerate)
	assert.True(t, p.ChangeTime.Equal(time.Date(2018, 2, 2, 12, 34, 56, 0, time.UTC)))
	assert.True(t, p.CreationTime.Equal(time.Date(2018, 1, 1, 0, 12, 34, 0, time.UTC)))
	assert.Equal(t, 34.0, p.CutEnd)
	assert.Equal(t, "", p.Preset)
	assert.Nil(t, p.SpeechRecognition)
	assert.NotNil(t, p.Chapters)
	assert.Empty(t, p.Chapters)

	want := &Statistics{
		Format: &Format{Bitrate: 320, Channels: 2, FileFormat: "mp3", LengthSec: 61.5, SampleRate: 44100},
		Levels: &Levels{
			Input:  &LevelStatistics{Loudness: &Level{Value: -20.1, Unit: "LUFS"}},
			Output: &LevelStatistics{Loudness: &Level{Value: -16, Unit: "LUFS"}},
		},
		MusicSpeech: []MusicSpeech{{Label: "speech", Start: "00:00:00", Stop: "00:01:00", StopSec: 60}},
		NoiseHumReduction: []NoiseHumReduction{{
			Denoise: NullableInt{Value: 12, Valid: true},
			Start:   "0",
			Stop:    "1",
			StopSec: 1,
		}},
	}
	if diff := cmp.Diff(want, p.Statistics); diff != "" {
		t.Errorf("statistics mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Combined = 1.5; Onetime = 0.5; Recurring = 1", p.UsedCredits.String())
}

func TestProduction_EncodeOmitsServerFields(t *testing.T) {
	var p Production
	require.NoError(t, json.Unmarshal([]byte(productionFixture), &p))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	keys := keysOf(t, data)

	for _, key := range []string{
		"algorithms", "change_allowed", "chapters", "cut_end", "cut_start", "has_video",
		"image", "input_file", "is_multitrack", "metadata", "multi_input_files",
		"outgoing_services", "output_basename", "output_files", "service",
		"speech_recognition", "start_allowed", "thumbnail", "webhook",
	} {
		assert.Contains(t, keys, key)
	}
	for _, key := range []string{
		"bitrate", "change_time", "channels", "creation_time", "edit_page", "error_message",
		"error_status", "format", "length", "length_timestring", "samplerate", "statistics",
		"status", "status_page", "status_string", "used_credits", "uuid", "warning_message",
		"warning_status", "waveform_image", "preset",
	} {
		assert.NotContains(t, keys, key)
	}

	assert.JSONEq(t, `[]`, string(keys["chapters"]))
	assert.JSONEq(t, `{"denoise":true,"denoiseamount":12,"hipfilter":true,"leveler":true,"loudnesstarget":-16,"normloudness":true}`,
		string(keys["algorithms"]))
}

func TestProduction_EncodeOmitsEmptyDefaults(t *testing.T) {
	p, err := NewProduction("preset-uuid")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	keys := keysOf(t, data)

	assert.JSONEq(t, `"preset-uuid"`, string(keys["preset"]))
	for _, key := range []string{"image", "input_file", "output_basename", "chapters", "multi_input_files", "outgoing_services", "output_files"} {
		assert.NotContains(t, keys, key)
	}
}

func TestPreset_EncodeKeepsUUID(t *testing.T) {
	fixture := `{
		"preset_name": "name",
		"uuid": "uuid",
		"creation_time": "2018-01-01T00:00:00",
		"image": "",
		"output_basename": "base",
		"output_files": [{"format": "mp3", "bitrate": 128, "checksum": "x", "download_url": "u", "size": 10, "size_string": "10 B"}],
		"outgoing_services": [{"uuid": "svc", "display_name": "YouTube", "incomming": true}]
	}`

	var preset Preset
	require.NoError(t, json.Unmarshal([]byte(fixture), &preset))
	assert.Equal(t, "name", preset.String())
	assert.True(t, preset.OutgoingServices[0].Incoming)

	data, err := json.Marshal(preset)
	require.NoError(t, err)
	keys := keysOf(t, data)

	assert.JSONEq(t, `"uuid"`, string(keys["uuid"]))
	assert.JSONEq(t, `"base"`, string(keys["output_basename"]))
	assert.NotContains(t, keys, "creation_time")
	assert.NotContains(t, keys, "image")
	assert.NotContains(t, keys, "multi_input_files")
	assert.JSONEq(t, `[{"uuid":"svc"}]`, string(keys["outgoing_services"]))

	files := keysOf(t, mustMarshal(t, preset.OutputFiles[0]))
	assert.Contains(t, files, "format")
	assert.Contains(t, files, "bitrate")
	for _, key := range []string{"checksum", "download_url", "size", "size_string", "outgoing_services"} {
		assert.NotContains(t, files, key)
	}
}

func TestChapterAndMultiInputFile_Encode(t *testing.T) {
	var chapter Chapter
	require.NoError(t, json.Unmarshal([]byte(`{"start":"00:00:01","start_sec":1,"start_output":"x","start_output_sec":1,"title":"Intro","url":"u","image":"i"}`), &chapter))
	assert.Equal(t, 1.0, chapter.StartSec)
	assert.JSONEq(t, `{"image":"i","start":"00:00:01","title":"Intro","url":"u"}`, string(mustMarshal(t, chapter)))

	var file MultiInputFile
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","input_bitrate":128,"input_channels":2,"input_file":"f.wav","input_filetype":"wav","input_length":1.5,"input_samplerate":44100,"offset":2.5,"service":"s","type":"speech"}`), &file))
	assert.Equal(t, 44100, file.InputSamplerate)
	assert.JSONEq(t, `{"algorithms":null,"id":"a","input_file":"f.wav","offset":2.5,"service":"s","type":"speech"}`, string(mustMarshal(t, file)))
}

func TestMetadata_EncodeTags(t *testing.T) {
	keys := keysOf(t, mustMarshal(t, Metadata{Title: "t"}))
	assert.NotContains(t, keys, "tags")
	assert.Contains(t, keys, "append_chapters")

	keys = keysOf(t, mustMarshal(t, Metadata{Tags: []string{}}))
	assert.JSONEq(t, `[]`, string(keys["tags"]))
}

func TestAlgorithms_WireNames(t *testing.T) {
	keys := keysOf(t, mustMarshal(t, Algorithms{}))
	for _, key := range []string{"denoise", "denoiseamount", "hipfilter", "leveler", "loudnesstarget", "normloudness"} {
		assert.Contains(t, keys, key)
	}
}

func TestOAuthToken_Decode(t *testing.T) {
	var token OAuthToken
	require.NoError(t, json.Unmarshal([]byte(`{"access_token":"abc","token_type":"bearer","expires_in":315360000,"user_name":"u","scope":""}`), &token))
	assert.Equal(t, OAuthToken{AccessToken: "abc", TokenType: "bearer", ExpiresIn: 315360000, Username: "u"}, token)
	assert.Equal(t, "AccessToken = abc; TokenType = bearer", token.String())
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "Leveler = on", Algorithm{DisplayName: "Leveler", DefaultValue: "on"}.String())
	assert.Equal(t, "High = 3", Option{DisplayName: "High", Value: "3"}.String())
	assert.Equal(t, "speech (Start = 1; Stop = 2)", MusicSpeech{Label: "speech", Start: "1", Stop: "2"}.String())
	assert.Equal(t, "user", Account{Username: "user"}.String())
	assert.Equal(t, "mp3", Format{FileFormat: "mp3"}.String())
}

func TestConstructors(t *testing.T) {
	loc := NewLocation(48.1372, 11.5756)
	assert.Equal(t, "48.137", loc.Latitude)
	assert.Equal(t, "11.576", loc.Longitude)
	assert.Equal(t, "Latitude = 48.137; Longitude = 11.576", loc.String())

	_, err := NewPreset(" ")
	requireArgumentError(t, err, precondition.InvalidArgument, "presetName")

	_, err = NewProduction("")
	requireArgumentError(t, err, precondition.InvalidArgument, "presetUuid")

	_, err = NewChapter("00:00:00", "", "", "")
	requireArgumentError(t, err, precondition.InvalidArgument, "title")

	_, err = NewSpeechRecognition("uuid", "en", nil)
	requireArgumentError(t, err, precondition.NullArgument, "keywords")

	sr, err := NewSpeechRecognition("uuid", "en", []string{"auphonic"})
	require.NoError(t, err)
	assert.Equal(t, "en", sr.Language)

	svc, err := NewOutgoingService("svc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"svc"}`, string(mustMarshal(t, svc)))
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
