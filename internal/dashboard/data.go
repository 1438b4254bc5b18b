package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
)

// Format is a data export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ExportFilename is the default file name for a JSON export.
const ExportFilename = "campusbuddy-data.json"

// FormatFromPath picks the export format from a file extension, defaulting
// to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document is the export file. Keys that are absent from the store are
// omitted; a present but empty collection is kept.
type Document struct {
	RevisionPlan  *[]models.PlanDay           `json:"campusbuddy-revision-plan,omitempty" yaml:"campusbuddy-revision-plan,omitempty"`
	CGPAData      *[]models.CGPASubject       `json:"campusbuddy-cgpa-data,omitempty" yaml:"campusbuddy-cgpa-data,omitempty"`
	Attendance    *[]models.AttendanceSubject `json:"campusbuddy-attendance-data,omitempty" yaml:"campusbuddy-attendance-data,omitempty"`
	RecentOutputs *[]models.RecentOutput      `json:"campusbuddy-recent-outputs,omitempty" yaml:"campusbuddy-recent-outputs,omitempty"`
}

// entries maps each storage key to its field in d.
func (d *Document) entries() []struct {
	key string
	ptr any
} {
	return []struct {
		key string
		ptr any
	}{
		{constants.KeyRevisionPlan, &d.RevisionPlan},
		{constants.KeyCGPAData, &d.CGPAData},
		{constants.KeyAttendance, &d.Attendance},
		{constants.KeyRecentOutputs, &d.RecentOutputs},
	}
}

// Data exports, imports and clears every persisted collection.
type Data struct {
	st *state
}

// Snapshot reads the persisted keys straight from the store.
func (d *Data) Snapshot() (Document, error) {
	var doc Document
	for _, e := range doc.entries() {
		raw, ok, err := d.st.store.Get(e.key)
		if err != nil {
			return Document{}, fmt.Errorf("failed to read %s: %w", e.key, err)
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, e.ptr); err != nil {
			return Document{}, fmt.Errorf("failed to decode %s: %w", e.key, err)
		}
	}
	return doc, nil
}

// Export encodes every present key. JSON is indented by two spaces.
func (d *Data) Export(format Format) ([]byte, error) {
	doc, err := d.Snapshot()
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Import writes every key present in data and returns the keys written.
// Keys missing from data are left untouched; unknown keys are ignored.
// Nothing is written when data does not decode.
func (d *Data) Import(data []byte, format Format) ([]string, error) {
	var doc Document
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON file: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var written []string
	for _, e := range doc.entries() {
		raw, err := json.Marshal(e.ptr)
		if err != nil {
			return written, err
		}
		if string(raw) == "null" {
			continue
		}
		if err := d.st.store.Set(e.key, raw); err != nil {
			d.st.reload()
			return written, fmt.Errorf("failed to import %s: %w", e.key, err)
		}
		written = append(written, e.key)
	}
	d.st.reload()
	return written, nil
}

// Clear removes every persisted key.
func (d *Data) Clear() error {
	var errs []error
	for _, key := range constants.AllKeys {
		if err := d.st.store.Remove(key); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", key, err))
		}
	}
	d.st.reload()
	return errors.Join(errs...)
}
