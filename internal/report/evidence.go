package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// EvidenceSink persists run artifacts (screenshots and structured results)
// under a per-run directory. It implements scenario.ReportSink.
type EvidenceSink struct {
	dir    string
	runID  string
	logger zerolog.Logger
}

// NewEvidenceSink creates a sink rooted at baseDir/<runID>
func NewEvidenceSink(baseDir string, logger zerolog.Logger) (*EvidenceSink, error) {
	runID := uuid.New().String()
	dir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create evidence directory: %w", err)
	}
	return &EvidenceSink{dir: dir, runID: runID, logger: logger}, nil
}

// RunID returns the unique identifier for this run
func (s *EvidenceSink) RunID() string {
	return s.runID
}

// Dir returns the directory artifacts are written to
func (s *EvidenceSink) Dir() string {
	return s.dir
}

// RecordEvidence writes payload to a file named after label. PNG payloads
// keep their image extension; everything else is stored as JSON.
func (s *EvidenceSink) RecordEvidence(label string, payload []byte) error {
	ext := ".json"
	if bytes.HasPrefix(payload, pngMagic) {
		ext = ".png"
	}

	path := filepath.Join(s.dir, sanitizeLabel(label)+ext)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write evidence %q: %w", label, err)
	}

	s.logger.Info().
		Str("run_id", s.runID).
		Str("label", label).
		Str("path", path).
		Int("bytes", len(payload)).
		Msg("evidence recorded")
	return nil
}

// sanitizeLabel maps an arbitrary label to a safe file stem
func sanitizeLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	stem := strings.Trim(b.String(), "-")
	if stem == "" {
		stem = "evidence"
	}
	return stem
}
