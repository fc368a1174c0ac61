package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wardenlabs/warden/internal/repository"
)

// writeProjection regenerates the human-readable intent map from the index.
// The markdown document is advisory output for operators, never parsed back.
func (r *Registry) writeProjection(mappings []repository.FileMapping) error {
	var b strings.Builder
	b.WriteString("# Intent Map\n")

	var current string
	for _, m := range mappings {
		if m.IntentID != current {
			current = m.IntentID
			fmt.Fprintf(&b, "\n## %s\n\n", current)
		}
		fmt.Fprintf(&b, "- %s (%s)\n", m.RelativePath, m.RecordedAt.UTC().Format(time.RFC3339))
	}

	if err := os.MkdirAll(filepath.Dir(r.mapMDPath), 0755); err != nil {
		return fmt.Errorf("creating orchestration directory: %w", err)
	}
	if err := os.WriteFile(r.mapMDPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing intent map projection: %w", err)
	}
	return nil
}
