package trace

import (
	"context"
	"os/exec"
	"strings"

	"github.com/wardenlabs/warden/internal/domain"
)

// RevisionSource resolves the current version-control revision for audit
// entries. Implementations return domain.RevisionUncommitted when no
// revision is available rather than failing.
type RevisionSource interface {
	Revision(ctx context.Context) string
}

// GitRevisionSource shells out to git in the workspace directory.
type GitRevisionSource struct {
	Dir string
}

func (g GitRevisionSource) Revision(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = g.Dir
	out, err := cmd.Output()
	if err != nil {
		return domain.RevisionUncommitted
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return domain.RevisionUncommitted
	}
	return rev
}

// StaticRevisionSource returns a fixed revision; used in tests.
type StaticRevisionSource string

func (s StaticRevisionSource) Revision(context.Context) string { return string(s) }
