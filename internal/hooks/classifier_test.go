package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Destructive(t *testing.T) {
	c := NewClassifier()
	cases := []string{
		"rm -rf /tmp/build",
		"rm  -rf .",
		"sudo rm -fr /var/cache",
		"shutdown -h now",
		"mkfs /dev/sda1",
		"format c:",
	}
	for _, cmd := range cases {
		got := c.Classify(cmd)
		assert.Equal(t, RiskDestructive, got.Risk, "command=%q", cmd)
		assert.Equal(t, "destructive", got.Category, "command=%q", cmd)
	}
}

func TestClassify_UnknownByDefault(t *testing.T) {
	c := NewClassifier()
	for _, cmd := range []string{"ls -la", "go test ./...", "rm file.txt", "git push"} {
		got := c.Classify(cmd)
		assert.Equal(t, RiskUnknown, got.Risk, "command=%q", cmd)
		assert.Equal(t, "unknown", got.Category, "command=%q", cmd)
	}
}

func TestClassify_Empty(t *testing.T) {
	c := NewClassifier()
	for _, cmd := range []string{"", "   ", "\t\n"} {
		got := c.Classify(cmd)
		assert.Equal(t, RiskSafe, got.Risk)
		assert.Equal(t, "empty", got.Category)
	}
}

func TestClassify_TrustOverridesDestructive(t *testing.T) {
	c := NewClassifier()
	cmd := "rm -rf ./dist"
	assert.Equal(t, RiskDestructive, c.Classify(cmd).Risk)

	c.Trust(cmd)

	got := c.Classify(cmd)
	assert.Equal(t, RiskSafe, got.Risk)
	assert.Equal(t, "whitelist", got.Category)
}

func TestClassify_TrustNormalizesCaseAndSpacing(t *testing.T) {
	c := NewClassifier()
	c.Trust("RM   -rf   ./dist")
	assert.Equal(t, RiskSafe, c.Classify("rm -rf ./dist").Risk)
}

func TestClassify_TrustIsPerCommand(t *testing.T) {
	c := NewClassifier()
	c.Trust("rm -rf ./dist")
	assert.Equal(t, RiskDestructive, c.Classify("rm -rf /").Risk,
		"trusting one command should not trust others")
}
