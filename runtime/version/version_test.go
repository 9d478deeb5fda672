package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	if !strings.Contains(v, "bitops/v1.0.0") {
		t.Errorf("version %q does not carry the release string", v)
	}
	if !strings.Contains(v, "Built at:") {
		t.Errorf("version %q does not carry the build date", v)
	}
}

func TestSemver(t *testing.T) {
	if Semver() != [3]uint8{1, 0, 0} {
		t.Errorf("unexpected semver components: %v", Semver())
	}
}
