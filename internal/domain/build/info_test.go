package build_test

import (
	"runtime"
	"testing"

	"github.com/bnema/bridgehost/internal/domain/build"
	"github.com/stretchr/testify/assert"
)

func TestNewInfo_Defaults(t *testing.T) {
	info := build.NewInfo("", "", "")

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestNewInfo_KeepsLdflags(t *testing.T) {
	info := build.NewInfo("v0.3.0", "abc1234", "2026-10-01")

	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, "abc1234", info.Commit)
	assert.Equal(t, "2026-10-01", info.BuildDate)
}
