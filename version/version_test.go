package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jsonops/version"
)

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info version.Info
		want string
	}{
		"without build date": {
			info: version.Info{Version: "v1.2.0", Revision: "abc", GoVersion: "go1.25.0", Platform: "linux/amd64"},
			want: "jsonops v1.2.0 (revision abc, go1.25.0, linux/amd64)",
		},
		"with build date": {
			info: version.Info{
				Version:   "v1.2.0",
				Revision:  "abc-dirty",
				BuildDate: "2026-01-02",
				GoVersion: "go1.25.0",
				Platform:  "darwin/arm64",
			},
			want: "jsonops v1.2.0 (revision abc-dirty, go1.25.0, darwin/arm64) built 2026-01-02",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.info.String())
		})
	}
}
