package handler

import (
	"net/http"
	"runtime"

	"github.com/osse101/netitem/internal/netitem"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	BuildTime    string `json:"build_time,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
	MaxInventory int    `json:"max_inventory"`
}

// Build-time variables (injected via ldflags)
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports which build is deployed and the slot count it stores
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version string) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	info := VersionInfo{
		Version:      version,
		GoVersion:    runtime.Version(),
		BuildTime:    BuildTime,
		GitCommit:    GitCommit,
		MaxInventory: netitem.MaxInventory,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
