// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata injected by linker
// flags and reported by the version endpoint.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// VersionInfo is the body of the version endpoint.
type VersionInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Cache  string `json:"cache"`
}

// ErrorDetail is a single entry of an error response.
type ErrorDetail struct {
	Msg  string `json:"msg"`
	Kind string `json:"kind"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

// MessageResponse acknowledges an operation that returns no entity.
type MessageResponse struct {
	Msg string `json:"msg"`
}
