// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the version, date and commit stamped into the binary by
// linker flags. Any of them may be empty in a local build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// Stamped reports whether a version was injected at link time. Only then
// does it replace the configured APP_VERSION.
func (a AppBuildInfo) Stamped() bool {
	return a.buildVersion != ""
}

// Filled returns a copy with every empty field set to placeholder.
func (a AppBuildInfo) Filled(placeholder string) AppBuildInfo {
	or := func(s string) string {
		if s == "" {
			return placeholder
		}
		return s
	}
	return NewAppBuildInfo(or(a.buildVersion), or(a.buildDate), or(a.buildCommit))
}

// String renders the startup banner printed before the logger is ready.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}
