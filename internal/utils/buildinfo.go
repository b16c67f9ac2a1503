// Package utils provides logging and build metadata helpers.
package utils

import (
	"runtime/debug"
)

const (
	unknownVersion      = "unknown"
	develVersion        = "(devel)"
	revisionSettingKey  = "vcs.revision"
	shortRevisionLength = 12
)

type buildInfoReader func() (*debug.BuildInfo, bool)

// GetApplicationVersion reports the module version embedded at build time,
// falling back to the VCS revision and finally to "unknown".
func GetApplicationVersion() string {
	return applicationVersion(debug.ReadBuildInfo)
}

func applicationVersion(readBuildInfo buildInfoReader) string {
	buildInfo, buildInfoAvailable := readBuildInfo()
	if !buildInfoAvailable || buildInfo == nil {
		return unknownVersion
	}
	if buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key != revisionSettingKey || setting.Value == EmptyString {
			continue
		}
		if len(setting.Value) > shortRevisionLength {
			return setting.Value[:shortRevisionLength]
		}
		return setting.Value
	}
	return unknownVersion
}
