// Package build exposes version information stamped in via ldflags at
// build time.
package build

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var (
	gBuildVersion string
	gBuildCommit  string
	gBuildDate    string
	gBuildInfo    BuildInfo
)

func init() {
	gBuildInfo = BuildInfo{
		Version: gBuildVersion,
		Commit:  gBuildCommit,
		Date:    gBuildDate,
	}
}

func GetBuildInfo() BuildInfo {
	return gBuildInfo
}
