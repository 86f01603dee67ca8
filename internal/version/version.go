package version

import (
	"fmt"
	"regexp"
	"runtime"

	"github.com/fatih/color"
)

// Version information for the paf CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the machine-readable form of the build information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

// Current collects the build information.
func Current() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Colored раскрашивает major.minor.patch; суффикс (-dev, +build) остаётся как есть.
// Строки не в формате semver возвращаются без изменений.
func Colored(v string) string {
	m := semverRe.FindStringSubmatch(v)
	if m == nil {
		return v
	}
	return versionMajorColor.Sprint(m[1]) + "." +
		versionMinorColor.Sprint(m[2]) + "." +
		versionPatchColor.Sprint(m[3]) + m[4]
}

// Pretty renders a one-line human readable version string.
func (i Info) Pretty() string {
	s := fmt.Sprintf("paf %s", Colored(i.Version))
	if i.GitCommit != "" {
		s += fmt.Sprintf(" (%s)", i.GitCommit)
	}
	if i.BuildDate != "" {
		s += fmt.Sprintf(" built %s", i.BuildDate)
	}
	return s + " " + i.GoVersion
}

var semverRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(.*)$`)
