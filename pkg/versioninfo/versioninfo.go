package versioninfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// A Info contains a version.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// SemVer returns the parsed version, or nil when it is not semantic.
func (vi Info) SemVer() *semver.Version {
	v, err := semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
	if err != nil {
		return nil
	}
	return v
}

func (vi Info) String() string {
	var versionElems []string
	switch {
	case vi.Version == "":
		versionElems = append(versionElems, "dev")
	case vi.SemVer() == nil:
		return vi.Version
	default:
		versionElems = append(versionElems, "v"+vi.SemVer().String())
	}
	if vi.Commit != "" {
		commit := vi.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		versionElems = append(versionElems, "commit "+commit)
	}
	if vi.Date != "" {
		versionElems = append(versionElems, "built at "+vi.Date)
	}
	if vi.BuiltBy != "" {
		versionElems = append(versionElems, "built by "+vi.BuiltBy)
	}
	return strings.Join(versionElems, ", ")
}
