package cosmicroses

import "github.com/Masterminds/semver/v3"

// release is the semantic version of this build.
const release = "0.1.0-dev"

// GitCommit set by build flags. It is attached to the version as build
// metadata.
var GitCommit = ""

// Version returns the runtime version, for example "v0.1.0-dev+4c204d6".
func Version() string {
	v := semver.MustParse(release)
	if GitCommit != "" {
		if meta, err := v.SetMetadata(GitCommit); err == nil {
			v = &meta
		}
	}
	return "v" + v.String()
}
