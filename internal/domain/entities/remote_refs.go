package entities

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	releaseTagPattern    = regexp.MustCompile(`^refs/tags/release/(\d+\.\d+\.\d+)$`)
	developBranchPattern = regexp.MustCompile(`^refs/heads/develop/(\d+\.\d+\.\d+)$`)
)

// RemoteRefSet holds the ref names advertised by a remote.
type RemoteRefSet struct {
	Refs []string
}

// ParseRemoteRefs reads the output of `git ls-remote --refs`. Each line is
// "<sha>\t<ref>"; lines with a single field are taken as the ref itself.
func ParseRemoteRefs(output string) RemoteRefSet {
	var refs []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		refs = append(refs, fields[len(fields)-1])
	}
	return RemoteRefSet{Refs: refs}
}

// ReleaseVersions returns the versions of every release/<x.y.z> tag.
func (s RemoteRefSet) ReleaseVersions() []string {
	return s.capture(releaseTagPattern)
}

// DevelopVersions returns the versions of every develop/<x.y.z> branch.
func (s RemoteRefSet) DevelopVersions() []string {
	return s.capture(developBranchPattern)
}

func (s RemoteRefSet) capture(pattern *regexp.Regexp) []string {
	var versions []string
	for _, ref := range s.Refs {
		if match := pattern.FindStringSubmatch(ref); match != nil {
			versions = append(versions, match[1])
		}
	}
	return versions
}
