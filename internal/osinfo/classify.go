package osinfo

import (
	"regexp"
	"strings"
)

// Classification carries the display properties derived from an OS name.
type Classification struct {
	Icon       string `json:"icon"`
	Category   string `json:"category"`
	BrandColor string `json:"brandColor"`
}

type rule struct {
	patterns []string
	class    Classification
}

// Ordered pattern rules. Order matters: the bare "linux" rule sits last so it
// does not shadow specific distros.
var rules = []rule{
	{[]string{"windows"}, Classification{"windowsOS.svg", "windows", "#0078D4"}},
	{[]string{"ubuntu"}, Classification{"ubuntuOS.svg", "ubuntu", "#E95420"}},
	{[]string{"debian"}, Classification{"debianOS.svg", "debian", "#A81D33"}},
	{[]string{"centos"}, Classification{"centosOS.svg", "centos", "#932279"}},
	{[]string{"almalinux", "alma linux"}, Classification{"almaOS.svg", "almalinux", "#0F4266"}},
	{[]string{"rocky"}, Classification{"rockyOS.svg", "rocky", "#10B981"}},
	{[]string{"fedora"}, Classification{"fedoraOS.svg", "fedora", "#51A2DA"}},
	{[]string{"rhel", "red hat", "redhat"}, Classification{"redhatOS.svg", "rhel", "#EE0000"}},
	{[]string{"suse", "opensuse"}, Classification{"suseOS.svg", "suse", "#73BA25"}},
	{[]string{"arch"}, Classification{"archOS.svg", "arch", "#1793D1"}},
	{[]string{"oracle"}, Classification{"oracleOS.svg", "oracle", "#F80000"}},
	{[]string{"linux"}, Classification{"linuxOS.svg", "linux", "#FCC624"}},
}

var defaultClass = Classification{"genericOS.svg", "other", "#6B7280"}

// Classify maps a free-text OS name to display properties. First matching
// rule wins; unmatched names get the generic fallback. Deterministic for any
// input, so re-running it on unchanged names never creates sync diffs.
func Classify(name string) Classification {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(lower, p) {
				return r.class
			}
		}
	}
	return defaultClass
}

var versionRe = regexp.MustCompile(`(\d+)`)

// Arch derives the architecture label from an OS name. Explicit tokens win;
// arm64 is checked before arm so "aarch64" never downgrades to plain ARM, and
// 64-bit tokens before 32-bit ones so "x86_64" resolves as 64bit.
func Arch(name string) string {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "arm64"), strings.Contains(lower, "aarch64"):
		return "ARM64"
	case strings.Contains(lower, "arm"):
		return "ARM"
	case strings.Contains(lower, "64"), strings.Contains(lower, "x64"), strings.Contains(lower, "amd64"):
		return "64bit"
	case strings.Contains(lower, "32"), strings.Contains(lower, "x86"), strings.Contains(lower, "i386"):
		return "32bit"
	}

	if m := versionRe.FindString(lower); m != "" {
		return m + ".x 64bit"
	}

	return "64bit"
}
