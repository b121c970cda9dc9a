package osinfo

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		category string
		icon     string
		color    string
	}{
		{"Windows Server 2022 Standard", "windows", "windowsOS.svg", "#0078D4"},
		{"Ubuntu 22.04 LTS x64", "ubuntu", "ubuntuOS.svg", "#E95420"},
		{"Debian 12 (Bookworm)", "debian", "debianOS.svg", "#A81D33"},
		{"CentOS 7.9", "centos", "centosOS.svg", "#932279"},
		{"AlmaLinux 9 x64", "almalinux", "almaOS.svg", "#0F4266"},
		{"Rocky Linux 9", "rocky", "rockyOS.svg", "#10B981"},
		{"Fedora 40 Server", "fedora", "fedoraOS.svg", "#51A2DA"},
		{"RHEL 9", "rhel", "redhatOS.svg", "#EE0000"},
		{"Red Hat Enterprise Linux 8", "rhel", "redhatOS.svg", "#EE0000"},
		{"openSUSE Leap 15", "suse", "suseOS.svg", "#73BA25"},
		{"Arch Linux", "arch", "archOS.svg", "#1793D1"},
		{"Oracle Linux 9", "oracle", "oracleOS.svg", "#F80000"},
		{"Some Custom Linux", "linux", "linuxOS.svg", "#FCC624"},
		{"Unknown Distro 5", "other", "genericOS.svg", "#6B7280"},
	}

	for _, tt := range tests {
		got := Classify(tt.name)
		if got.Category != tt.category {
			t.Errorf("Classify(%q) category = %q, want %q", tt.name, got.Category, tt.category)
		}
		if got.Icon != tt.icon {
			t.Errorf("Classify(%q) icon = %q, want %q", tt.name, got.Icon, tt.icon)
		}
		if got.BrandColor != tt.color {
			t.Errorf("Classify(%q) brandColor = %q, want %q", tt.name, got.BrandColor, tt.color)
		}
	}
}

func TestClassify_SpecificDistroBeforeGenericLinux(t *testing.T) {
	// "AlmaLinux" contains "linux"; the specific rule must win
	if got := Classify("AlmaLinux 9"); got.Category != "almalinux" {
		t.Errorf("Expected category almalinux, got %q", got.Category)
	}
	if got := Classify("Oracle Linux 9"); got.Category != "oracle" {
		t.Errorf("Expected category oracle, got %q", got.Category)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("Ubuntu 22.04 LTS x64")
	for i := 0; i < 100; i++ {
		if got := Classify("Ubuntu 22.04 LTS x64"); got != first {
			t.Fatalf("Classify() not deterministic: %v != %v", got, first)
		}
	}
}

func TestArch(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ubuntu 22.04 LTS x64", "64bit"},
		{"Debian amd64", "64bit"},
		{"CentOS 7 x86_64", "64bit"},
		{"Ubuntu 18.04 i386", "32bit"},
		{"Windows XP 32-bit", "32bit"},
		{"Ubuntu 22.04 arm64", "ARM64"},
		{"Debian aarch64", "ARM64"},
		{"Raspbian arm", "ARM"},
		{"Debian 12", "12.x 64bit"},
		{"Unknown Distro 5", "5.x 64bit"},
		{"Mystery OS", "64bit"},
	}

	for _, tt := range tests {
		if got := Arch(tt.name); got != tt.want {
			t.Errorf("Arch(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
