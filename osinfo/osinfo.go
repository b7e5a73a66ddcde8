// Package osinfo identifies the operating system the current process is
// running on. Detection happens at run time because a binary may execute on a
// different machine than the one that built it.
package osinfo

import "strings"

// Bitness is the word size of the running operating system.
type Bitness string

const (
	BitnessUnknown Bitness = "unknown bitness"
	Bitness32      Bitness = "32-bit"
	Bitness64      Bitness = "64-bit"
)

// String returns the display form. The zero value renders as unknown.
func (b Bitness) String() string {
	switch b {
	case Bitness32, Bitness64:
		return string(b)
	default:
		return string(BitnessUnknown)
	}
}

// Info describes an operating system. Empty fields mean the value could not be
// determined.
type Info struct {
	Type         string  `json:"type" yaml:"type" toml:"type"`
	Version      string  `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Edition      string  `json:"edition,omitempty" yaml:"edition,omitempty" toml:"edition,omitempty"`
	Codename     string  `json:"codename,omitempty" yaml:"codename,omitempty" toml:"codename,omitempty"`
	Bitness      Bitness `json:"bitness" yaml:"bitness" toml:"bitness"`
	Architecture string  `json:"architecture,omitempty" yaml:"architecture,omitempty" toml:"architecture,omitempty"`
}

// Get queries the current operating system. It never fails; anything that
// cannot be detected is left empty.
func Get() Info {
	info := detect()
	if info.Type == "" {
		info.Type = "Unknown"
	}
	return info.Normalize()
}

// Normalize returns a copy whose Bitness is one of the declared constants.
// Values that render as unknown, including the empty string, become
// BitnessUnknown so that == agrees with String.
func (i Info) Normalize() Info {
	i.Bitness = Bitness(i.Bitness.String())
	return i
}

// String renders the descriptor as "Type [Version] [(Edition)] [(Codename)] [Bitness]",
// e.g. "Ubuntu 22.04 (jammy) [64-bit]".
func (i Info) String() string {
	var b strings.Builder
	if i.Type == "" {
		b.WriteString("Unknown")
	} else {
		b.WriteString(i.Type)
	}
	if i.Version != "" {
		b.WriteString(" " + i.Version)
	}
	if i.Edition != "" {
		b.WriteString(" (" + i.Edition + ")")
	}
	if i.Codename != "" {
		b.WriteString(" (" + i.Codename + ")")
	}
	b.WriteString(" [" + i.Bitness.String() + "]")
	return b.String()
}

func bitnessFromMachine(machine string) Bitness {
	m := strings.ToLower(strings.TrimSpace(machine))
	switch {
	case m == "":
		return BitnessUnknown
	case strings.Contains(m, "64"), m == "s390x":
		return Bitness64
	case m == "386", m == "i386", m == "i486", m == "i586", m == "i686", m == "x86",
		strings.HasPrefix(m, "arm"), strings.HasPrefix(m, "mips"), m == "ppc", m == "s390":
		return Bitness32
	default:
		return BitnessUnknown
	}
}
