//go:build windows

package osinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

func detect() Info {
	v := windows.RtlGetVersion()
	info := Info{
		Type:         "Windows",
		Architecture: runtime.GOARCH,
		Bitness:      bitnessFromMachine(runtime.GOARCH),
	}
	if v != nil {
		info.Version = fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
	}
	return info
}
