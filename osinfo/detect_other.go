//go:build !linux && !darwin && !windows

package osinfo

import "runtime"

func detect() Info {
	return Info{
		Type:         runtime.GOOS,
		Architecture: runtime.GOARCH,
		Bitness:      bitnessFromMachine(runtime.GOARCH),
	}
}
