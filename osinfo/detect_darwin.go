//go:build darwin

package osinfo

import "golang.org/x/sys/unix"

func detect() Info {
	info := Info{Type: "Mac OS"}
	if version, err := unix.Sysctl("kern.osproductversion"); err == nil {
		info.Version = version
	}

	var u unix.Utsname
	if err := unix.Uname(&u); err == nil {
		info.Architecture = unix.ByteSliceToString(u.Machine[:])
		info.Bitness = bitnessFromMachine(info.Architecture)
	}
	return info
}
