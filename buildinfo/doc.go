// Package buildinfo exposes build-time metadata to a running program: package
// version, source revision, Go toolchain version, target platform and build
// profile, plus the operating system the process runs on.
//
// Values that only exist while building are frozen into a generated file by
// `lbi generate`, usually from a go:generate directive in the consumer package:
//
//	//go:generate go run github.com/launchbynttdata/launch-build-info generate --profile release
//
// The generated file declares rawBuildInfo, which returns a RawInfo built from
// constants, and buildInfoString, a LazyString accessor:
//
//	info, err := buildinfo.New(rawBuildInfo())
//	if err != nil {
//		return err
//	}
//	fmt.Println(info)
//
//	// or, computed once per process:
//	fmt.Println(buildInfoString())
package buildinfo
