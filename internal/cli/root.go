package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/launchbynttdata/launch-build-info/buildinfo"
	"github.com/launchbynttdata/launch-build-info/internal/command"
	"github.com/launchbynttdata/launch-build-info/internal/config"
	"github.com/launchbynttdata/launch-build-info/internal/generate"
	"github.com/launchbynttdata/launch-build-info/internal/logging"
	"github.com/launchbynttdata/launch-build-info/internal/version"
)

const (
	envLogLevel = "LBI_LOG_LEVEL"
	envOutput   = "LBI_OUTPUT"
	envDir      = "LBI_DIR"
	envCheck    = "LBI_CHECK"
	envFormat   = "LBI_FORMAT"
	envSource   = "LBI_SOURCE"
	envInput    = "LBI_INPUT"
)

const (
	sourceGenerated = "generated"
	sourceModule    = "module"
)

// Execute runs the CLI root command with the provided context.
func Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return newRootCommand(dependencies{}).ExecuteContext(ctx)
}

// dependencies lets tests replace the process environment and external commands.
type dependencies struct {
	runner command.Runner
	lookup config.LookupFunc
}

type rootFlagSet struct {
	logLevel *stringOption
}

type runtimeConfig struct {
	resolver config.Resolver
	logger   *zap.Logger
}

func newRootCommand(deps dependencies) *cobra.Command {
	if deps.runner == nil {
		deps.runner = command.ExecRunner{}
	}

	cmd := &cobra.Command{
		Use:           "lbi",
		Short:         "Launch Build Info: capture build metadata at build time, render it at run time",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version.Raw().PackageVersion
	cmd.SetVersionTemplate("lbi {{.Version}}\n")

	flags := bindRootFlags(cmd)
	cmd.AddCommand(
		newGenerateCommand(flags, deps),
		newVersionCommand(flags, deps),
		newRenderCommand(flags, deps),
	)

	return cmd
}

func bindRootFlags(cmd *cobra.Command) *rootFlagSet {
	fs := cmd.PersistentFlags()
	return &rootFlagSet{
		logLevel: addString(fs, option{name: "log-level", env: envLogLevel, usage: "Log verbosity (quiet, terse or verbose)"}, logging.LevelTerse),
	}
}

func newGenerateCommand(rootFlags *rootFlagSet, deps dependencies) *cobra.Command {
	var (
		profileFlag *stringOption
		versionFlag *stringOption
		targetFlag  *stringOption
		packageFlag *stringOption
		outputFlag  *stringOption
		dirFlag     *stringOption
		checkFlag   *boolOption
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Capture build metadata into a generated Go file (run from go:generate)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtime, cleanup, err := buildRuntime(rootFlags, deps)
			if err != nil {
				return err
			}
			defer cleanup()

			target := targetFlag.resolve(runtime.resolver)
			if target == "" {
				if target, err = generate.ResolveTarget(runtime.resolver); err != nil {
					return err
				}
			}

			dir := dirFlag.resolve(runtime.resolver)
			inputs := generate.Inputs{
				PackageVersion: versionFlag.resolve(runtime.resolver),
				Target:         target,
				Profile:        profileFlag.resolve(runtime.resolver),
				Dir:            dir,
			}

			capturer := generate.NewCapturer(deps.runner, runtime.logger)
			consts, err := capturer.Capture(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			src, err := generate.Render(packageFlag.resolve(runtime.resolver), consts)
			if err != nil {
				return err
			}

			path := outputFlag.resolve(runtime.resolver)
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}

			check, err := checkFlag.resolve(runtime.resolver)
			if err != nil {
				return err
			}
			if check {
				return checkGenerated(path, src)
			}

			changed, err := generate.WriteIfChanged(path, src)
			if err != nil {
				return err
			}

			log := runtime.logger.With(
				zap.String("path", path),
				zap.String("packageVersion", consts.PackageVersion),
				zap.String("revision", consts.Revision),
				zap.String("compilerVersion", consts.CompilerVersion),
				zap.String("target", consts.Target),
				zap.String("profile", consts.Profile),
			)
			if changed {
				log.Info("build metadata written")
			} else {
				log.Debug("build metadata unchanged")
			}
			return nil
		},
	}

	fs := cmd.Flags()
	profileFlag = addString(fs, option{name: "profile", short: "p", env: generate.EnvProfile, usage: "Build profile recorded in the binary (required)"}, "")
	versionFlag = addString(fs, option{name: "package-version", env: generate.EnvPackageVersion, usage: "Semantic version of the consumer package"}, buildinfo.DevVersion)
	targetFlag = addString(fs, option{name: "target", env: generate.EnvTarget, usage: "Target platform (defaults to $GOOS/$GOARCH)"}, "")
	packageFlag = addString(fs, option{name: "package", env: generate.EnvGOPACKAGE, usage: "Package name of the generated file (defaults to $GOPACKAGE)"}, "")
	outputFlag = addString(fs, option{name: "output", short: "o", env: envOutput, usage: "Generated file name, relative to --dir"}, generate.DefaultOutput)
	dirFlag = addString(fs, option{name: "dir", env: envDir, usage: "Package directory, also used for the revision lookup"}, ".")
	checkFlag = addBool(fs, option{name: "check", env: envCheck, usage: "Fail instead of writing when the generated file is out of date"}, false)

	return cmd
}

func newVersionCommand(rootFlags *rootFlagSet, deps dependencies) *cobra.Command {
	var formatFlag *stringOption
	var sourceFlag *stringOption

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build metadata of this binary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtime, cleanup, err := buildRuntime(rootFlags, deps)
			if err != nil {
				return err
			}
			defer cleanup()

			format := formatFlag.resolve(runtime.resolver)
			source := sourceFlag.resolve(runtime.resolver)

			var raw buildinfo.RawInfo
			switch source {
			case sourceGenerated:
				if format == formatText {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), version.Summary()); err != nil {
						return fmt.Errorf("writing version info: %w", err)
					}
					return nil
				}
				raw = version.Raw()
			case sourceModule:
				raw = buildinfo.FromModule()
			default:
				return fmt.Errorf("invalid source %q (want %s or %s)", source, sourceGenerated, sourceModule)
			}

			info, err := buildinfo.New(raw)
			if err != nil {
				return err
			}
			runtime.logger.Debug("build metadata loaded", zap.String("source", source), zap.String("os", info.OS.String()))
			return writeInfo(cmd.OutOrStdout(), info, format)
		},
	}

	fs := cmd.Flags()
	formatFlag = addString(fs, option{name: "format", short: "f", env: envFormat, usage: "Output format (text, json, yaml, toml, prometheus)"}, formatText)
	sourceFlag = addString(fs, option{name: "source", env: envSource, usage: "Metadata source (generated or module)"}, sourceGenerated)

	return cmd
}

func newRenderCommand(rootFlags *rootFlagSet, deps dependencies) *cobra.Command {
	var inputFlag *stringOption
	var formatFlag *stringOption

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a structured build info record as the canonical single line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtime, cleanup, err := buildRuntime(rootFlags, deps)
			if err != nil {
				return err
			}
			defer cleanup()

			input := inputFlag.resolve(runtime.resolver)
			info, err := readInfo(cmd.InOrStdin(), input, formatFlag.resolve(runtime.resolver))
			if err != nil {
				return err
			}
			runtime.logger.Debug("record decoded", zap.String("input", input))

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), info.String()); err != nil {
				return fmt.Errorf("writing rendered line: %w", err)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	inputFlag = addString(fs, option{name: "input", short: "i", env: envInput, usage: "Record file to read, or - for stdin"}, stdinInput)
	formatFlag = addString(fs, option{name: "format", short: "f", env: envFormat, usage: "Record format (auto, json, yaml, toml)"}, formatAuto)

	return cmd
}

func buildRuntime(flags *rootFlagSet, deps dependencies) (runtimeConfig, func(), error) {
	nopResolver := config.NewResolverWithLookup(zap.NewNop(), deps.lookup)
	logLevel := flags.logLevel.resolve(nopResolver)

	logger, err := logging.New(logLevel)
	if err != nil {
		return runtimeConfig{}, nil, fmt.Errorf("configuring logger: %w", err)
	}

	resolver := config.NewResolverWithLookup(logger, deps.lookup)
	_ = flags.logLevel.resolve(resolver)

	cleanup := func() {
		_ = logger.Sync()
	}

	return runtimeConfig{
		resolver: resolver,
		logger:   logger,
	}, cleanup, nil
}
