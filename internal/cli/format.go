package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/launchbynttdata/launch-build-info/buildinfo"
	"github.com/launchbynttdata/launch-build-info/buildmetrics"
)

const (
	formatAuto       = "auto"
	formatText       = "text"
	formatJSON       = "json"
	formatYAML       = "yaml"
	formatTOML       = "toml"
	formatPrometheus = "prometheus"

	stdinInput       = "-"
	metricsNamespace = "lbi"
)

var errOutOfDate = errors.New("generated build metadata is out of date")

func writeInfo(w io.Writer, info buildinfo.Info, format string) error {
	var err error
	switch strings.ToLower(format) {
	case formatText:
		_, err = fmt.Fprintln(w, info.String())
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(info)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(info); err == nil {
			err = enc.Close()
		}
	case formatTOML:
		err = toml.NewEncoder(w).Encode(info.Record())
	case formatPrometheus:
		err = writeMetrics(w, info)
	default:
		return fmt.Errorf("invalid format %q", format)
	}
	if err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	return nil
}

func writeMetrics(w io.Writer, info buildinfo.Info) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(buildmetrics.NewCollector(metricsNamespace, info)); err != nil {
		return err
	}
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func readInfo(stdin io.Reader, input, format string) (buildinfo.Info, error) {
	var (
		data []byte
		err  error
	)
	if input == "" || input == stdinInput {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input) // #nosec G304 -- path supplied by the operator
	}
	if err != nil {
		return buildinfo.Info{}, fmt.Errorf("reading record: %w", err)
	}

	format = strings.ToLower(format)
	if format == formatAuto || format == "" {
		format = detectFormat(input, data)
	}

	var info buildinfo.Info
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &info)
	case formatYAML:
		err = yaml.Unmarshal(data, &info)
	case formatTOML:
		var rec buildinfo.Record
		if _, err = toml.Decode(string(data), &rec); err == nil {
			info, err = buildinfo.FromRecord(rec)
		}
	default:
		return buildinfo.Info{}, fmt.Errorf("invalid format %q", format)
	}
	if err != nil {
		return buildinfo.Info{}, fmt.Errorf("decoding %s record: %w", format, err)
	}
	return info, nil
}

func detectFormat(input string, data []byte) string {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return formatJSON
	}
	if looksLikeTOML(data) {
		return formatTOML
	}
	return formatYAML
}

// looksLikeTOML inspects the first significant line: a table header or a
// "key = value" pair is TOML, anything else is left to YAML.
func looksLikeTOML(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			return strings.HasSuffix(line, "]") && !strings.Contains(line, ",")
		}
		key, _, ok := strings.Cut(line, "=")
		return ok && key != "" && !strings.ContainsAny(key, ":{\"'")
	}
	return false
}

func checkGenerated(path string, src []byte) error {
	existing, err := os.ReadFile(path) // #nosec G304 -- path supplied by the operator
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !bytes.Equal(existing, src) {
		return fmt.Errorf("%w: %s", errOutOfDate, path)
	}
	return nil
}
