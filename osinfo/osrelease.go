package osinfo

import (
	"bufio"
	"io"
	"strings"
)

// parseOSRelease reads the KEY=value pairs of an os-release(5) file.
func parseOSRelease(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
			if first == '\'' {
				return value
			}
		}
	}
	if !strings.Contains(value, `\`) {
		return value
	}
	var b strings.Builder
	escaped := false
	for _, r := range value {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fromOSRelease maps os-release fields onto an Info.
func fromOSRelease(values map[string]string) Info {
	info := Info{
		Type:     values["NAME"],
		Version:  values["VERSION_ID"],
		Edition:  values["VARIANT"],
		Codename: values["VERSION_CODENAME"],
	}
	if info.Type == "" {
		info.Type = values["ID"]
	}
	return info
}
