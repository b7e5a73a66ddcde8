package buildinfo

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/launchbynttdata/launch-build-info/osinfo"
)

// Record is the structured interchange form of Info. Unlike Info it holds
// only strings, so it is comparable and can serve as a map key when hashing
// or deduplicating snapshots. Two records produced by Info.Record are equal
// exactly when the Info values are Equal.
type Record struct {
	PackageVersion  string      `json:"package_version" yaml:"package_version" toml:"package_version"`
	Revision        string      `json:"revision" yaml:"revision" toml:"revision"`
	CompilerVersion string      `json:"compiler_version" yaml:"compiler_version" toml:"compiler_version"`
	Target          string      `json:"target" yaml:"target" toml:"target"`
	Profile         string      `json:"profile" yaml:"profile" toml:"profile"`
	OS              osinfo.Info `json:"os" yaml:"os" toml:"os"`
}

// Record converts the Info to its interchange form.
func (i Info) Record() Record {
	return Record{
		PackageVersion:  i.PackageVersion.String(),
		Revision:        i.Revision,
		CompilerVersion: i.CompilerVersion.String(),
		Target:          i.Target,
		Profile:         i.Profile,
		OS:              i.OS,
	}
}

// FromRecord validates a decoded record. The OS descriptor is taken from the
// record rather than queried.
func FromRecord(rec Record) (Info, error) {
	return newInfo(RawInfo{
		PackageVersion:  rec.PackageVersion,
		Revision:        rec.Revision,
		CompilerVersion: rec.CompilerVersion,
		Target:          rec.Target,
		Profile:         rec.Profile,
	}, rec.OS)
}

// MarshalJSON implements json.Marshaler.
func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Info) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	info, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*i = info
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i Info) MarshalYAML() (interface{}, error) {
	return i.Record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Info) UnmarshalYAML(value *yaml.Node) error {
	var rec Record
	if err := value.Decode(&rec); err != nil {
		return err
	}
	info, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*i = info
	return nil
}
