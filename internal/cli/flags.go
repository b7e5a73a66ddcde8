package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/launchbynttdata/launch-build-info/internal/config"
)

// option names a command-line flag and the LBI_* variable that overrides it.
type option struct {
	name  string
	short string
	env   string
	usage string
}

func (o option) help() string {
	if o.env == "" {
		return o.usage
	}
	return fmt.Sprintf("%s [$%s]", o.usage, o.env)
}

type stringOption struct {
	option
	fs    *pflag.FlagSet
	def   string
	value string
}

func addString(fs *pflag.FlagSet, o option, def string) *stringOption {
	f := &stringOption{option: o, fs: fs, def: def}
	fs.StringVarP(&f.value, o.name, o.short, def, o.help())
	return f
}

// resolve applies env > flag > default.
func (f *stringOption) resolve(r config.Resolver) string {
	return r.String(f.name, f.env, strings.TrimSpace(f.value), f.fs.Changed(f.name), f.def)
}

type boolOption struct {
	option
	fs    *pflag.FlagSet
	def   bool
	value bool
}

func addBool(fs *pflag.FlagSet, o option, def bool) *boolOption {
	f := &boolOption{option: o, fs: fs, def: def}
	fs.BoolVarP(&f.value, o.name, o.short, def, o.help())
	return f
}

func (f *boolOption) resolve(r config.Resolver) (bool, error) {
	return r.Bool(f.name, f.env, f.value, f.fs.Changed(f.name), f.def)
}
