package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// FlagSet is a flag.FlagSet whose flags may also be given by a short alias,
// e.g. -t for -tick.
type FlagSet struct {
	*flag.FlagSet
	short map[string]string // long name → short alias
}

func NewFlagSet(name string, out io.Writer) *FlagSet {
	fsa := &FlagSet{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		short:   make(map[string]string),
	}
	fsa.SetOutput(out)
	fsa.FlagSet.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n", name)
		fsa.printUsage(out)
	}
	return fsa
}

func (fsa *FlagSet) alias(name, short string) {
	if short != "" {
		fsa.short[name] = short
	}
}

func (fsa *FlagSet) BoolVar(p *bool, name, short string, value bool, usage string) {
	fsa.FlagSet.BoolVar(p, name, value, usage)
	fsa.alias(name, short)
}

func (fsa *FlagSet) StringVar(p *string, name, short, value, usage string) {
	fsa.FlagSet.StringVar(p, name, value, usage)
	fsa.alias(name, short)
}

func (fsa *FlagSet) Int64Var(p *int64, name, short string, value int64, usage string) {
	fsa.FlagSet.Int64Var(p, name, value, usage)
	fsa.alias(name, short)
}

func (fsa *FlagSet) DurationVar(p *time.Duration, name, short string, value time.Duration, usage string) {
	fsa.FlagSet.DurationVar(p, name, value, usage)
	fsa.alias(name, short)
}

// Parse rewrites short aliases to their long names and parses args.
func (fsa *FlagSet) Parse(args []string) error {
	long := make(map[string]string, len(fsa.short))
	for name, s := range fsa.short {
		long[s] = name
	}
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--" || !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			expanded = append(expanded, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		if full, ok := long[name]; ok {
			arg = "-" + full
			if hasValue {
				arg += "=" + value
			}
		}
		expanded = append(expanded, arg)
	}
	return fsa.FlagSet.Parse(expanded)
}

// IsCustom reports whether the flag was set on the command line.
func (fsa *FlagSet) IsCustom(name string) bool {
	set := false
	fsa.Visit(func(f *flag.Flag) {
		set = set || f.Name == name
	})
	return set
}

func (fsa *FlagSet) printUsage(out io.Writer) {
	fsa.VisitAll(func(f *flag.Flag) {
		head := "    -" + f.Name
		if s, ok := fsa.short[f.Name]; ok {
			head = "  -" + s + ", -" + f.Name
		}
		fmt.Fprintf(out, "%-16s\t%s\n", head, f.Usage)
	})
}
