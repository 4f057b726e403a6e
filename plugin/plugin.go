// Package plugin assembles one hash command per compiled-in algorithm and
// exposes them to a host.
//
// The per-family command units are generated by internal/tools/hashgen; this
// file only composes them.
package plugin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"xdao.co/hashes/hasher"
	"xdao.co/hashes/value"
)

// Version is reported to hosts during registration.
const Version = "0.4.0"

// Plugin is the set of hash commands compiled into this binary.
type Plugin struct {
	cmds   []hasher.Command
	byName map[string]hasher.Command
}

// New builds the plugin from the generated command list.
func New() (*Plugin, error) {
	return newPlugin(commands())
}

// MustNew is like New but panics on error.
func MustNew() *Plugin {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}

func newPlugin(cmds []hasher.Command) (*Plugin, error) {
	if len(cmds) == 0 {
		return nil, fmt.Errorf("plugin: no hash commands compiled in")
	}
	p := &Plugin{byName: make(map[string]hasher.Command, len(cmds))}
	for _, c := range cmds {
		if _, dup := p.byName[c.Name()]; dup {
			return nil, fmt.Errorf("plugin: duplicate command %q", c.Name())
		}
		p.byName[c.Name()] = c
		p.cmds = append(p.cmds, c)
	}
	sort.Slice(p.cmds, func(i, j int) bool { return p.cmds[i].Name() < p.cmds[j].Name() })
	return p, nil
}

func (p *Plugin) Version() string { return Version }

// Commands returns every command sorted by name.
func (p *Plugin) Commands() []hasher.Command {
	out := make([]hasher.Command, len(p.cmds))
	copy(out, p.cmds)
	return out
}

// Lookup finds a command by its full name ("hash sha256") or by algorithm
// identifier ("sha256").
func (p *Plugin) Lookup(name string) (hasher.Command, bool) {
	name = strings.TrimSpace(name)
	if c, ok := p.byName[name]; ok {
		return c, true
	}
	c, ok := p.byName["hash "+name]
	return c, ok
}

// Run dispatches call to the named command.
func (p *Plugin) Run(ctx context.Context, name string, call hasher.Call) (value.Value, error) {
	c, ok := p.Lookup(name)
	if !ok {
		return value.Value{}, hasher.Errorf(hasher.KindArguments, hasher.RuleUnknownCommand,
			fmt.Sprintf("unknown command %q", name), nil)
	}
	return c.Run(ctx, call)
}
