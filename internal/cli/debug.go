package cli

import (
	"fmt"
	"sort"
	"strings"
)

type DebugCmd struct {
	StorePath StorePathCmd `cmd:"" help:"Print the state store location."`
	DumpKeys  DumpKeysCmd  `cmd:"" help:"Print every stored key and value."`
}

type StorePathCmd struct{}

func (cmd *StorePathCmd) Run(ctx *Context) error {
	_, _ = fmt.Fprintln(ctx.Out, ctx.Store.GetConfigPath())
	return nil
}

type DumpKeysCmd struct {
	Prefix string `help:"Only keys with this prefix."`
}

func (cmd *DumpKeysCmd) Run(ctx *Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return err
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !strings.HasPrefix(k, cmd.Prefix) {
			continue
		}
		v, _, err := ctx.Store.Get(k)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", k, err)
		}
		_, _ = fmt.Fprintf(ctx.Out, "%s=%s\n", k, v)
	}
	return nil
}
