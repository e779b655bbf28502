package main

import (
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/ldif"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires exactly 1 dn, got %d args", cli.ErrUsage, len(args))
	}
	if err := checkDN(args[0]); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	s, err := cfg.connect()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := cfg.context()
	defer cancel()

	return showEntry(ctx, cc.Out, s.dir, args[0])
}

func showEntry(ctx context.Context, w io.Writer, dir entry.Directory, dn string) error {
	e, err := entry.Load(ctx, dir, dn)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", dn, err)
	}
	return ldif.Format(w, e.DN(), e.Current())
}
