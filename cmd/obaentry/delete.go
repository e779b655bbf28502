package main

import (
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
)

func remove(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: delete requires exactly 1 dn, got %d args", cli.ErrUsage, len(args))
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

	return deleteEntry(ctx, cc.Out, s.dir, args[0])
}

func deleteEntry(ctx context.Context, w io.Writer, dir entry.Directory, dn string) error {
	e, err := entry.Load(ctx, dir, dn)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", dn, err)
	}
	if err := e.Delete(ctx); err != nil {
		return fmt.Errorf("error deleting %s: %w", dn, err)
	}
	fmt.Fprintf(w, "%s: deleted\n", dn)
	return nil
}
