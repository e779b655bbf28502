package main

import (
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/ldif"
)

type setOptions struct {
	dry     bool
	diff    bool
	colors  *ldif.Colors
	prepare func(*entry.Entry) error
	opts    []entry.Option
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a dn and at least 1 assignment", cli.ErrUsage)
	}
	if err := checkDN(args[0]); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	assigns, err := parseAssignments(args[1:])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	s, err := cfg.connect()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := hashPasswords(assigns, s.cfg.Entry.Password); err != nil {
		return err
	}

	ctx, cancel := cfg.context()
	defer cancel()

	return setEntry(ctx, cc.Out, s.dir, args[0], assigns, setOptions{
		dry:     cfg.Dry,
		diff:    cfg.Diff,
		colors:  cfg.colors(cc.Out),
		prepare: s.prepare,
		opts:    s.entryOptions(),
	})
}

func setEntry(ctx context.Context, w io.Writer, dir entry.Directory, dn string, assigns []assignment, so setOptions) error {
	e, err := entry.Load(ctx, dir, dn, so.opts...)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", dn, err)
	}
	if so.prepare != nil {
		if err := so.prepare(e); err != nil {
			return err
		}
	}

	before := ldif.String(e.DN(), e.Current())
	applyAssignments(e, assigns)

	mods := e.Modifications()
	if len(mods) == 0 {
		fmt.Fprintf(w, "%s: no changes\n", e.DN())
		return nil
	}

	switch {
	case so.diff:
		after := ldif.String(e.DN(), e.Current().Prune())
		if _, err := io.WriteString(w, ldif.Diff(before, after, so.colors)); err != nil {
			return err
		}
	case so.dry:
		if err := ldif.FormatChanges(w, e.DN(), mods); err != nil {
			return err
		}
	}
	if so.dry {
		return nil
	}

	if err := e.Save(ctx); err != nil {
		return fmt.Errorf("error saving %s: %w", e.DN(), err)
	}
	fmt.Fprintf(w, "%s: %d change(s) saved\n", e.DN(), len(mods))
	return nil
}
