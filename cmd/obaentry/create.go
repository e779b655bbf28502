package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/ldif"
)

const objectClassAttribute = "objectClass"

type createOptions struct {
	classes []string
	dry     bool
	prepare func(*entry.Entry) error
	opts    []entry.Option
}

func create(cfg *CreateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Create.Parse(cc, args)
	if err != nil {
		cfg.Create.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: create requires a dn", cli.ErrUsage)
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

	return createEntry(ctx, cc.Out, s.dir, args[0], assigns, createOptions{
		classes: splitList(cfg.Classes),
		dry:     cfg.Dry,
		prepare: s.prepare,
		opts:    s.entryOptions(),
	})
}

func createEntry(ctx context.Context, w io.Writer, t entry.Transport, dn string, assigns []assignment, co createOptions) error {
	opts := append([]entry.Option{entry.WithDN(dn)}, co.opts...)
	e := entry.New(t, opts...)

	if co.prepare != nil {
		if err := co.prepare(e); err != nil {
			return err
		}
	}
	if len(co.classes) > 0 {
		if err := e.RequireObjectClasses(co.classes...); err != nil {
			return err
		}
		e.SetValues(objectClassAttribute, co.classes...)
	}
	applyAssignments(e, assigns)

	if co.dry {
		if err := e.ValidateRequired(); err != nil {
			return err
		}
		return ldif.Format(w, dn, e.Current().Prune())
	}

	if err := e.Save(ctx); err != nil {
		return fmt.Errorf("error creating %s: %w", dn, err)
	}
	fmt.Fprintf(w, "%s: created\n", dn)
	return nil
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
