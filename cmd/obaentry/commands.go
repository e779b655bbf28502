package main

import (
	"github.com/scott-cotton/cli"
)

const description = `obaentry reads and edits single entries on an LDAP server.

Attribute assignments take the form attr=value. Repeating an attribute
builds a multi-valued list, and attr= or attr! removes the attribute.

Examples:
  obaentry show cn=alice,ou=users,dc=example,dc=com
  obaentry set -diff cn=alice,ou=users,dc=example,dc=com mail=alice@example.com description!
  obaentry create -class inetOrgPerson cn=bob,ou=users,dc=example,dc=com cn=bob sn=Jones
  obaentry delete cn=bob,ou=users,dc=example,dc=com`

func MainCommand() *cli.Command {
	cfg := &MainConfig{dial: dialLDAP}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "obaentry").
		WithSynopsis("obaentry [opts] command [opts]").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return obaentryMain(cfg, cc, args)
		}).
		WithSubs(
			ShowCommand(cfg),
			SetCommand(cfg),
			CreateCommand(cfg),
			DeleteCommand(cfg),
			VersionCommand(cfg))
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("show").
		WithAliases("get").
		WithSynopsis("show <dn>").
		WithDescription("print an entry as LDIF").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("modify").
		WithOpts(opts...).
		WithSynopsis("set [-dry] [-diff] <dn> attr=value...").
		WithDescription("change attributes of an existing entry").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func CreateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CreateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("create").
		WithAliases("add").
		WithOpts(opts...).
		WithSynopsis("create [-class name[,name]] [-dry] <dn> attr=value...").
		WithDescription("add a new entry").
		WithRun(func(cc *cli.Context, args []string) error {
			return create(cfg, cc, args)
		})
	cfg.Create = cmd
	return cmd
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("delete").
		WithAliases("rm").
		WithSynopsis("delete <dn>").
		WithDescription("remove an entry").
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
	cfg.Delete = cmd
	return cmd
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("version").
		WithOpts(opts...).
		WithSynopsis("version [-short]").
		WithDescription("show version information").
		WithRun(func(cc *cli.Context, args []string) error {
			return showVersion(cfg, cc, args)
		})
	cfg.Version = cmd
	return cmd
}
