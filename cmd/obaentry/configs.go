package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"golang.org/x/term"

	"github.com/KilimcininKorOglu/obaentry/internal/config"
	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/ldif"
	"github.com/KilimcininKorOglu/obaentry/internal/logging"
	"github.com/KilimcininKorOglu/obaentry/internal/transport/ldapconn"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// stdinIsTerminal is a test seam for the terminal check on stdin.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

type dialFunc func(cfg *config.Config, log logging.Logger) (entry.Directory, func(), error)

type MainConfig struct {
	ConfigFile string `cli:"name=config aliases=c desc='path to the YAML configuration file'"`
	Color      bool   `cli:"name=color desc='color output even when not writing to a terminal'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='log at debug level'"`

	Main *cli.Command

	dial dialFunc
}

type ShowConfig struct {
	*MainConfig

	Show *cli.Command
}

type SetConfig struct {
	*MainConfig

	Dry  bool `cli:"name=dry aliases=n desc='print the changes without saving them'"`
	Diff bool `cli:"name=diff aliases=d desc='print a line diff of the entry instead of LDIF changes'"`

	Set *cli.Command
}

type CreateConfig struct {
	*MainConfig

	Classes string `cli:"name=class desc='comma separated object classes; their required attributes are enforced'"`
	Dry     bool   `cli:"name=dry aliases=n desc='print the entry without saving it'"`

	Create *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Short bool `cli:"name=short desc='show only the version number'"`

	Version *cli.Command
}

// session is an open connection with the configuration it was made from.
type session struct {
	cfg   *config.Config
	log   logging.Logger
	dir   entry.Directory
	close func()
}

func (s *session) Close() {
	if s.close != nil {
		s.close()
	}
}

// entryOptions returns the options every loaded or created entry gets.
func (s *session) entryOptions() []entry.Option {
	return []entry.Option{
		entry.WithLogger(s.log),
		entry.WithRequired(s.cfg.Entry.Required...),
	}
}

// prepare applies the configured object classes to e.
func (s *session) prepare(e *entry.Entry) error {
	if len(s.cfg.Entry.ObjectClasses) == 0 {
		return nil
	}
	return e.RequireObjectClasses(s.cfg.Entry.ObjectClasses...)
}

func (cfg *MainConfig) loadConfig() (*config.Config, error) {
	c, err := config.LoadConfig(cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if errs := config.ValidateConfig(c); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	if cfg.Verbose {
		c.Logging.Level = "debug"
	}
	return c, nil
}

func (cfg *MainConfig) connect() (*session, error) {
	c, err := cfg.loadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Output: c.Logging.Output,
	})

	if c.LDAP.BindDN != "" && c.LDAP.BindPassword == "" {
		pw, err := promptPassword(os.Stderr, c.LDAP.BindDN)
		if err != nil {
			return nil, err
		}
		c.LDAP.BindPassword = pw
	}

	dir, closeFn, err := cfg.dial(c, log)
	if err != nil {
		return nil, err
	}
	return &session{cfg: c, log: log, dir: dir, close: closeFn}, nil
}

// colors returns diff colors when w is a terminal or -color is given.
func (cfg *MainConfig) colors(w io.Writer) *ldif.Colors {
	if cfg.Color {
		color.NoColor = false
		return ldif.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return ldif.NewColors()
	}
	return nil
}

// context returns a context canceled on interrupt.
func (cfg *MainConfig) context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func dialLDAP(cfg *config.Config, log logging.Logger) (entry.Directory, func(), error) {
	t, err := ldapconn.Dial(cfg.LDAP, log)
	if err != nil {
		return nil, nil, err
	}
	return t, t.Close, nil
}

func promptPassword(w io.Writer, bindDN string) (string, error) {
	if !stdinIsTerminal() {
		return "", fmt.Errorf("a bind password is required for %s: set ldap.bindPassword or OBAENTRY_LDAP_BIND_PASSWORD", bindDN)
	}
	fmt.Fprintf(w, "Password for %s: ", bindDN)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(string(pw), "\r\n"), nil
}
