package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/obaentry/internal/config"
	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/logging"
	"github.com/KilimcininKorOglu/obaentry/internal/transport/memdir"
)

func stubTerminal(t *testing.T, terminal bool, pw string, err error) {
	t.Helper()
	oldRead, oldTerm := readPassword, stdinIsTerminal
	t.Cleanup(func() {
		readPassword, stdinIsTerminal = oldRead, oldTerm
	})
	readPassword = func(int) ([]byte, error) {
		return []byte(pw), err
	}
	stdinIsTerminal = func() bool { return terminal }
}

func TestPromptPassword(t *testing.T) {
	stubTerminal(t, true, "s3cret\n", nil)
	var out bytes.Buffer

	pw, err := promptPassword(&out, "cn=admin")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, "Password for cn=admin: \n", out.String())
}

func TestPromptPasswordNotTerminal(t *testing.T) {
	stubTerminal(t, false, "", nil)

	_, err := promptPassword(&bytes.Buffer{}, "cn=admin")
	assert.ErrorContains(t, err, "bind password is required")
}

func TestPromptPasswordReadError(t *testing.T) {
	stubTerminal(t, true, "", errors.New("tty gone"))

	_, err := promptPassword(&bytes.Buffer{}, "cn=admin")
	assert.ErrorContains(t, err, "tty gone")
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestConnect(t *testing.T) {
	stubTerminal(t, true, "pw", nil)
	path := writeConfig(t, `
ldap:
  url: ldap://ldap.example.com
  bindDN: cn=admin,dc=example,dc=com
logging:
  level: info
entry:
  required: [cn]
  objectClasses: [person]
`)

	dir := memdir.New(nil)
	var dialed *config.Config
	closed := false
	cfg := &MainConfig{
		ConfigFile: path,
		Verbose:    true,
		dial: func(c *config.Config, _ logging.Logger) (entry.Directory, func(), error) {
			dialed = c
			return dir, func() { closed = true }, nil
		},
	}

	s, err := cfg.connect()
	require.NoError(t, err)
	require.NotNil(t, dialed)
	assert.Equal(t, "pw", dialed.LDAP.BindPassword)
	assert.Equal(t, "debug", dialed.Logging.Level)
	assert.Same(t, dir, s.dir)

	e := entry.New(s.dir, s.entryOptions()...)
	require.NoError(t, s.prepare(e))
	assert.Equal(t, []string{"cn", "objectClass", "sn"}, e.Required())

	s.Close()
	assert.True(t, closed)
}

func TestConnectInvalidConfig(t *testing.T) {
	path := writeConfig(t, "ldap:\n  url: http://example.com\n")
	cfg := &MainConfig{
		ConfigFile: path,
		dial: func(*config.Config, logging.Logger) (entry.Directory, func(), error) {
			t.Fatal("dial must not be called")
			return nil, nil, nil
		},
	}

	_, err := cfg.connect()
	var verr config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ldap.url", verr.Field)
}

func TestColors(t *testing.T) {
	cfg := &MainConfig{}
	assert.Nil(t, cfg.colors(&bytes.Buffer{}))

	cfg.Color = true
	assert.NotNil(t, cfg.colors(&bytes.Buffer{}))
}

func TestWriteVersion(t *testing.T) {
	var out bytes.Buffer
	writeVersion(&out, true)
	assert.Equal(t, version+"\n", out.String())

	out.Reset()
	writeVersion(&out, false)
	assert.Contains(t, out.String(), "obaentry version "+version)
	assert.Contains(t, out.String(), "Go version:")
}
