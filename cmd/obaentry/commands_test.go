package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/obaentry/internal/entry"
	"github.com/KilimcininKorOglu/obaentry/internal/transport/memdir"
)

const aliceDN = "cn=alice,ou=users,dc=example,dc=com"

func newDirectory(t *testing.T) *memdir.Directory {
	t.Helper()
	dir := memdir.New(nil)
	err := dir.Add(context.Background(), aliceDN, map[string][]string{
		"objectClass": {"top", "person"},
		"cn":          {"alice"},
		"sn":          {"Smith"},
		"description": {"old"},
	})
	require.NoError(t, err)
	return dir
}

func mustAssign(t *testing.T, args ...string) []assignment {
	t.Helper()
	assigns, err := parseAssignments(args)
	require.NoError(t, err)
	return assigns
}

func TestShowEntry(t *testing.T) {
	dir := newDirectory(t)
	var out bytes.Buffer

	require.NoError(t, showEntry(context.Background(), &out, dir, aliceDN))

	assert.Equal(t, `dn: cn=alice,ou=users,dc=example,dc=com
cn: alice
description: old
objectclass: top
objectclass: person
sn: Smith
`, out.String())
}

func TestShowEntryNotFound(t *testing.T) {
	dir := newDirectory(t)
	err := showEntry(context.Background(), &bytes.Buffer{}, dir, "cn=nobody,dc=example,dc=com")
	assert.ErrorIs(t, err, memdir.ErrEntryNotFound)
}

func TestSetEntry(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)
	var out bytes.Buffer

	err := setEntry(ctx, &out, dir, aliceDN, mustAssign(t, "description!", "sn=Jones", "mail=a@example.com"), setOptions{})
	require.NoError(t, err)
	assert.Equal(t, aliceDN+": 3 change(s) saved\n", out.String())

	got, err := dir.Read(ctx, aliceDN)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"objectclass": {"top", "person"},
		"cn":          {"alice"},
		"sn":          {"Jones"},
		"mail":        {"a@example.com"},
	}, got)
}

func TestSetEntryNoChanges(t *testing.T) {
	dir := newDirectory(t)
	var out bytes.Buffer

	err := setEntry(context.Background(), &out, dir, aliceDN, mustAssign(t, "sn=Smith"), setOptions{})
	require.NoError(t, err)
	assert.Equal(t, aliceDN+": no changes\n", out.String())
}

func TestSetEntryDryRun(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)
	var out bytes.Buffer

	err := setEntry(ctx, &out, dir, aliceDN, mustAssign(t, "description!", "sn=Jones"), setOptions{dry: true})
	require.NoError(t, err)
	assert.Equal(t, `dn: cn=alice,ou=users,dc=example,dc=com
changetype: modify
delete: description
-
replace: sn
sn: Jones
-
`, out.String())

	got, err := dir.Read(ctx, aliceDN)
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith"}, got["sn"], "dry run must not save")
}

func TestSetEntryDiff(t *testing.T) {
	dir := newDirectory(t)
	var out bytes.Buffer

	err := setEntry(context.Background(), &out, dir, aliceDN, mustAssign(t, "description!"), setOptions{dry: true, diff: true})
	require.NoError(t, err)
	assert.Equal(t, `  dn: cn=alice,ou=users,dc=example,dc=com
  cn: alice
- description: old
  objectclass: top
  objectclass: person
  sn: Smith
`, out.String())
}

func TestSetEntryRequired(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)

	err := setEntry(ctx, &bytes.Buffer{}, dir, aliceDN, mustAssign(t, "sn!"), setOptions{
		opts: []entry.Option{entry.WithRequired("sn")},
	})
	var verr *entry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sn", verr.Field)

	got, err := dir.Read(ctx, aliceDN)
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith"}, got["sn"])
}

func TestSetEntryObjectClassRequirements(t *testing.T) {
	dir := newDirectory(t)
	prepare := func(e *entry.Entry) error {
		return e.RequireObjectClasses("person")
	}

	err := setEntry(context.Background(), &bytes.Buffer{}, dir, aliceDN, mustAssign(t, "cn="), setOptions{prepare: prepare})
	assert.ErrorIs(t, err, entry.ErrMissingField)
}

func TestCreateEntry(t *testing.T) {
	ctx := context.Background()
	dir := memdir.New(nil)
	dn := "cn=bob,ou=users,dc=example,dc=com"
	var out bytes.Buffer

	err := createEntry(ctx, &out, dir, dn, mustAssign(t, "cn=bob", "sn=Jones", "mail=b1@example.com", "mail=b2@example.com"), createOptions{
		classes: []string{"inetOrgPerson"},
	})
	require.NoError(t, err)
	assert.Equal(t, dn+": created\n", out.String())

	got, err := dir.Read(ctx, dn)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"objectclass": {"inetOrgPerson"},
		"cn":          {"bob"},
		"sn":          {"Jones"},
		"mail":        {"b1@example.com", "b2@example.com"},
	}, got)
}

func TestCreateEntryMissingRequired(t *testing.T) {
	dir := memdir.New(nil)

	err := createEntry(context.Background(), &bytes.Buffer{}, dir, "cn=bob,dc=example,dc=com", mustAssign(t, "cn=bob"), createOptions{
		classes: []string{"person"},
	})
	var verr *entry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sn", verr.Field)
	assert.Zero(t, dir.Len())
}

func TestCreateEntryDryRun(t *testing.T) {
	dir := memdir.New(nil)
	var out bytes.Buffer

	err := createEntry(context.Background(), &out, dir, "cn=bob,dc=example,dc=com", mustAssign(t, "cn=bob", "description!"), createOptions{dry: true})
	require.NoError(t, err)
	assert.Equal(t, "dn: cn=bob,dc=example,dc=com\ncn: bob\n", out.String())
	assert.Zero(t, dir.Len())
}

func TestCreateEntryExists(t *testing.T) {
	dir := newDirectory(t)

	err := createEntry(context.Background(), &bytes.Buffer{}, dir, aliceDN, mustAssign(t, "cn=alice"), createOptions{})
	assert.ErrorIs(t, err, memdir.ErrEntryExists)
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)
	var out bytes.Buffer

	require.NoError(t, deleteEntry(ctx, &out, dir, aliceDN))
	assert.Equal(t, aliceDN+": deleted\n", out.String())
	assert.Zero(t, dir.Len())

	assert.ErrorIs(t, deleteEntry(ctx, &out, dir, aliceDN), memdir.ErrEntryNotFound)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"top", "person"}, splitList(" top, ,person,"))
	assert.Nil(t, splitList(""))
}
