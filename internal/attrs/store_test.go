package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueNormalization(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want []string
	}{
		{"null", Null(), nil},
		{"scalar", String("a"), []string{"a"}},
		{"list", List("a", "b"), []string{"a", "b"}},
		{"empty list", List(), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Values())
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null null", Null(), Null(), true},
		{"null scalar", Null(), String(""), false},
		{"null empty list", Null(), List(), false},
		{"scalar same", String("x"), String("x"), true},
		{"scalar differs", String("x"), String("y"), false},
		{"scalar vs one-element list", String("x"), List("x"), true},
		{"list order matters", List("a", "b"), List("b", "a"), false},
		{"list length differs", List("a"), List("a", "b"), false},
		{"empty lists", List(), List(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValueIndex(t *testing.T) {
	v := List("a", "b")
	got, ok := v.Index(1)
	require.True(t, ok)
	assert.Equal(t, "b", got)

	_, ok = v.Index(2)
	assert.False(t, ok)
	_, ok = v.Index(-1)
	assert.False(t, ok)

	got, ok = String("only").Index(0)
	require.True(t, ok)
	assert.Equal(t, "only", got)

	_, ok = Null().Index(0)
	assert.False(t, ok)
}

func TestStoreGetAbsent(t *testing.T) {
	s := New()
	assert.True(t, s.Get("missing").IsNull())
	_, ok := s.Lookup("missing")
	assert.False(t, ok)
	_, ok = s.GetIndex("missing", 0)
	assert.False(t, ok)
	assert.False(t, s.Has("missing"))
	assert.False(t, s.HasIndex("missing", 0))
}

func TestStoreSetAndGet(t *testing.T) {
	s := New().
		SetString("cn", "Alice").
		SetValues("mail", "a@example.com", "alice@example.com")

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, "Alice", s.Get("cn").First())
	assert.True(t, s.Get("cn").IsScalar())

	got, ok := s.GetIndex("mail", 1)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", got)
	assert.True(t, s.HasIndex("mail", 0))
	assert.False(t, s.HasIndex("mail", 2))
	assert.False(t, s.HasIndex("cn", 1))
}

func TestStoreCaseInsensitiveKeys(t *testing.T) {
	s := New().SetString("sAMAccountName", "alice")
	s.SetString("samaccountname", "bob")

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []string{"sAMAccountName"}, s.Keys())
	assert.Equal(t, "bob", s.Get("SAMACCOUNTNAME").First())
}

func TestStoreInsertionOrder(t *testing.T) {
	s := New().
		SetString("b", "1").
		SetString("a", "2").
		SetString("c", "3")
	s.SetString("b", "changed")

	assert.Equal(t, []string{"b", "a", "c"}, s.Keys())

	var seen []string
	s.Range(func(key string, _ Value) bool {
		seen = append(seen, key)
		return key != "a"
	})
	assert.Equal(t, []string{"b", "a"}, seen)
}

func TestStoreClearKeepsKey(t *testing.T) {
	s := New().SetString("cn", "x").Clear("cn")

	assert.True(t, s.Has("cn"))
	assert.True(t, s.Get("cn").IsNull())
	assert.Empty(t, s.Map())
}

func TestStoreUnset(t *testing.T) {
	s := New().
		SetString("a", "1").
		SetString("b", "2").
		SetString("c", "3")

	s.Unset("B").Unset("missing")

	assert.Equal(t, []string{"a", "c"}, s.Keys())
	assert.False(t, s.Has("b"))

	s.SetString("b", "again")
	assert.Equal(t, []string{"a", "c", "b"}, s.Keys())
	assert.Equal(t, "3", s.Get("c").First())
}

func TestStoreReplaceAll(t *testing.T) {
	s := New().SetString("old", "x")
	s.ReplaceAll(map[string][]string{
		"samaccountname": {"Account Name"},
		"cn":             {"Common Name"},
	})

	assert.Equal(t, []string{"cn", "samaccountname"}, s.Keys())
	assert.False(t, s.Has("old"))
	assert.True(t, s.Get("cn").IsList())
	assert.Equal(t, []string{"Common Name"}, s.Get("cn").Values())
}

func TestStoreAllIsACopy(t *testing.T) {
	s := New().SetValues("mail", "a@example.com")

	all := s.All()
	all["mail"] = String("other")
	delete(all, "mail")

	assert.Equal(t, []string{"a@example.com"}, s.Get("mail").Values())

	m := s.Map()
	m["mail"][0] = "mutated"
	assert.Equal(t, "a@example.com", s.Get("mail").First())
}

func TestStoreClone(t *testing.T) {
	s := New().SetValues("mail", "a@example.com").SetString("cn", "A")
	c := s.Clone()

	c.SetString("cn", "B").Unset("mail").SetString("sn", "S")

	assert.Equal(t, "A", s.Get("cn").First())
	assert.True(t, s.Has("mail"))
	assert.False(t, s.Has("sn"))
	assert.Equal(t, []string{"cn", "sn"}, c.Keys())
}

func TestStorePrune(t *testing.T) {
	s := New().
		SetString("a", "1").
		Clear("b").
		SetString("c", "3").
		Clear("d")

	s.Prune()

	assert.Equal(t, []string{"a", "c"}, s.Keys())
	assert.Equal(t, "3", s.Get("c").First())
}

func TestStoreZeroValue(t *testing.T) {
	var s Store
	assert.True(t, s.Get("cn").IsNull())
	assert.Zero(t, s.Count())

	s.SetString("cn", "alice").SetValues("objectClass", "top", "person")
	assert.Equal(t, []string{"cn", "objectClass"}, s.Keys())
	assert.Equal(t, "alice", s.Get("CN").First())

	var u Store
	u.Unset("cn")
	u.Clear("description")
	assert.True(t, u.Has("description"))
	assert.Equal(t, 1, u.Clone().Count())
}
