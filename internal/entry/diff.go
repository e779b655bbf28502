package entry

import "github.com/KilimcininKorOglu/obaentry/internal/attrs"

// Diff returns the modifications that turn raw into current, in current's
// attribute order.
//
// A null value in current becomes ModRemove, an attribute raw does not have
// becomes ModAdd, and a value that differs from raw becomes ModReplace.
// Attributes that only raw has are never emitted: removal has to be asked
// for explicitly by setting the attribute to null.
func Diff(raw, current *attrs.Store) []Modification {
	mods := []Modification{}

	current.Range(func(key string, v attrs.Value) bool {
		if v.IsNull() {
			mods = append(mods, Modification{Attribute: key, Operation: ModRemove})
			return true
		}

		old, ok := raw.Lookup(key)
		switch {
		case !ok:
			mods = append(mods, Modification{Attribute: key, Values: v.Values(), Operation: ModAdd})
		case !old.Equal(v):
			mods = append(mods, Modification{Attribute: key, Values: v.Values(), Operation: ModReplace})
		}
		return true
	})

	return mods
}
