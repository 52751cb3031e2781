package batch

import (
	"sort"

	"github.com/AnyUserName/dupimg/imghash"
)

// Profile names the set of algorithms run on every image.
type Profile struct {
	Name       string
	Algorithms []imghash.Algorithm
}

// DefaultProfile is used for empty or unknown profile names.
const DefaultProfile = "full"

// Built-in profiles.
var profiles = map[string]Profile{
	"full": {
		Name:       "full",
		Algorithms: imghash.Algorithms(),
	},
	"fast": {
		Name:       "fast",
		Algorithms: []imghash.Algorithm{imghash.Average64, imghash.Difference64},
	},
	"wide": {
		Name:       "wide",
		Algorithms: []imghash.Algorithm{imghash.Difference256, imghash.Median256},
	},
}

// GetProfile returns a profile by name. Unknown names fall back to the
// full profile under the requested name.
func GetProfile(name string) Profile {
	p, ok := profiles[name]
	if !ok {
		p = profiles[DefaultProfile]
		if name != "" {
			p.Name = name
		}
	}
	p.Algorithms = append([]imghash.Algorithm(nil), p.Algorithms...)
	return p
}

// ProfileNames lists the built-in profiles.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
