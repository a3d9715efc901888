package normalize

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

/********** alias registries (priority order matters) **********/

var (
	titleAliases       = []string{"activity", "name", "title"}
	timeAliases        = []string{"time", "start_time", "startTime"}
	descriptionAliases = []string{"description", "details"}
)

/********** tiny helpers **********/

// firstString returns the first non-empty string found under the given keys.
func firstString(obj gjson.Result, keys []string) string {
	for _, k := range keys {
		if v := obj.Get(k); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}

// finite returns v as a float when it is a JSON number that is neither NaN nor ±Inf.
func finite(v gjson.Result) (float64, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// scalarText renders strings and numbers; anything else is "".
func scalarText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	}
	return ""
}

func lower(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}
