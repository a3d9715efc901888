package normalize

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Shape names the payload variant a response was recognised as.
type Shape int

const (
	ShapeEmpty Shape = iota
	ShapeMockNative
	ShapeArrayOfDays
	ShapeKeyedByDay
)

func (s Shape) String() string {
	switch s {
	case ShapeMockNative:
		return "mock_native"
	case ShapeArrayOfDays:
		return "array_of_days"
	case ShapeKeyedByDay:
		return "keyed_by_day"
	}
	return "empty"
}

// rawActivity is one activity lifted out of the payload. Location-ish fields
// stay as JSON values; the resolver decides what they mean.
type rawActivity struct {
	ActivityText
	Time        string
	Location    gjson.Result
	Coordinates gjson.Result
	Cost        gjson.Result
}

type rawDay struct {
	Number     int
	Activities []rawActivity
}

// payload is the typed result of shape detection.
type payload struct {
	Shape    Shape
	Days     []rawDay
	Currency string
	Fallback bool
}

// detect classifies root and validates it into a payload. First match wins:
// plan wrapper (unwrapped once), mock-native, array-of-days, keyed-by-day.
func detect(root gjson.Result, days int, mockTable bool) payload {
	out := payload{Fallback: root.Get("usedFallbackData").Bool()}
	if !root.IsObject() {
		return out
	}

	if plan := root.Get("plan"); plan.IsObject() {
		root = plan
		out.Fallback = out.Fallback || root.Get("usedFallbackData").Bool()
	}
	out.Currency = firstString(root, []string{"currency"})

	if it := root.Get("itinerary"); it.IsArray() {
		out.Shape = ShapeArrayOfDays
		if mockTable {
			out.Shape = ShapeMockNative
		}
		out.Days = arrayOfDays(it)
		return out
	}

	out.Days = keyedByDay(root, days)
	if len(out.Days) > 0 {
		out.Shape = ShapeKeyedByDay
	}
	return out
}

// arrayOfDays numbers days by position; a malformed element still counts as a day.
func arrayOfDays(it gjson.Result) []rawDay {
	out := make([]rawDay, 0, len(it.Array()))
	pos := 0
	it.ForEach(func(_, day gjson.Result) bool {
		pos++
		out = append(out, rawDay{Number: pos, Activities: activityList(day.Get("activities"))})
		return true
	})
	return out
}

func keyedByDay(root gjson.Result, days int) []rawDay {
	var out []rawDay
	for i := 1; i <= days; i++ {
		v := root.Get("day" + strconv.Itoa(i))
		if !v.Exists() {
			continue
		}
		d := rawDay{Number: i}
		switch {
		case v.IsObject() && v.Get("activities").IsArray():
			d.Activities = activityList(v.Get("activities"))
		case v.IsObject():
			// every key is a time label, in document order
			v.ForEach(func(label, item gjson.Result) bool {
				if a, ok := parseActivity(item, label.String()); ok {
					d.Activities = append(d.Activities, a)
				}
				return true
			})
		case v.IsArray():
			d.Activities = activityList(v)
		}
		out = append(out, d)
	}
	return out
}

func activityList(list gjson.Result) []rawActivity {
	if !list.IsArray() {
		return nil
	}
	var out []rawActivity
	list.ForEach(func(_, item gjson.Result) bool {
		if a, ok := parseActivity(item, ""); ok {
			out = append(out, a)
		}
		return true
	})
	return out
}

// parseActivity accepts a bare title string or an activity-like object.
// timeLabel, when set, overrides any time carried by the object.
func parseActivity(v gjson.Result, timeLabel string) (rawActivity, bool) {
	switch {
	case v.Type == gjson.String:
		return rawActivity{ActivityText: ActivityText{Title: v.Str}, Time: timeLabel}, true
	case !v.IsObject():
		return rawActivity{}, false
	}

	a := rawActivity{
		ActivityText: ActivityText{
			Kind:        scalarText(v.Get("type")),
			Category:    scalarText(v.Get("category")),
			Title:       firstString(v, titleAliases),
			Description: firstString(v, descriptionAliases),
		},
		Time:        firstString(v, timeAliases),
		Location:    v.Get("location"),
		Coordinates: v.Get("coordinates"),
		Cost:        v.Get("cost"),
	}
	if timeLabel != "" {
		a.Time = timeLabel
	}
	a.ActivityText.Location = locationName(a.Location)
	return a, true
}

// locationName is the string form of a location field, or the name of a
// structured one.
func locationName(loc gjson.Result) string {
	if loc.Type == gjson.String {
		return loc.Str
	}
	if loc.IsObject() {
		return firstString(loc, []string{"name"})
	}
	return ""
}
