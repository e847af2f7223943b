package query

// Installed is the parsed form of an installed-plugins search: six
// independent tri-state flags driven by status:<value> attributes, plus
// the free-text remainder. A nil flag means "no constraint".
type Installed struct {
	SearchQuery string
	HasSearch   bool

	Enabled     *bool // false == disabled
	Bundled     *bool // false == user-installed
	Invalid     *bool
	NeedUpdate  *bool
	Deleted     *bool
	NeedRestart *bool // inactive until host restart

	// HasAttributes is true when at least one flag was set by the query.
	HasAttributes bool
}

// ParseInstalled parses a raw installed-listing search-box query.
func ParseInstalled(raw string) *Installed {
	q := &Installed{}
	q.SearchQuery, q.HasSearch = Parse(raw, q)
	q.HasAttributes = q.Enabled != nil || q.Bundled != nil || q.Invalid != nil ||
		q.NeedUpdate != nil || q.Deleted != nil || q.NeedRestart != nil
	return q
}

// HandleAttribute implements Sink. Only the status attribute is
// recognized; each value maps onto one flag, with '-' flipping the
// polarity. Later occurrences of the same flag overwrite earlier ones.
func (q *Installed) HandleAttribute(name, value string, invert bool) {
	if name != "status" {
		return
	}

	switch value {
	case "enabled":
		q.Enabled = flag(!invert)
	case "disabled":
		q.Enabled = flag(invert)

	case "bundled":
		q.Bundled = flag(!invert)
	case "installed":
		q.Bundled = flag(invert)

	case "invalid":
		q.Invalid = flag(!invert)

	case "outdated":
		q.NeedUpdate = flag(!invert)

	case "uninstalled":
		q.Deleted = flag(!invert)

	case "inactive":
		q.NeedRestart = flag(!invert)
	}
}

func flag(v bool) *bool {
	return &v
}
