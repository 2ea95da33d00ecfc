package user

// Preferences is what the preferences screen edits. Replaced wholesale on
// update; there is no per-key merge. Keys the screen sends that are not
// modeled here are kept verbatim in Extra.
type Preferences struct {
	Budget        string
	Style         []string
	Destinations  []string
	Accommodation string
	Alerts        []string
	Extra         map[string]any
}
