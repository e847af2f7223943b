package marketplace

import "plugdeck/internal/domain"

// BuiltinListing is the catalog shown on the marketplace tab when no
// remote responses are cached. Entries are filtered and sorted
// client-side with the same parsed query that builds the request URL.
func BuiltinListing() []*domain.Plugin {
	return []*domain.Plugin{
		{
			ID: "vim-motion", Name: "Vim Motion", Vendor: "acme",
			Description: "Modal editing and vim keybindings",
			Tags:        []string{"editor", "keymap"},
			Downloads:   182340, Rating: 4.7, Repository: "stable",
		},
		{
			ID: "git-lens", Name: "Git Lens", Vendor: "acme",
			Description: "Inline blame, history and diff views",
			Tags:        []string{"vcs", "editor"},
			Downloads:   95410, Rating: 4.5, Repository: "stable",
		},
		{
			ID: "lintstorm", Name: "Lintstorm", Vendor: "stormworks",
			Description: "On-the-fly static analysis",
			Tags:        []string{"code-quality"},
			Downloads:   64012, Rating: 4.1, Repository: "stable",
		},
		{
			ID: "nightfall-themes", Name: "Nightfall Themes", Vendor: "nightly-co",
			Description: "Dark color schemes",
			Tags:        []string{"ui", "theme"},
			Downloads:   40233, Rating: 3.9, Repository: "nightly",
		},
		{
			ID: "markdown-pro", Name: "Markdown Pro", Vendor: "scribe",
			Description: "Preview and lint markdown documents",
			Tags:        []string{"markup", "editor"},
			Downloads:   30981, Rating: 4.3, Repository: "stable",
		},
		{
			ID: "legacy-toolbar", Name: "Legacy Toolbar", Vendor: "retro",
			Description: "Restores the classic toolbar layout",
			Tags:        []string{"ui", "legacy"},
			Downloads:   8112, Rating: 2.8, Repository: "nightly",
		},
	}
}
