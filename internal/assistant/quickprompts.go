package assistant

// QuickPrompt is a canned message offered as a one-tap shortcut
type QuickPrompt struct {
	Label string `json:"label" example:"Popular attractions"`
	Icon  string `json:"icon" example:"location_on"`
}

var quickPrompts = []QuickPrompt{
	{Label: "Popular attractions", Icon: "location_on"},
	{Label: "Best restaurants", Icon: "restaurant"},
	{Label: "Hotels nearby", Icon: "hotel"},
	{Label: "Local activities", Icon: "local_activity"},
}

// QuickPrompts returns the shortcut list. Sending one is the same as sending its label.
func QuickPrompts() []QuickPrompt {
	out := make([]QuickPrompt, len(quickPrompts))
	copy(out, quickPrompts)
	return out
}
