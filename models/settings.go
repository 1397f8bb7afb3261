package models

// Settings is the storefront's singleton configuration record: the two
// contact channels shown on the public pages.
type Settings struct {
	WhatsappNumber   string `json:"whatsappNumber"`
	InstagramAccount string `json:"instagramAccount"`
}

// DefaultSettings seeds the settings store before the remote row is read and
// stands in for it when the read fails.
func DefaultSettings() Settings {
	return Settings{
		WhatsappNumber:   "71101056",
		InstagramAccount: "thecrafthouse",
	}
}

// SettingsPatch is a partial settings update; nil fields keep their current
// values when merged.
type SettingsPatch struct {
	WhatsappNumber   *string `json:"whatsappNumber,omitempty"`
	InstagramAccount *string `json:"instagramAccount,omitempty"`
}

// Merge returns s with the patch's named fields applied.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.WhatsappNumber != nil {
		s.WhatsappNumber = *p.WhatsappNumber
	}
	if p.InstagramAccount != nil {
		s.InstagramAccount = *p.InstagramAccount
	}
	return s
}
