package config

// Config represents user settings stored on disk.
type Config struct {
	Site   SiteConfig   `mapstructure:"site"`
	Launch LaunchConfig `mapstructure:"launch"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// SiteConfig describes the SharePoint site the palette navigates.
// TemplateID and ClientTag are the values a page exposes as g_wsaSiteTemplateId
// and _spPageContextInfo.siteClientTag.
type SiteConfig struct {
	Origin           string `mapstructure:"origin"`
	WebRelativeURL   string `mapstructure:"web_relative_url"`
	TemplateID       string `mapstructure:"template_id"`
	ClientTag        string `mapstructure:"client_tag"`
	Version          string `mapstructure:"version"` // "", "online" or "premise"; empty means detect from ClientTag
	CentralAdminPort int    `mapstructure:"central_admin_port"`
}

// LaunchConfig controls what activating a command does.
type LaunchConfig struct {
	Mode string `mapstructure:"mode"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	VisibleItems int `mapstructure:"visible_items"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}
