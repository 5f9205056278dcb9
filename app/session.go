package app

import (
	"github.com/Guerrilla-Interactive/sp-command-palette/app/catalog"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
	"github.com/Guerrilla-Interactive/sp-command-palette/internal/config"
)

// Session is the site a run works against, resolved from settings.
type Session struct {
	Site     catalog.Site
	Env      palette.Environment
	SiteType catalog.SiteType
}

// NewSession resolves the version type and site type from cfg. An explicit
// site.version wins over detection from the client tag.
func NewSession(cfg config.Config) Session {
	return Session{
		Site: catalog.Site{
			Origin:           cfg.Site.Origin,
			WebRelativeURL:   cfg.Site.WebRelativeURL,
			CentralAdminPort: cfg.Site.CentralAdminPort,
		},
		Env:      catalog.ResolveVersion(cfg.Site.Version, cfg.Site.ClientTag),
		SiteType: catalog.DetectSiteType(cfg.Site.TemplateID),
	}
}

// WithEnv returns a copy of s with the version type replaced, when name is a
// known version type.
func (s Session) WithEnv(name string) (Session, bool) {
	env, ok := catalog.ParseVersion(name)
	if !ok {
		return s, false
	}
	s.Env = env
	return s, true
}

// Records assembles the catalog for this session, with every action going
// through opener.
func (s Session) Records(opener launch.Opener) []palette.Record {
	return catalog.Assemble(s.Env, s.Site, opener)
}
