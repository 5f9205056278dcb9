package catalog

import (
	"strings"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
)

// SiteType is the kind of site, derived from its web template.
type SiteType string

const (
	SiteCollaboration SiteType = "collaboration"
	SitePublishing    SiteType = "publishing"
)

// Version type names as they appear in catalog files and config.
const (
	VersionOnline  = "online"
	VersionPremise = "premise"
)

// DetectSiteType maps a web template ID such as "STS#0" to a site type.
// Unknown and empty templates count as publishing.
func DetectSiteType(templateID string) SiteType {
	switch templateID {
	case "STS#0", "SPSPERS#6", "SPSMSITEHOST#0":
		return SiteCollaboration
	}
	return SitePublishing
}

// DetectVersion reports SharePoint Online when the site client tag carries the
// $$16 marker, and on-premises otherwise.
func DetectVersion(siteClientTag string) palette.Environment {
	if strings.Contains(siteClientTag, "$$16") {
		return palette.EnvironmentOnline
	}
	return palette.EnvironmentOnPremise
}

// ParseVersion converts a version type name to an Environment.
func ParseVersion(name string) (palette.Environment, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case VersionOnline:
		return palette.EnvironmentOnline, true
	case VersionPremise, "onpremise", "on-premise":
		return palette.EnvironmentOnPremise, true
	}
	return palette.EnvironmentOnPremise, false
}

// ResolveVersion uses override when it names a version and falls back to the client tag.
func ResolveVersion(override, siteClientTag string) palette.Environment {
	if env, ok := ParseVersion(override); ok {
		return env
	}
	return DetectVersion(siteClientTag)
}
