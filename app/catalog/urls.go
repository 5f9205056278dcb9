package catalog

import (
	"strconv"
	"strings"
)

// DefaultCentralAdminPort is where on-premises Central Administration listens.
const DefaultCentralAdminPort = 11111

// Site carries what is needed to turn a catalog path into a full URL.
type Site struct {
	Origin           string // scheme and host, e.g. https://contoso.sharepoint.com
	WebRelativeURL   string // server relative URL of the current web, e.g. /sites/hr
	CentralAdminPort int
}

func (s Site) origin() string {
	return strings.TrimRight(s.Origin, "/")
}

// WebRelativeURLWithSlash returns the web's server relative URL ending in a slash.
func (s Site) WebRelativeURLWithSlash() string {
	if s.WebRelativeURL == "" || s.WebRelativeURL == "/" {
		return "/"
	}
	return strings.TrimRight(s.WebRelativeURL, "/") + "/"
}

// PageURL resolves a path relative to the current web.
func (s Site) PageURL(path string) string {
	return s.origin() + strings.TrimRight(s.WebRelativeURLWithSlash(), "/") + ensureLeadingSlash(path)
}

// CentralAdminURL resolves a path on Central Administration.
func (s Site) CentralAdminURL(path string) string {
	port := s.CentralAdminPort
	if port <= 0 {
		port = DefaultCentralAdminPort
	}
	return s.origin() + ":" + strconv.Itoa(port) + ensureLeadingSlash(path)
}

// SPOAdminURL resolves a path on the tenant's SharePoint Online admin center.
func (s Site) SPOAdminURL(path string) string {
	return strings.Replace(s.origin(), ".sharepoint.com", "-admin.sharepoint.com", 1) + ensureLeadingSlash(path)
}

// SPOMySiteURL resolves a path on the tenant's OneDrive host.
func (s Site) SPOMySiteURL(path string) string {
	return strings.Replace(s.origin(), ".sharepoint.com", "-my.sharepoint.com", 1) + ensureLeadingSlash(path)
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
