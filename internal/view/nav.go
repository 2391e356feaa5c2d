package view

import "strings"

// NavItem is one sidebar entry.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

var navItems = []NavItem{
	{Title: "Dashboard", Href: "/admin"},
	{Title: "Affiliate Links", Href: "/admin/affiliate-links"},
	{Title: "Commissions", Href: "/admin/commissions"},
	{Title: "Users", Href: "/admin/users"},
	{Title: "Communities", Href: "/admin/communities"},
	{Title: "Withdrawals", Href: "/admin/withdrawals"},
}

// Navigation marks the entry whose href equals the path or is a parent of it.
// The dashboard root only matches itself, otherwise it would be active everywhere.
func Navigation(path string) []NavItem {
	path = strings.TrimRight(path, "/")
	items := make([]NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = path == item.Href || (item.Href != "/admin" && strings.HasPrefix(path, item.Href+"/"))
		items[i] = item
	}
	return items
}
