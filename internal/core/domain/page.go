package domain

import "errors"

// Page identifies a screen of the application.
type Page string

const (
	PageDashboard      Page = "dashboard"
	PageAppointments   Page = "appointments"
	PageNewAppointment Page = "new-appointment"
	PageReports        Page = "reports"
	PageUsers          Page = "users"
	PageSettings       Page = "settings"
)

// ErrPageForbidden is returned when the session role may not open a page.
var ErrPageForbidden = errors.New("Acesso não autorizado.")

// Pages lists every page in navigation order.
var Pages = []Page{
	PageDashboard,
	PageAppointments,
	PageNewAppointment,
	PageReports,
	PageUsers,
	PageSettings,
}

var pageTitles = map[Page]string{
	PageDashboard:      "Dashboard",
	PageAppointments:   "Agendamentos",
	PageNewAppointment: "Novo Agendamento",
	PageReports:        "Relatórios",
	PageUsers:          "Usuários",
	PageSettings:       "Configurações",
}

// pageRoles is the only place that decides who may see what.
var pageRoles = map[Page][]Role{
	PageDashboard:      {RoleAdmin, RoleRegistrar},
	PageAppointments:   {RoleAdmin, RoleRegistrar},
	PageNewAppointment: {RoleAdmin, RoleRegistrar},
	PageReports:        {RoleAdmin},
	PageUsers:          {RoleAdmin},
	PageSettings:       {RoleAdmin},
}

// Title returns the label shown in navigation.
func (p Page) Title() string {
	return pageTitles[p]
}

// IsAllowed reports whether role may view page. Unknown roles and pages are
// never allowed.
func IsAllowed(role Role, page Page) bool {
	for _, r := range pageRoles[page] {
		if r == role {
			return true
		}
	}
	return false
}

// VisiblePages returns the pages role may open, in navigation order.
func VisiblePages(role Role) []Page {
	out := make([]Page, 0, len(Pages))
	for _, p := range Pages {
		if IsAllowed(role, p) {
			out = append(out, p)
		}
	}
	return out
}
