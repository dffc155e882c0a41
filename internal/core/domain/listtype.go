package domain

// ListType names a logical remote list. Each logical list maps to a
// SharePoint display name, either the default below or an override from
// configuration.
type ListType string

const (
	ListDayServices          ListType = "day_services"
	ListUpcomingServices     ListType = "upcoming_services"
	ListServicesCreatedToday ListType = "services_created_today"
	ListServiceDetails       ListType = "service_details"
	ListCardsTodo            ListType = "cards_todo"
	ListMembers              ListType = "members"
	ListVehicles             ListType = "vehicles"
	ListOperators            ListType = "operators"
	ListSettings             ListType = "settings"
)

// defaultListNames are the display names the site uses unless
// configuration overrides them. The three service views all read the
// same physical list. The cards_todo entry is configurable like the
// rest but the cards query reads the member registry, where the
// member-type column lives.
var defaultListNames = map[ListType]string{
	ListDayServices:          "LOREAPP_SERVIZI",
	ListUpcomingServices:     "LOREAPP_SERVIZI",
	ListServicesCreatedToday: "LOREAPP_SERVIZI",
	ListServiceDetails:       "LOREAPP_SERVIZI",
	ListCardsTodo:            "TessereDaFare",
	ListMembers:              "LOREAPP_TESSERATI",
	ListVehicles:             "LOREAPP_AUTOMEZZI",
	ListOperators:            "LOREAPP_OPERATORI",
	ListSettings:             "LOREAPP_IMPOSTAZIONI",
}

// DefaultListName returns the built-in display name for the logical
// list, or "" for an unknown type.
func (t ListType) DefaultListName() string {
	return defaultListNames[t]
}

// AllListTypes enumerates the logical lists in a stable order.
func AllListTypes() []ListType {
	return []ListType{
		ListDayServices,
		ListUpcomingServices,
		ListServicesCreatedToday,
		ListServiceDetails,
		ListCardsTodo,
		ListMembers,
		ListVehicles,
		ListOperators,
		ListSettings,
	}
}
