package seeders

var (
	firstNames = []string{"Alice", "Bogdan", "Chen", "Dilnoza", "Emre", "Farah", "Gustav", "Hana", "Ivan", "Jamila"}
	lastNames  = []string{"Karimov", "Lindqvist", "Moreau", "Nakamura", "Okafor", "Petrov", "Quinn", "Rahimov", "Silva", "Tanaka"}

	companyWords = []string{"Apex", "Blue Ridge", "Cobalt", "Delta", "Evergreen", "Frontier", "Granite", "Helix", "Ionic", "Juniper"}
	companyKinds = []string{"Systems", "Labs", "Logistics", "Holdings", "Networks", "Data"}
	industries   = []string{"finance", "healthcare", "retail", "education", "telecom", "energy"}
	sizes        = []string{"small", "medium", "large"}
	cities       = []string{"Berlin", "Dushanbe", "Lisbon", "Osaka", "Toronto", "Warsaw"}

	userRoles = []string{"admin", "manager", "user"}

	equipmentCategories = []string{"server", "network", "storage", "other"}
	equipmentStatuses   = []string{"available", "in_use", "maintenance"}
	manufacturers       = []string{"Dell", "HPE", "Cisco", "Juniper", "NetApp", "Lenovo"}
	conditions          = []string{"new", "used", "refurbished"}

	priorities      = []string{"low", "medium", "high"}
	requestStatuses = []string{"draft", "pending", "approved", "completed"}
	currencies      = []string{"USD", "EUR", "GBP"}

	offerStatuses = []string{"draft", "pending", "accepted", "rejected"}
	paymentTerms  = []string{"immediate", "30_days", "60_days", "90_days"}
	extraServices = []string{"installation", "training", "maintenance"}
)
