package outlet

// Area and city names as stored.
const (
	AreaSS2       = "SS2"
	AreaSS15      = "SS15"
	AreaDamansara = "Damansara"
	AreaBangsar   = "Bangsar"

	CityPetalingJaya = "Petaling Jaya"
	CityKualaLumpur  = "Kuala Lumpur"
)

// Info types understood by Lookup.
const (
	InfoOpeningHours = "opening_hours"
	InfoClosingHours = "closing_hours"
	InfoHours        = "hours"
)

const (
	MsgNeedSpecificOutlet = "I need a specific outlet (like SS2, SS15, or Damansara) to give you information."
	MsgUnknownOutlet      = "I don't have detailed information for an outlet specifically called '%s'. Did you mean SS2, SS15, or Damansara?"
	MsgCityWithInfo       = "We have several outlets in %s. Which specific one (e.g., SS2, SS15, Damansara) are you interested in for its %s?"
	MsgCityWithoutInfo    = "Yes, we have outlets in %s, including %s. Which specific outlet would you like to know about?"
	MsgCityNoOutlets      = "We don't have any outlets in %s yet. Our outlets include SS2, SS15 and Damansara."
	MsgOpens              = "The %s outlet opens at %s."
	MsgCloses             = "The %s outlet closes at %s."
	MsgOpensAndCloses     = "The %s outlet opens at %s and closes at %s."
	MsgGeneral            = "The %s outlet is %s Would you like to know its opening or closing hours?"
	MsgNoResults          = "No outlets found matching your query."
)

// DefaultOutlets is the catalogue written by Seed into an empty store.
var DefaultOutlets = []Outlet{
	{
		Name:        "ZUS Coffee SS2",
		Area:        AreaSS2,
		City:        CityPetalingJaya,
		Address:     "No.5, Jalan SS2/67, SS2, 47300 Petaling Jaya, Selangor",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		Summary:     "a bustling spot in Petaling Jaya with good vibes.",
		Services:    []string{"Dine-in", "Takeaway", "Delivery"},
	},
	{
		Name:        "ZUS Coffee SS15",
		Area:        AreaSS15,
		City:        CityPetalingJaya,
		Address:     "27, Jalan SS15/4D, SS15, 47500 Subang Jaya, Selangor",
		OpeningTime: "08:00",
		ClosingTime: "21:00",
		Summary:     "a lively student hangout spot.",
		Services:    []string{"Dine-in", "Takeaway", "WiFi"},
	},
	{
		Name:        "ZUS Coffee Damansara Utama",
		Area:        AreaDamansara,
		City:        CityPetalingJaya,
		Address:     "4-G (Ground Floor), Jalan SS21/39, Damansara Utama, 47400 Petaling Jaya, Selangor",
		OpeningTime: "07:00",
		ClosingTime: "23:00",
		Summary:     "a cozy spot for early birds in Damansara.",
		Services:    []string{"Dine-in", "Takeaway", "Drive-thru"},
	},
	{
		Name:        "ZUS Coffee Menara UOA Bangsar",
		Area:        AreaBangsar,
		City:        CityKualaLumpur,
		Address:     "Lot LGF-8, Lower Ground Floor, 5, Jalan Bangsar Utama 1, Bangsar, 59000 Kuala Lumpur, Wilayah Persekutuan Kuala Lumpur",
		OpeningTime: "07:30",
		ClosingTime: "19:40",
		Summary:     "an office-crowd favourite in Bangsar.",
		Services:    []string{"Takeaway", "Delivery"},
	},
}
