package resolve

import "github.com/jashwanth-cse/Dream-Destiny/internal/provider"

// stationCodes maps lower-cased station names and common variants to IRCTC
// station codes. Read-only after initialization.
var stationCodes = map[string]string{
	// Tamil Nadu
	"rajapalayam":          "RPM",
	"chennai":              "MAS",
	"chennai central":      "MAS",
	"chennai egmore":       "MS",
	"madurai":              "MDU",
	"madurai junction":     "MDU",
	"coimbatore":           "CBE",
	"coimbatore junction":  "CBE",
	"salem":                "SA",
	"salem junction":       "SA",
	"tiruchirapalli":       "TPJ",
	"trichy":               "TPJ",
	"thanjavur":            "TJ",
	"tirunelveli":          "TEN",
	"kanyakumari":          "CAPE",
	"erode":                "ED",
	"tiruppur":             "TUP",
	"karur":                "KRR",
	"dindigul":             "DG",
	"virudhunagar":         "VPT",
	"tuticorin":            "TN",
	"nagercoil":            "NCJ",
	"rameswaram":           "RMM",
	"kumbakonam":           "KMU",
	"chidambaram":          "CDM",
	"villupuram":           "VM",
	"pondicherry":          "PDY",
	"vellore":              "VLR",
	"katpadi":              "KPD",
	"arakkonam":            "AJJ",
	"tambaram":             "TBM",

	// Major cities
	"bangalore":          "SBC",
	"bengaluru":          "SBC",
	"bangalore city":     "BNC",
	"mumbai":             "CSTM",
	"mumbai central":     "BCT",
	"mumbai cst":         "CSTM",
	"delhi":              "NDLS",
	"new delhi":          "NDLS",
	"old delhi":          "DLI",
	"kolkata":            "HWH",
	"howrah":             "HWH",
	"sealdah":            "SDAH",
	"hyderabad":          "SC",
	"secunderabad":       "SC",
	"pune":               "PUNE",
	"ahmedabad":          "ADI",
	"surat":              "ST",
	"vadodara":           "BRC",
	"jaipur":             "JP",
	"jodhpur":            "JU",
	"udaipur":            "UDZ",
	"indore":             "INDB",
	"bhopal":             "BPL",
	"gwalior":            "GWL",
	"agra":               "AGC",
	"lucknow":            "LJN",
	"kanpur":             "CNB",
	"varanasi":           "BSB",
	"patna":              "PNBE",
	"ranchi":             "RNC",
	"bhubaneswar":        "BBS",
	"visakhapatnam":      "VSKP",
	"vijayawada":         "BZA",
	"tirupati":           "TPTY",
	"kochi":              "ERS",
	"ernakulam":          "ERS",
	"trivandrum":         "TVC",
	"thiruvananthapuram": "TVC",
	"kozhikode":          "CLT",
	"calicut":            "CLT",
	"thrissur":           "TCR",
	"palakkad":           "PGT",
	"kannur":             "CAN",
	"mangalore":          "MAQ",
	"goa":                "MAO",
	"margao":             "MAO",
}

// airportCodes maps cities to the IATA code used for flight searches.
// Rajapalayam routes through its nearest airport.
var airportCodes = map[string]string{
	"chennai":     "MAA",
	"mumbai":      "BOM",
	"delhi":       "DEL",
	"bangalore":   "BLR",
	"bengaluru":   "BLR",
	"hyderabad":   "HYD",
	"kolkata":     "CCU",
	"pune":        "PNQ",
	"ahmedabad":   "AMD",
	"kochi":       "COK",
	"goa":         "GOI",
	"rajapalayam": "TUV",
}

// cityCodes maps cities to the hotel-search city code. Rajapalayam uses
// Chennai for nearby hotel coverage.
var cityCodes = map[string]string{
	"chennai":     "MAA",
	"mumbai":      "BOM",
	"delhi":       "DEL",
	"bangalore":   "BLR",
	"bengaluru":   "BLR",
	"hyderabad":   "HYD",
	"kolkata":     "CCU",
	"pune":        "PNQ",
	"ahmedabad":   "AMD",
	"kochi":       "COK",
	"goa":         "GOI",
	"rajapalayam": "MAA",
}

// cityCoordinates maps cities to their coordinate pair for POI searches.
var cityCoordinates = map[string]provider.Geo{
	"chennai":     {Latitude: 13.0827, Longitude: 80.2707},
	"mumbai":      {Latitude: 19.0760, Longitude: 72.8777},
	"delhi":       {Latitude: 28.7041, Longitude: 77.1025},
	"bangalore":   {Latitude: 12.9716, Longitude: 77.5946},
	"bengaluru":   {Latitude: 12.9716, Longitude: 77.5946},
	"hyderabad":   {Latitude: 17.3850, Longitude: 78.4867},
	"kolkata":     {Latitude: 22.5726, Longitude: 88.3639},
	"rajapalayam": {Latitude: 9.4500, Longitude: 77.5500},
}

// placeCountries maps places to ISO country codes for restriction checks.
// Everything not listed is treated as India.
var placeCountries = map[string]string{
	"singapore": "SG",
	"colombo":   "LK",
	"dubai":     "AE",
	"london":    "GB",
}
