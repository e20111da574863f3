package keywords

// Category is a named, ordered keyword list matched against post titles.
// Lists are curated at configuration time, never derived from data.
type Category struct {
	Name  string
	Terms []string
}

// DefaultIndustries mirrors the dashboard's stock industry mapping.
var DefaultIndustries = []Category{
	{Name: "Real Estate", Terms: []string{"house", "property", "rent", "buy", "lease", "real estate", "immobilier"}},
	{Name: "Tech", Terms: []string{"AI", "software", "app", "code", "programming", "algorithm"}},
	{Name: "Finance", Terms: []string{"bank", "loan", "invest", "stock", "crypto", "money"}},
	{Name: "Education", Terms: []string{"school", "university", "learn", "student", "course"}},
	{Name: "Healthcare", Terms: []string{"hospital", "doctor", "medicine", "health", "patient"}},
	{Name: "Tourism", Terms: []string{"hotel", "travel", "visit", "tour", "vacation"}},
}

// DefaultRegionKeywords is the curated Morocco-focus list.
var DefaultRegionKeywords = []string{
	"Morocco", "Maroc", "المغرب", "Casablanca", "Rabat",
	"Tanger", "OCP", "Attijariwafa", "Darija", "touris",
	"visit", "immobili", "property", "house", "شقة",
}

// DefaultRegionIndustries maps region-specific sectors to their terms.
var DefaultRegionIndustries = []Category{
	{Name: "Banking", Terms: []string{"attijariwafa", "bank", "bancaire", "البنك"}},
	{Name: "Tech", Terms: []string{"AI", "technologie", "informatique", "الذكاء"}},
	{Name: "Education", Terms: []string{"PFE", "stage", "université", "جامعة"}},
	{Name: "Real Estate", Terms: []string{"house", "riad", "immobilier", "property", "شقة", "سكن"}},
}
