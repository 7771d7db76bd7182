package categorize

// Category identifiers.
const (
	OfficeSupplies = "office_supplies"
	Travel         = "travel"
	Utilities      = "utilities"
	Marketing      = "marketing"
	Meals          = "meals"
	Professional   = "professional"
	Maintenance    = "maintenance"
	Miscellaneous  = "miscellaneous"
)

// Rule maps lowercase substrings to a category.
type Rule struct {
	Category string
	Patterns []string
}

// VendorRules are tried before KeywordRules. Within a table the first rule
// with a matching pattern wins.
var VendorRules = []Rule{
	{OfficeSupplies, []string{"staples", "office depot", "amazon", "flipkart", "reliance digital", "croma"}},
	{Travel, []string{"makemytrip", "cleartrip", "goibibo", "yatra", "booking.com", "agoda", "oyo", "treebo"}},
	{Utilities, []string{"bsnl", "airtel", "jio", "vodafone", "tata sky", "dish tv"}},
	{Marketing, []string{"google", "facebook", "instagram", "linkedin", "twitter"}},
	{Meals, []string{"zomato", "swiggy", "uber eats", "dominos", "pizza hut", "mcdonalds", "kfc", "subway"}},
	{Professional, []string{"udemy", "coursera", "skillshare", "linkedin learning"}},
	{Maintenance, []string{"urban company", "housejoy", "justdial"}},
}

var KeywordRules = []Rule{
	{OfficeSupplies, []string{
		"stationery", "paper", "pen", "pencil", "laptop", "computer", "mouse", "keyboard", "printer",
		"ink", "toner", "software", "license", "microsoft", "adobe", "chair", "desk", "furniture",
	}},
	{Travel, []string{
		"flight", "hotel", "taxi", "uber", "ola", "train", "bus", "accommodation", "boarding",
		"lodging", "fuel", "petrol", "diesel", "parking", "toll",
	}},
	{Utilities, []string{"electricity", "water", "internet", "wifi", "phone", "mobile", "broadband", "gas", "maintenance"}},
	{Marketing, []string{
		"advertising", "ad", "promotion", "marketing", "social media", "facebook", "google ads",
		"seo", "website", "design", "branding",
	}},
	{Meals, []string{"restaurant", "food", "lunch", "dinner", "breakfast", "coffee", "tea", "catering", "meal", "snacks", "beverage"}},
	{Professional, []string{"legal", "lawyer", "consultant", "consulting", "training", "course", "certification", "seminar", "workshop", "conference"}},
	{Maintenance, []string{"repair", "service", "cleaning", "security", "insurance", "maintenance", "fix"}},
	{Miscellaneous, []string{"bank", "charge", "fee", "tax", "misc", "other", "petty cash"}},
}

// Subcategories lists the accepted subcategories per category.
var Subcategories = map[string][]string{
	OfficeSupplies: {"Stationery", "Computer Equipment", "Furniture", "Software"},
	Travel:         {"Transportation", "Accommodation", "Meals", "Fuel"},
	Utilities:      {"Electricity", "Internet", "Phone", "Water"},
	Marketing:      {"Advertising", "Promotional Materials", "Events", "Digital Marketing"},
	Meals:          {"Business Meals", "Team Lunch", "Client Entertainment", "Catering"},
	Professional:   {"Legal", "Consulting", "Training", "Certification"},
	Maintenance:    {"Repairs", "Cleaning", "Security", "Insurance"},
	Miscellaneous:  {"Other", "Petty Cash", "Bank Charges", "Taxes"},
}

// Categories in display order.
var Categories = []string{OfficeSupplies, Travel, Utilities, Marketing, Meals, Professional, Maintenance, Miscellaneous}

// PaymentMethods accepted on expenses.
var PaymentMethods = []string{"cash", "credit_card", "debit_card", "bank_transfer", "cheque", "digital_wallet"}
