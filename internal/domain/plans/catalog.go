package plans

// Product is one purchasable plan. Price is in minor units (cents).
type Product struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Interval    string `json:"interval"` // month/year
}

// FreeChatLimitPerDay applies to users without an active pro subscription.
const FreeChatLimitPerDay = 30

// catalog is the static allow-list of plans checkout accepts.
// Only "pro" is sold; "free" is the absence of a subscription record.
var catalog = map[string]Product{
	"pro": {
		Key:         "pro",
		Name:        "Pro Plan",
		Description: "Access to premium features including unlimited AI chats, priority support, and advanced tools.",
		Price:       1000, // $10.00
		Currency:    "usd",
		Interval:    "month",
	},
}

func Lookup(key string) (Product, bool) {
	p, ok := catalog[key]
	return p, ok
}

func All() []Product {
	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	return out
}
