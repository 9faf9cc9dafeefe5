package domain

// Categories a raw spreadsheet category can resolve into.
const (
	CategoryIPhone  = "iPhone"
	CategoryXiaomi  = "Xiaomi"
	CategorySamsung = "Samsung"
	CategoryAirPods = "AirPods"
	CategoryWatch   = "Watch"
	CategoryIPad    = "iPad"
	CategoryMacBook = "MacBook"
	CategoryOther   = "Other"
)

// Condition: new | used
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// Status holds the sheet's literal availability markers.
const (
	StatusAvailable = "Свободен"
	StatusReserved  = "Резерв"
	StatusSold      = "Продан"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Condition   string   `json:"condition"`
	Capacity    string   `json:"capacity"`
	Photo       string   `json:"photo,omitempty"` // first of Photos
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Status      string   `json:"status"`
}

func (p Product) Sold() bool { return p.Status == StatusSold }

// CartItem snapshots name/price/capacity at add time. The snapshot is a
// display fallback only; the live catalog price wins when computing totals.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Capacity string `json:"capacity"`
	Qty      int    `json:"qty"`
}

// Contact method: whatsapp | telegram | call
// Delivery method: courier | store
// Delivery type: moscow | other (courier only)
const (
	ContactWhatsApp = "whatsapp"
	ContactTelegram = "telegram"
	ContactCall     = "call"

	DeliveryCourier = "courier"
	DeliveryStore   = "store"

	DeliveryZoneMoscow = "moscow"
	DeliveryZoneOther  = "other"
)

// CheckoutForm is the mutable order draft a session edits before submitting.
type CheckoutForm struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	ContactMethod  string `json:"contactMethod"`
	DeliveryMethod string `json:"deliveryMethod"`
	DeliveryType   string `json:"deliveryType"`
	Address        string `json:"address"`
	Comment        string `json:"comment"`
}

// DefaultCheckoutForm is the draft a fresh session starts with.
func DefaultCheckoutForm() CheckoutForm {
	return CheckoutForm{
		ContactMethod:  ContactWhatsApp,
		DeliveryMethod: DeliveryCourier,
		DeliveryType:   DeliveryZoneMoscow,
	}
}

// OrderLine is a cart line enriched with the live product and its total.
type OrderLine struct {
	CartItem
	Product   *Product `json:"product,omitempty"`
	LineTotal int      `json:"lineTotal"`
}

// Order is the payload forwarded to the order-intake endpoint. Phone is
// always in canonical 8XXXXXXXXXX form.
type Order struct {
	Name           string      `json:"name"`
	Phone          string      `json:"phone"`
	ContactMethod  string      `json:"contactMethod"`
	DeliveryMethod string      `json:"deliveryMethod"`
	DeliveryType   string      `json:"deliveryType"`
	Address        string      `json:"address"`
	Comment        string      `json:"comment"`
	Items          []OrderLine `json:"items"`
	Total          int         `json:"total"`
	TGUsername     string      `json:"tg_username,omitempty"`
}
