package models

// The catalogs are hardcoded; only claims and bookings live in the
// store. Gift and room ids share one id space in the claim registry.

// GiftItem is a claimable entry on the gift registry page
type GiftItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Emoji       string `json:"emoji"`
}

// RoomItem is a bookable room at the venue
type RoomItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var Gifts = []GiftItem{
	{ID: "kitchenaid", Name: "KitchenAid Stand Mixer", Description: "Professional 5-quart mixer in our chosen color", Price: "€450", Emoji: "🍰"},
	{ID: "dyson-vacuum", Name: "Dyson V15 Vacuum", Description: "Cordless vacuum for our new home", Price: "€650", Emoji: "🧹"},
	{ID: "nespresso", Name: "Nespresso Vertuo Machine", Description: "Coffee machine with milk frother", Price: "€280", Emoji: "☕"},
	{ID: "le-creuset", Name: "Le Creuset Dutch Oven", Description: "5.5 quart round dutch oven", Price: "€350", Emoji: "🍲"},
	{ID: "airfryer", Name: "Philips Airfryer XXL", Description: "Large capacity air fryer", Price: "€250", Emoji: "🍟"},
	{ID: "luggage-set", Name: "Samsonite Luggage Set", Description: "Matching 3-piece luggage for our honeymoon travels", Price: "€500", Emoji: "🧳"},
	{ID: "wine-fridge", Name: "Wine Cooler", Description: "24-bottle wine refrigerator", Price: "€400", Emoji: "🍷"},
	{ID: "bedding", Name: "Luxury Bedding Set", Description: "Egyptian cotton king-size sheets and duvet", Price: "€300", Emoji: "🛏️"},
	{ID: "artwork", Name: "Commissioned Artwork", Description: "Custom painting for our living room", Price: "€600", Emoji: "🎨"},
	{ID: "camera", Name: "Polaroid Camera", Description: "Instant camera with film packs", Price: "€180", Emoji: "📸"},
	{ID: "blanket", Name: "Cashmere Throw Blanket", Description: "Luxury throw for cozy evenings", Price: "€200", Emoji: "🧶"},
	{ID: "garden", Name: "Garden Set", Description: "Quality garden tools and planters", Price: "€250", Emoji: "🌱"},
}

// Castle rooms available for booking at Burg Schwarzenstein
var Rooms = []RoomItem{
	{ID: "turm-suite", Name: "Turm Suite", Capacity: 2, Price: "€340/night", Description: "Castle tower suite - the most romantic option", Category: "Castle"},
	{ID: "turmzimmer", Name: "Turmzimmer", Capacity: 2, Price: "€260-340/night", Description: "Tower room with castle views", Category: "Castle"},
	{ID: "superior-1", Name: "Superiorzimmer 1", Capacity: 2, Price: "€240-260/night", Description: "Superior room in the castle", Category: "Castle"},
	{ID: "superior-2", Name: "Superiorzimmer 2", Capacity: 2, Price: "€240-260/night", Description: "Superior room in the castle", Category: "Castle"},
	{ID: "komfort-1", Name: "Komfortzimmer 1", Capacity: 2, Price: "€220-240/night", Description: "Comfort room in the castle", Category: "Castle"},
	{ID: "komfort-2", Name: "Komfortzimmer 2", Capacity: 2, Price: "€220-240/night", Description: "Comfort room in the castle", Category: "Castle"},
	{ID: "komfort-3", Name: "Komfortzimmer 3", Capacity: 2, Price: "€220-240/night", Description: "Comfort room in the castle", Category: "Castle"},
	{ID: "panorama-suite", Name: "Panorama Suite", Capacity: 2, Price: "€490/night", Description: "Luxurious suite with panoramic vineyard views", Category: "Park Residence"},
	{ID: "junior-suite", Name: "Junior Suite", Capacity: 2, Price: "€270-340/night", Description: "Elegant junior suite", Category: "Park Residence"},
	{ID: "deluxe", Name: "De Luxe Zimmer", Capacity: 2, Price: "€250-270/night", Description: "Spacious deluxe room", Category: "Park Residence"},
	{ID: "gaestehaus-1", Name: "Gästehausszimmer (1.60m bed)", Capacity: 2, Price: "€180/night", Description: "Cozy guest house room with queen bed", Category: "Guest House"},
	{ID: "gaestehaus-2", Name: "Gästehausszimmer (1.40m bed)", Capacity: 2, Price: "€160-180/night", Description: "Cozy guest house room with double bed", Category: "Guest House"},
}

// KnownRoom reports whether a room id exists in the catalog
func KnownRoom(id string) bool {
	for _, r := range Rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}
