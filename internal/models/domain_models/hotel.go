package domain_models

type HotelOption struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	StarRating    int      `json:"star_rating"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	GuestRating   float64  `json:"guest_rating"`
	RoomType      string   `json:"room_type"`
}
