package booking

type Kind string

const (
	KindMembership       Kind = "membership"
	KindPersonalTraining Kind = "personal_training"
)

// Link is a prepared deep link into the booking conversation.
type Link struct {
	Kind    Kind   `json:"kind" example:"membership"`
	URL     string `json:"url" example:"https://wa.me/201507817517?text=Hello"`
	Message string `json:"message" example:"Hello, I would like to book the 3 Months offer."`
}
