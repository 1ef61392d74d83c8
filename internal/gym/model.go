package gym

import "github.com/google/uuid"

type Gym struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Slug   string    `db:"slug" json:"slug"`
	NameEn string    `db:"name_en" json:"name_en"`
	NameAr string    `db:"name_ar" json:"name_ar"`
}

type Branch struct {
	ID        uuid.UUID `db:"id" json:"id"`
	GymID     uuid.UUID `db:"gym_id" json:"gym_id"`
	GymSlug   string    `db:"gym_slug" json:"gym_slug"`
	Slug      string    `db:"slug" json:"slug"`
	NameEn    string    `db:"name_en" json:"name_en"`
	NameAr    string    `db:"name_ar" json:"name_ar"`
	AddressEn *string   `db:"address_en" json:"address_en,omitempty"`
	AddressAr *string   `db:"address_ar" json:"address_ar,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}
