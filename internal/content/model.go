package content

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DataType string

const (
	DataTypeCoach      DataType = "coach"
	DataTypeClass      DataType = "class"
	DataTypeMembership DataType = "membership"
	DataTypePTPackage  DataType = "pt_package"
	DataTypeOffer      DataType = "offer"
)

// Metadata is a jsonb column holding type-specific keys.
type Metadata map[string]interface{}

func (m *Metadata) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("metadata: unsupported scan type")
	}
	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, m)
}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Record is one raw branch_data row. Either schema generation may be populated.
type Record struct {
	ID       uuid.UUID `db:"id"`
	BranchID uuid.UUID `db:"branch_id"`
	DataType DataType  `db:"data_type"`

	Name          sql.NullString `db:"name"`
	Description   sql.NullString `db:"description"`
	TitleEn       sql.NullString `db:"title_en"`
	TitleAr       sql.NullString `db:"title_ar"`
	DescriptionEn sql.NullString `db:"description_en"`
	DescriptionAr sql.NullString `db:"description_ar"`

	Price         sql.NullFloat64 `db:"price"`
	OriginalPrice sql.NullFloat64 `db:"original_price"`
	Features      pq.StringArray  `db:"features"`

	ImageURL        sql.NullString `db:"image_url"`
	Role            sql.NullString `db:"role"`
	Specialization  sql.NullString `db:"specialization"`
	YearsExperience sql.NullInt64  `db:"years_experience"`

	DayOfWeek       sql.NullString `db:"day_of_week"`
	Time            sql.NullString `db:"time"`
	DurationMinutes sql.NullInt64  `db:"duration_minutes"`
	CoachName       sql.NullString `db:"coach_name"`
	ClassType       sql.NullString `db:"class_type"`
	BookingRequired sql.NullBool   `db:"booking_required"`

	SessionsCount      sql.NullInt64 `db:"sessions_count"`
	PTSessionsIncluded sql.NullInt64 `db:"pt_sessions_included"`
	GuestInvites       sql.NullInt64 `db:"guest_invites"`
	FreezeWeeks        sql.NullInt64 `db:"freeze_weeks"`

	DiscountPercentage sql.NullFloat64 `db:"discount_percentage"`
	DiscountAmount     sql.NullFloat64 `db:"discount_amount"`
	ValidFrom          sql.NullTime    `db:"valid_from"`
	ValidUntil         sql.NullTime    `db:"valid_until"`
	ApplicableTo       sql.NullString  `db:"applicable_to"`
	TermsConditions    sql.NullString  `db:"terms_conditions"`
	PromoCode          sql.NullString  `db:"promo_code"`

	Schedule Metadata `db:"schedule"`
	Metadata Metadata `db:"metadata"`

	DisplayOrder int  `db:"display_order"`
	IsActive     bool `db:"is_active"`
}

type FetchOptions struct {
	OrderBy    string
	Descending bool
	Limit      int
	OfferType  string
}

type Offer struct {
	ID        uuid.UUID `json:"id"`
	Duration  string    `json:"duration"`
	TitleAr   string    `json:"title_ar,omitempty"`
	Price     string    `json:"price"`
	PriceNew  string    `json:"price_new"`
	Private   string    `json:"private"`
	Invite    string    `json:"invite"`
	Freezing  string    `json:"freezing"`
	Nutrition string    `json:"nutrition"`
	Features  []string  `json:"features"`
	Metadata  Metadata  `json:"metadata,omitempty"`
}

// Discounted reports whether the offer carries a struck-through price.
func (o Offer) Discounted() bool {
	return o.PriceNew != noDiscount
}

type PtPackage struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title,omitempty"`
	Sessions      int       `json:"sessions"`
	Price         string    `json:"price"`
	PriceDiscount string    `json:"price_discount"`
	Metadata      Metadata  `json:"metadata,omitempty"`
}

type Coach struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Img             string    `json:"img"`
	Title           string    `json:"title"`
	Specialization  string    `json:"specialization,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
}

type ClassSession struct {
	ID        uuid.UUID `json:"id"`
	ClassName string    `json:"classname"`
	Day       string    `json:"day"`
	Time      string    `json:"time1"`
	Duration  int       `json:"duration,omitempty"`
	CoachName string    `json:"coachname"`
	Mix       string    `json:"mix"`
	Members   bool      `json:"mem"`
	Metadata  Metadata  `json:"metadata,omitempty"`
}

type SpecialOffer struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Img                string     `json:"img,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	OriginalPrice      *float64   `json:"original_price,omitempty"`
	Features           []string   `json:"features"`
	DiscountPercentage *float64   `json:"discount_percentage,omitempty"`
	DiscountAmount     *float64   `json:"discount_amount,omitempty"`
	ValidFrom          *time.Time `json:"valid_from,omitempty"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	ApplicableTo       string     `json:"applicable_to,omitempty"`
	TermsConditions    string     `json:"terms_conditions,omitempty"`
	TermsHTML          string     `json:"terms_html,omitempty"`
	PromoCode          string     `json:"promo_code,omitempty"`
	OfferType          string     `json:"offer_type,omitempty"`
	DisplayOrder       int        `json:"display_order"`
}
