package content

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

const noDiscount = "0"

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// markdown applies the struck-through price policy: a row is discounted
// exactly when original_price is set and greater than price.
func markdown(price, original sql.NullFloat64) (shown, current string) {
	if original.Valid && price.Valid && original.Float64 > price.Float64 {
		return formatPrice(original.Float64), formatPrice(price.Float64)
	}
	switch {
	case price.Valid:
		return formatPrice(price.Float64), noDiscount
	case original.Valid:
		return formatPrice(original.Float64), noDiscount
	default:
		return "0", noDiscount
	}
}

func firstString(values ...sql.NullString) string {
	for _, v := range values {
		if v.Valid && v.String != "" {
			return v.String
		}
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (m Metadata) GetString(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

func (m Metadata) GetInt(key string) (int, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m Metadata) GetStrings(key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intString(v sql.NullInt64) string {
	if !v.Valid {
		return "0"
	}
	return strconv.FormatInt(v.Int64, 10)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toOffer(v Variant) Offer {
	r := v.record()
	price, priceNew := markdown(r.Price, r.OriginalPrice)
	o := Offer{
		ID:       r.ID,
		TitleAr:  r.TitleAr.String,
		Price:    price,
		PriceNew: priceNew,
		Metadata: r.Metadata,
	}

	switch v := v.(type) {
	case LegacyRecord:
		o.Duration = orDefault(firstString(v.TitleEn, v.Name), "Membership")
		o.Private = ExtractPTSessions(v.Features)
		o.Invite = ExtractInvitations(v.Features)
		o.Freezing = ExtractFreezing(v.Features)
		o.Nutrition = ExtractNutrition(v.Features)
		o.Features = nonNil(v.Features)
	case StructuredRecord:
		o.Duration = orDefault(firstString(v.Name, v.TitleEn), "Membership")
		o.Private = intString(v.PTSessionsIncluded)
		if !v.PTSessionsIncluded.Valid {
			o.Private = orDefault(v.Metadata.GetString("pt_sessions_included"), "0")
		}
		o.Invite = intString(v.GuestInvites)
		if v.FreezeWeeks.Valid {
			o.Freezing = fmt.Sprintf("%d Weeks", v.FreezeWeeks.Int64)
		}
		o.Nutrition = orDefault(v.Metadata.GetString("nutrition_consultations"), "0")
		o.Features = nonNil(v.Metadata.GetStrings("features"))
	}

	return o
}

func toPtPackage(v Variant) PtPackage {
	r := v.record()
	price, discount := markdown(r.Price, r.OriginalPrice)
	p := PtPackage{
		ID:            r.ID,
		Title:         firstString(r.TitleEn, r.Name),
		Price:         price,
		PriceDiscount: discount,
		Metadata:      r.Metadata,
	}

	switch v := v.(type) {
	case LegacyRecord:
		sessions := ExtractPTSessions(v.Features)
		if sessions == "0" && p.Title != "" {
			sessions = ExtractPTSessions([]string{p.Title})
		}
		p.Sessions, _ = strconv.Atoi(sessions)
	case StructuredRecord:
		if v.SessionsCount.Valid {
			p.Sessions = int(v.SessionsCount.Int64)
		} else if n, ok := v.Metadata.GetInt("sessions_count"); ok {
			p.Sessions = n
		}
	}

	return p
}

func toCoach(v Variant, media *MediaResolver) Coach {
	r := v.record()
	c := Coach{
		ID:  r.ID,
		Img: media.URL(r.ImageURL.String),
	}

	switch v := v.(type) {
	case LegacyRecord:
		c.Name = orDefault(firstString(v.TitleEn, v.Name), "Coach")
		c.Title = orDefault(firstString(v.DescriptionEn, v.Description, v.Role), "Fitness Trainer")
	case StructuredRecord:
		c.Name = orDefault(firstString(v.Name, v.TitleEn), "Coach")
		c.Title = orDefault(v.Role.String, "Fitness Trainer")
		c.Specialization = orDefault(v.Specialization.String, v.Metadata.GetString("specialization"))
		if v.YearsExperience.Valid {
			n := int(v.YearsExperience.Int64)
			c.ExperienceYears = &n
		} else if n, ok := v.Metadata.GetInt("experience_years"); ok {
			c.ExperienceYears = &n
		}
	}

	return c
}

func toClassSession(v Variant) ClassSession {
	r := v.record()
	s := ClassSession{
		ID:       r.ID,
		Metadata: r.Metadata,
	}

	switch v := v.(type) {
	case LegacyRecord:
		// legacy class rows carry no schedule; only the listing fields survive
		s.ClassName = orDefault(firstString(v.TitleEn, v.Name), "Class")
		s.CoachName = v.Metadata.GetString("coach_name")
		s.Mix = orDefault(v.Metadata.GetString("class_type"), "Mixed")
		s.Members = cast.ToBool(v.Metadata["booking_required"])
	case StructuredRecord:
		s.ClassName = orDefault(firstString(v.Name, v.TitleEn), "Class")
		s.Day = orDefault(v.DayOfWeek.String, v.Schedule.GetString("day_of_week"))
		s.Time = orDefault(v.Time.String, v.Schedule.GetString("time"))
		if v.DurationMinutes.Valid {
			s.Duration = int(v.DurationMinutes.Int64)
		} else {
			s.Duration, _ = v.Schedule.GetInt("duration_minutes")
		}
		s.CoachName = orDefault(v.CoachName.String, v.Metadata.GetString("coach_name"))
		s.Mix = orDefault(v.ClassType.String, "Mixed")
		s.Members = v.BookingRequired.Valid && v.BookingRequired.Bool
	}

	return s
}

func toSpecialOffer(v Variant, media *MediaResolver) SpecialOffer {
	r := v.record()
	o := SpecialOffer{
		ID:                 r.ID,
		Img:                media.URL(r.ImageURL.String),
		Price:              floatPtr(r.Price),
		OriginalPrice:      floatPtr(r.OriginalPrice),
		DiscountPercentage: floatPtr(r.DiscountPercentage),
		DiscountAmount:     floatPtr(r.DiscountAmount),
		ApplicableTo:       r.ApplicableTo.String,
		TermsConditions:    r.TermsConditions.String,
		TermsHTML:          renderTerms(r.TermsConditions.String),
		PromoCode:          r.PromoCode.String,
		OfferType:          r.Metadata.GetString("offer_type"),
		DisplayOrder:       r.DisplayOrder,
	}
	if r.ValidFrom.Valid {
		t := r.ValidFrom.Time
		o.ValidFrom = &t
	}
	if r.ValidUntil.Valid {
		t := r.ValidUntil.Time
		o.ValidUntil = &t
	}

	switch v := v.(type) {
	case LegacyRecord:
		o.Name = firstString(v.TitleEn, v.Name)
		o.Description = firstString(v.DescriptionEn, v.Description)
		o.Features = nonNil(v.Features)
	case StructuredRecord:
		o.Name = firstString(v.Name, v.TitleEn)
		o.Description = firstString(v.Description, v.DescriptionEn)
		o.Features = nonNil(v.Metadata.GetStrings("features"))
		if len(o.Features) == 0 {
			o.Features = nonNil(v.Features)
		}
	}

	return o
}
