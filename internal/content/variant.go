package content

// Variant is either a LegacyRecord or a StructuredRecord.
type Variant interface {
	record() Record
}

// LegacyRecord stores its counts as free text in Features.
type LegacyRecord struct {
	Record
}

// StructuredRecord stores its counts in typed columns, schedule or metadata.
type StructuredRecord struct {
	Record
}

func (v LegacyRecord) record() Record     { return v.Record }
func (v StructuredRecord) record() Record { return v.Record }

var structuredMetadataKeys = []string{
	"nutrition_consultations",
	"sessions_count",
	"pt_sessions_included",
	"guest_invites",
	"freeze_weeks",
	"experience_years",
	"specialization",
}

// Classify decides the schema generation of r from the fields it populates.
// A row is legacy only when it carries a features list and nothing typed.
func Classify(r Record) Variant {
	if len(r.Features) > 0 && !r.hasStructuredFields() {
		return LegacyRecord{r}
	}
	return StructuredRecord{r}
}

func (r Record) hasStructuredFields() bool {
	if r.PTSessionsIncluded.Valid || r.GuestInvites.Valid || r.FreezeWeeks.Valid ||
		r.SessionsCount.Valid || r.YearsExperience.Valid || r.DurationMinutes.Valid ||
		r.DayOfWeek.Valid || r.Time.Valid {
		return true
	}
	if len(r.Schedule) > 0 {
		return true
	}
	for _, k := range structuredMetadataKeys {
		if _, ok := r.Metadata[k]; ok {
			return true
		}
	}
	return false
}
