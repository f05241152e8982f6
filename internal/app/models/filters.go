package models

// CourseFilter narrows course listings. SpecializationSlug matches the joined specialization.
type CourseFilter struct {
	ActiveOnly         bool
	SpecializationSlug string
}

// TeamFilter narrows team listings
type TeamFilter struct {
	ActiveOnly bool
	Category   TeamCategory
}

// MediaFilter narrows media listings. Query matches asset name or key, case-insensitively.
// A zero Limit returns every match.
type MediaFilter struct {
	Section    string
	Query      string
	ActiveOnly bool
	Offset     uint64
	Limit      int
}
