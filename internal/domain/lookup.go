package domain

// Lookup is a generic id+name reference row (genders, channels,
// governorates, districts, sub-districts, communities).
type Lookup struct {
	ID   int64
	Name string
}

// Project is a lookup with programme metadata attached. The metadata
// columns are nullable; project rows are loaded from programme data rather
// than written by the application.
type Project struct {
	ID        int64
	ShortName string
	Donor     *string
	Code      *string
	Sector    *string
	Title     *string
}

// Category classifies complaints and carries the SLA window used for
// due-date computation. A nil or zero limit means the default applies.
type Category struct {
	ID               int64
	Name             string
	WorkingDaysLimit *int
}
