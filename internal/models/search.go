package models

// ContactHit is a contact row matched by search. Type is the literal
// "contact" discriminator selected alongside the row.
type ContactHit struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Email    *string `db:"email" json:"email,omitempty"`
	Phone    *string `db:"phone" json:"phone,omitempty"`
	Position *string `db:"position" json:"position,omitempty"`
	Type     string  `db:"type" json:"type"`
}

// OrganizationHit is an organization row matched by search. Type here is the
// organization's own type column; ResultType is the discriminator.
type OrganizationHit struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Type       string  `db:"type" json:"type"`
	Address    *string `db:"address" json:"address,omitempty"`
	Website    *string `db:"website" json:"website,omitempty"`
	ResultType string  `db:"result_type" json:"result_type"`
}

// InteractionHit is an interaction row matched by search, either directly
// ("interaction") or through one of its tags ("tag"). TagName is only set on
// tag matches.
type InteractionHit struct {
	ID               int64   `db:"id" json:"id"`
	Title            string  `db:"title" json:"title"`
	Date             string  `db:"date" json:"date"`
	Notes            *string `db:"notes" json:"notes,omitempty"`
	Actions          *string `db:"actions" json:"actions,omitempty"`
	ContactName      *string `db:"contact_name" json:"contact_name,omitempty"`
	OrganizationName *string `db:"organization_name" json:"organization_name,omitempty"`
	TagName          *string `db:"tag_name" json:"tag_name,omitempty"`
	ResultType       string  `db:"result_type" json:"result_type"`
}

// SearchResults groups the per-category match collections.
type SearchResults struct {
	Contacts      []ContactHit      `json:"contacts"`
	Organizations []OrganizationHit `json:"organizations"`
	Interactions  []InteractionHit  `json:"interactions"`
}

// SearchCount carries per-category counts and their sum. Total is the plain
// sum of the three categories, not deduplicated across them.
type SearchCount struct {
	Contacts      int `json:"contacts"`
	Organizations int `json:"organizations"`
	Interactions  int `json:"interactions"`
	Total         int `json:"total"`
}

// SearchResponse is the full search result payload.
type SearchResponse struct {
	Results SearchResults `json:"results"`
	Count   SearchCount   `json:"count"`
}
