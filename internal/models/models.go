package models

// Contact represents a person in the address book.
type Contact struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Email     *string `db:"email" json:"email,omitempty"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
	Position  *string `db:"position" json:"position,omitempty"`
	CreatedAt string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt string  `db:"updated_at" json:"updated_at,omitempty"`
}

// ContactInput is the payload for contact create and update requests.
// Optional fields left nil are stored as NULL (full-replace semantics).
type ContactInput struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
}

// Organization types recognized by the system.
const (
	OrgTypeSchool       = "school"
	OrgTypeTrust        = "trust"
	OrgTypeOrganization = "organization"
)

// Organization represents a school, trust or other organization.
type Organization struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Type      string  `db:"type" json:"type"`
	Address   *string `db:"address" json:"address,omitempty"`
	Website   *string `db:"website" json:"website,omitempty"`
	CreatedAt string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt string  `db:"updated_at" json:"updated_at,omitempty"`
}

// OrganizationInput is the payload for organization create and update requests.
type OrganizationInput struct {
	Name    string  `json:"name" validate:"required"`
	Type    string  `json:"type" validate:"required,oneof=school trust organization"`
	Address *string `json:"address"`
	Website *string `json:"website"`
}

// Interaction is a recorded event (meeting, call, note) optionally linked to
// one contact and/or one organization. ContactName, OrganizationName and
// OrganizationType are read-side projections joined in on every read, never
// stored. Tags is the current tag-name set from the association table.
type Interaction struct {
	ID               int64    `db:"id" json:"id"`
	Title            string   `db:"title" json:"title"`
	Date             string   `db:"date" json:"date"`
	Notes            *string  `db:"notes" json:"notes,omitempty"`
	Actions          *string  `db:"actions" json:"actions,omitempty"`
	ContactID        *int64   `db:"contact_id" json:"contact_id,omitempty"`
	OrganizationID   *int64   `db:"organization_id" json:"organization_id,omitempty"`
	CreatedAt        string   `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt        string   `db:"updated_at" json:"updated_at,omitempty"`
	ContactName      *string  `db:"contact_name" json:"contact_name,omitempty"`
	OrganizationName *string  `db:"organization_name" json:"organization_name,omitempty"`
	OrganizationType *string  `db:"organization_type" json:"organization_type,omitempty"`
	Tags             []string `db:"-" json:"tags"`
}

// InteractionInput is the payload for interaction create and update requests.
// Tags distinguishes absent from empty: a nil pointer on update leaves the
// existing associations untouched, an empty slice clears them.
type InteractionInput struct {
	Title          string    `json:"title" validate:"required"`
	Date           string    `json:"date"`
	Notes          *string   `json:"notes"`
	Actions        *string   `json:"actions"`
	ContactID      *int64    `json:"contact_id"`
	OrganizationID *int64    `json:"organization_id"`
	Tags           *[]string `json:"tags"`
}

// Tag is a shared reusable label, many-to-many with interactions.
type Tag struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at,omitempty"`
}

// DeleteAck acknowledges a successful delete.
type DeleteAck struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// LoginPayload for incoming login requests.
type LoginPayload struct {
	Password string `json:"password" validate:"required"`
}

// EnvParams holds configuration loaded from the environment at startup.
type EnvParams struct {
	DbPath       string
	JWTSecret    string
	PasswordHash string
	ApiPort      string
	DataPath     string
	KeyFilePath  string
	CertFilePath string
}

const (
	DefaultApiPort  = "9080"
	DefaultDataPath = "./data"
)

const StartupText = `pocket-crm | personal contact ledger`
