package types

// UserProfile is the minimal profile kept in the key-value collaborator.
type UserProfile struct {
	Name     string `json:"name"`
	HomeCity string `json:"homeCity"`
}
