package domain

import (
	"bytes"
	"encoding/json"
)

// UserRef references a user document. It serializes as the bare id unless
// the referenced user has been populated with a name or email.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

type populatedRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Populated reports whether name or email were loaded.
func (r UserRef) Populated() bool {
	return r.Name != "" || r.Email != ""
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if !r.Populated() {
		return json.Marshal(r.ID)
	}
	return json.Marshal(populatedRef{r.ID, r.Name, r.Email})
}

// UnmarshalJSON accepts both forms written by MarshalJSON.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = UserRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{ID: id}
		return nil
	}
	var p populatedRef
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = UserRef{ID: p.ID, Name: p.Name, Email: p.Email}
	return nil
}
