package note

// Note is a free-text clinical note attached to a patient by value; the id
// is assigned by the store. The body travels as "e" on the wire, the field
// name the historical note documents were written with.
type Note struct {
	ID        string `json:"id,omitempty"`
	PatientID int    `json:"patId"`
	Text      string `json:"e"`
}
