package dto

// CreateStudentRequest carries the tuple for a new record. No field is
// required by the API: absent fields are stored as empty strings and take
// part in the duplicate check as such.
type CreateStudentRequest struct {
	Name string `json:"nama" example:"Budi Santoso"`
	NPM  string `json:"npm" example:"1906398765"`
	BID  string `json:"bid" example:"B-12"`
	Fak  string `json:"fak" example:"Ilmu Komputer"`
}

// UpdateStudentRequest carries the fields to replace on one record.
// Nil pointers mean "leave the stored value alone".
type UpdateStudentRequest struct {
	Name *string `json:"nama,omitempty" example:"Budi Santoso"`
	NPM  *string `json:"npm,omitempty" example:"1906398765"`
	BID  *string `json:"bid,omitempty" example:"B-12"`
	Fak  *string `json:"fak,omitempty" example:"Ilmu Komputer"`
}
