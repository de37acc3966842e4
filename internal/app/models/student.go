package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student defines one student record in the mahasiswa collection.
// Wire names follow the legacy API contract: nama, npm, bid, fak.
type Student struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // Generated identifier
	Name string             `json:"nama" bson:"name"`                  // Student name
	NPM  string             `json:"npm" bson:"npm"`                    // Student number
	BID  string             `json:"bid" bson:"bid"`                    // Group/batch id
	Fak  string             `json:"fak" bson:"fak"`                    // Faculty
}
