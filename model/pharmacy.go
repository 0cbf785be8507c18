package model

type Pharmacy struct {
	PharmacyID string  `bson:"_id,omitempty" json:"id"`
	Name       string  `bson:"name" json:"name"`
	Address    string  `bson:"address" json:"address"`
	Phone      string  `bson:"phone" json:"phone"`
	District   string  `bson:"district" json:"district"`
	City       string  `bson:"city" json:"city"`
	Latitude   float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}
