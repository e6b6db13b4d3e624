package model

// Kind names one of the closed set of entity categories the registry knows.
type Kind string

const (
	KindBaseModel Kind = "BaseModel"
	KindUser      Kind = "User"
	KindState     Kind = "State"
	KindCity      Kind = "City"
	KindAmenity   Kind = "Amenity"
	KindPlace     Kind = "Place"
	KindReview    Kind = "Review"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks whether the kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindBaseModel, KindUser, KindState, KindCity, KindAmenity, KindPlace, KindReview:
		return true
	}
	return false
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindBaseModel, KindUser, KindState, KindCity, KindAmenity, KindPlace, KindReview}
}

// defaultFields returns a fresh copy of the kind's default field schema.
// The zero values pin each field's type so later updates coerce against it.
func defaultFields(k Kind) map[string]Value {
	switch k {
	case KindUser:
		return map[string]Value{
			"email":      String(""),
			"password":   String(""),
			"first_name": String(""),
			"last_name":  String(""),
		}
	case KindState:
		return map[string]Value{
			"name": String(""),
		}
	case KindCity:
		return map[string]Value{
			"state_id": String(""),
			"name":     String(""),
		}
	case KindAmenity:
		return map[string]Value{
			"name": String(""),
		}
	case KindPlace:
		return map[string]Value{
			"city_id":          String(""),
			"user_id":          String(""),
			"name":             String(""),
			"description":      String(""),
			"number_rooms":     Number(0),
			"number_bathrooms": Number(0),
			"max_guest":        Number(0),
			"price_by_night":   Number(0),
			"latitude":         Number(0),
			"longitude":        Number(0),
			"amenity_ids":      Strings(nil),
		}
	case KindReview:
		return map[string]Value{
			"place_id": String(""),
			"user_id":  String(""),
			"text":     String(""),
		}
	}
	return map[string]Value{}
}
