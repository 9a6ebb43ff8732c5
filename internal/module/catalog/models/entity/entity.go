package entity

import (
	"database/sql"
	"strings"
	"time"
	"unicode"

	"github.com/lib/pq"
)

// Source describes how one catalog collection is reached. The set is closed
// and resolved once at startup, unknown tags are rejected up front. Columns
// is the whitelist admin writes go through, SearchCols feed the ILIKE
// filters, Routed marks collections with a from/to leg.
type Source struct {
	Table       string
	NameCol     string
	ImageCol    string
	Bookable    bool
	HasFeatured bool
	Routed      bool
	SearchCols  []string
	Columns     []string
}

var Sources = map[string]Source{
	"hotel": {
		Table: "hotels", NameCol: "name", ImageCol: "image", Bookable: true, HasFeatured: true,
		SearchCols: []string{"name", "location"},
		Columns:    []string{"name", "image", "location", "rating", "price", "price_value", "amenities", "green_score", "description", "featured", "available"},
	},
	"flight": {
		Table: "flights", NameCol: "airline", ImageCol: "image", Bookable: true, Routed: true,
		SearchCols: []string{"airline", "from_city", "to_city"},
		Columns:    []string{"airline", "from_city", "to_city", "departure", "arrival", "duration", "price", "price_value", "class", "stops", "image", "available"},
	},
	"train": {
		Table: "trains", NameCol: "name", ImageCol: "image", Bookable: true, Routed: true,
		SearchCols: []string{"name", "from_city", "to_city"},
		Columns:    []string{"name", "train_no", "from_city", "to_city", "departure", "arrival", "duration", "price", "price_value", "class", "availability", "image"},
	},
	"bus": {
		Table: "buses", NameCol: "operator", ImageCol: "image", Bookable: true, Routed: true,
		SearchCols: []string{"operator", "from_city", "to_city"},
		Columns:    []string{"operator", "type", "from_city", "to_city", "departure", "arrival", "duration", "price", "price_value", "seats", "rating", "image"},
	},
	"taxi": {
		Table: "taxis", NameCol: "type", ImageCol: "image", Bookable: true,
		SearchCols: []string{"type", "model"},
		Columns:    []string{"type", "model", "capacity", "price_per_km", "base_price", "base_price_value", "image", "features", "rating", "eco", "available"},
	},
	"restaurant": {
		Table: "restaurants", NameCol: "name", ImageCol: "image", Bookable: true, HasFeatured: true,
		SearchCols: []string{"name", "location", "cuisine"},
		Columns:    []string{"name", "image", "cuisine", "location", "rating", "price_range", "specialty", "description", "open_hours", "featured"},
	},
	"guide": {
		Table: "guides", NameCol: "name", ImageCol: "image", Bookable: true,
		SearchCols: []string{"name", "location"},
		Columns:    []string{"name", "image", "location", "rating", "tours", "specialty", "languages", "price", "price_value", "price_unit", "description", "verified"},
	},
	"destination": {
		Table: "destinations", NameCol: "name", ImageCol: "image", Bookable: false, HasFeatured: true,
		SearchCols: []string{"name", "location"},
		Columns:    []string{"name", "image", "location", "rating", "description", "featured"},
	},
}

// ResolveSource returns the catalog source for a service type tag.
func ResolveSource(serviceType string) (Source, bool) {
	src, ok := Sources[serviceType]
	return src, ok
}

// wire keys that do not snake-case onto their column
var columnAliases = map[string]string{
	"from": "from_city",
	"to":   "to_city",
}

// NormalizeColumn maps a JSON body key onto a writable column of this source.
// Keys that resolve outside the whitelist are dropped, never interpolated.
func (s Source) NormalizeColumn(key string) (string, bool) {
	col, ok := columnAliases[key]
	if !ok {
		col = toSnake(key)
	}
	for _, c := range s.Columns {
		if c == col {
			return col, true
		}
	}
	return "", false
}

// HasColumn reports whether the source table carries the given column.
func (s Source) HasColumn(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

func toSnake(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SearchFilter narrows a public catalog search. From and To only apply to
// routed sources, Location to sources that carry one.
type SearchFilter struct {
	Query    string
	Location string
	From     string
	To       string
}

// ServiceSummary is the denormalized snapshot a booking captures.
type ServiceSummary struct {
	ID    string `db:"id"`
	Name  string `db:"display_name"`
	Image string `db:"image"`
}

type Hotel struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Image       string         `db:"image" json:"image"`
	Location    string         `db:"location" json:"location"`
	Rating      float64        `db:"rating" json:"rating"`
	Price       string         `db:"price" json:"price"`
	PriceValue  float64        `db:"price_value" json:"priceValue"`
	Amenities   pq.StringArray `db:"amenities" json:"amenities"`
	GreenScore  sql.NullString `db:"green_score" json:"greenScore"`
	Description sql.NullString `db:"description" json:"description"`
	Featured    bool           `db:"featured" json:"featured"`
	Available   bool           `db:"available" json:"available"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Flight struct {
	ID         string         `db:"id" json:"id"`
	Airline    string         `db:"airline" json:"airline"`
	From       string         `db:"from_city" json:"from"`
	To         string         `db:"to_city" json:"to"`
	Departure  string         `db:"departure" json:"departure"`
	Arrival    string         `db:"arrival" json:"arrival"`
	Duration   string         `db:"duration" json:"duration"`
	Price      string         `db:"price" json:"price"`
	PriceValue float64        `db:"price_value" json:"priceValue"`
	Class      string         `db:"class" json:"class"`
	Stops      string         `db:"stops" json:"stops"`
	Image      sql.NullString `db:"image" json:"image"`
	Available  bool           `db:"available" json:"available"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt  sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Train struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	TrainNo      string         `db:"train_no" json:"trainNo"`
	From         string         `db:"from_city" json:"from"`
	To           string         `db:"to_city" json:"to"`
	Departure    string         `db:"departure" json:"departure"`
	Arrival      string         `db:"arrival" json:"arrival"`
	Duration     string         `db:"duration" json:"duration"`
	Price        string         `db:"price" json:"price"`
	PriceValue   float64        `db:"price_value" json:"priceValue"`
	Class        string         `db:"class" json:"class"`
	Availability string         `db:"availability" json:"availability"`
	Image        sql.NullString `db:"image" json:"image"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Bus struct {
	ID         string         `db:"id" json:"id"`
	Operator   string         `db:"operator" json:"operator"`
	Type       string         `db:"type" json:"type"`
	From       string         `db:"from_city" json:"from"`
	To         string         `db:"to_city" json:"to"`
	Departure  string         `db:"departure" json:"departure"`
	Arrival    string         `db:"arrival" json:"arrival"`
	Duration   string         `db:"duration" json:"duration"`
	Price      string         `db:"price" json:"price"`
	PriceValue float64        `db:"price_value" json:"priceValue"`
	Seats      int            `db:"seats" json:"seats"`
	Rating     float64        `db:"rating" json:"rating"`
	Image      sql.NullString `db:"image" json:"image"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt  sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Taxi struct {
	ID             string         `db:"id" json:"id"`
	Type           string         `db:"type" json:"type"`
	Model          string         `db:"model" json:"model"`
	Capacity       string         `db:"capacity" json:"capacity"`
	PricePerKm     string         `db:"price_per_km" json:"pricePerKm"`
	BasePrice      string         `db:"base_price" json:"basePrice"`
	BasePriceValue float64        `db:"base_price_value" json:"basePriceValue"`
	Image          sql.NullString `db:"image" json:"image"`
	Features       pq.StringArray `db:"features" json:"features"`
	Rating         float64        `db:"rating" json:"rating"`
	Eco            bool           `db:"eco" json:"eco"`
	Available      bool           `db:"available" json:"available"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Restaurant struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Image       string         `db:"image" json:"image"`
	Cuisine     string         `db:"cuisine" json:"cuisine"`
	Location    string         `db:"location" json:"location"`
	Rating      float64        `db:"rating" json:"rating"`
	PriceRange  string         `db:"price_range" json:"priceRange"`
	Specialty   sql.NullString `db:"specialty" json:"specialty"`
	Description sql.NullString `db:"description" json:"description"`
	OpenHours   sql.NullString `db:"open_hours" json:"openHours"`
	Featured    bool           `db:"featured" json:"featured"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Guide struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Image       sql.NullString `db:"image" json:"image"`
	Location    string         `db:"location" json:"location"`
	Rating      float64        `db:"rating" json:"rating"`
	Tours       int            `db:"tours" json:"tours"`
	Specialty   sql.NullString `db:"specialty" json:"specialty"`
	Languages   pq.StringArray `db:"languages" json:"languages"`
	Price       string         `db:"price" json:"price"`
	PriceValue  float64        `db:"price_value" json:"priceValue"`
	PriceUnit   string         `db:"price_unit" json:"priceUnit"`
	Description sql.NullString `db:"description" json:"description"`
	Verified    bool           `db:"verified" json:"verified"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   sql.NullTime   `db:"updated_at" json:"updatedAt"`
}

type Destination struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Image       string         `db:"image" json:"image"`
	Location    string         `db:"location" json:"location"`
	Rating      float64        `db:"rating" json:"rating"`
	Description sql.NullString `db:"description" json:"description"`
	Featured    bool           `db:"featured" json:"featured"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   sql.NullTime   `db:"updated_at" json:"updatedAt"`
}
