package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Listing statuses as stored in the datastore.
const (
	StatusActive  = "Active"
	StatusClosed  = "Closed"
	StatusSold    = "Sold"
	StatusPending = "Pending"
)

// PropertyTypeResidential is the only property type comps are drawn from.
const PropertyTypeResidential = "Residential"

type Property struct {
	ID              int64      `gorm:"primaryKey" json:"id"`
	ListingKey      string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"listing_key"`
	ListingID       string     `gorm:"type:varchar(64)" json:"listing_id"`
	Slug            string     `gorm:"type:varchar(255);index" json:"slug"`
	UnparsedAddress string     `json:"unparsed_address"`
	City            string     `gorm:"type:varchar(128);index" json:"city"`
	StateOrProvince string     `json:"state_or_province"`
	PostalCode      string     `json:"postal_code"`
	SubdivisionName string     `gorm:"type:varchar(128);index" json:"subdivision_name"`
	PropertyType    string     `gorm:"type:varchar(32);index" json:"property_type"`
	StandardStatus  string     `gorm:"type:varchar(32);index" json:"standard_status"`
	ListPrice       *float64   `json:"list_price"`
	OriginalPrice   *float64   `gorm:"column:original_list_price" json:"original_list_price"`
	ClosePrice      *float64   `json:"close_price"`
	Bedrooms        *int       `gorm:"column:bedrooms_total" json:"bedrooms_total"`
	Bathrooms       *float64   `gorm:"column:bathrooms_total" json:"bathrooms_total"`
	LivingArea      *float64   `json:"living_area"`
	LotSizeSqft     *float64   `gorm:"column:lot_size_sqft" json:"lot_size_sqft"`
	YearBuilt       *int       `json:"year_built"`
	GarageSpaces    *float64   `json:"garage_spaces"`
	Pool            bool       `gorm:"column:pool_yn" json:"pool_yn"`
	Spa             bool       `gorm:"column:spa_yn" json:"spa_yn"`
	Latitude        *float64   `gorm:"index:idx_properties_coordinates" json:"latitude"`
	Longitude       *float64   `gorm:"index:idx_properties_coordinates" json:"longitude"`
	DaysOnMarket    *int       `json:"days_on_market"`
	OnMarketDate    *time.Time `gorm:"index" json:"on_market_date"`
	CloseDate       *time.Time `json:"close_date"`
	AssociationFee  *float64   `json:"association_fee"`
	TaxAmount       *float64   `json:"tax_annual_amount"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// BeforeSave derives the address slug used for subject lookups.
func (p *Property) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" && p.UnparsedAddress != "" {
		p.Slug = Slugify(p.UnparsedAddress)
	}
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases an address and collapses everything that is not a
// letter or digit into single dashes.
func Slugify(address string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(address), "-")
	return strings.Trim(s, "-")
}

// FinalPrice is the close price when the property sold, otherwise the list price.
func (p *Property) FinalPrice() *float64 {
	if p.ClosePrice != nil && *p.ClosePrice > 0 {
		return p.ClosePrice
	}
	return p.ListPrice
}

// PricePerSqft returns the final price over living area, or false when
// either is missing.
func (p *Property) PricePerSqft() (float64, bool) {
	price := p.FinalPrice()
	if price == nil || *price <= 0 || p.LivingArea == nil || *p.LivingArea <= 0 {
		return 0, false
	}
	return *price / *p.LivingArea, true
}

// IsActive reports whether the listing is currently on the market.
func (p *Property) IsActive() bool {
	return p.StandardStatus == StatusActive
}

// IsClosed reports whether the listing has sold.
func (p *Property) IsClosed() bool {
	return p.StandardStatus == StatusClosed || p.StandardStatus == StatusSold
}

// HasCoordinates reports whether both latitude and longitude are known.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
