package model

type Baggage struct {
	DTO
	Name string `gorm:"unique;not null" json:"name"` // cabin bag, checked 23kg...
}

// BaggageRule: per (airline, baggage type) size/weight limits and fees
type BaggageRule struct {
	DTO
	IdBaggageType uint     `gorm:"not null;uniqueIndex:uq_baggage_airline" json:"idBaggageType"`
	Baggage       Baggage  `gorm:"foreignKey:IdBaggageType" json:"baggage"`
	AirlineCode   string   `gorm:"size:2;not null;uniqueIndex:uq_baggage_airline" json:"airlineCode"`
	Airline       Airline  `gorm:"foreignKey:AirlineCode" json:"-"`
	MaxWeightKg   *int     `json:"maxWeightKg"`
	MaxLengthCm   int      `gorm:"not null" json:"maxLengthCm"`
	MaxWidthCm    int      `gorm:"not null" json:"maxWidthCm"`
	MaxHeightCm   int      `gorm:"not null" json:"maxHeightCm"`
	MaxLinearCm   *int     `json:"maxLinearCm"`
	OverWeightFee *float64 `json:"overWeightFee"`
	OverSizeFee   float64  `gorm:"not null" json:"overSizeFee"`
	BasePrice     float64  `gorm:"not null" json:"basePrice"`
	AllowExtra    bool     `gorm:"not null" json:"allowExtra"`
}

type CreateBaggageRuleInput struct {
	IdBaggageType uint     `json:"idBaggageType" validate:"required,gt=0"`
	AirlineCode   string   `json:"airlineCode" validate:"required,len=2"`
	MaxWeightKg   *int     `json:"maxWeightKg" validate:"omitempty,gt=0"`
	MaxLengthCm   int      `json:"maxLengthCm" validate:"required,gt=0"`
	MaxWidthCm    int      `json:"maxWidthCm" validate:"required,gt=0"`
	MaxHeightCm   int      `json:"maxHeightCm" validate:"required,gt=0"`
	MaxLinearCm   *int     `json:"maxLinearCm" validate:"omitempty,gt=0"`
	OverWeightFee *float64 `json:"overWeightFee" validate:"omitempty,gte=0"`
	OverSizeFee   float64  `json:"overSizeFee" validate:"gte=0"`
	BasePrice     float64  `json:"basePrice" validate:"gte=0"`
	AllowExtra    *bool    `json:"allowExtra" validate:"required"`
}

type EditBaggageRuleInput struct {
	IdBaggageRule uint     `json:"idBaggageRule" validate:"required,gt=0"`
	AirlineCode   string   `json:"airlineCode" validate:"required,len=2"`
	MaxWeightKg   *int     `json:"maxWeightKg"`
	MaxLengthCm   *int     `json:"maxLengthCm"`
	MaxWidthCm    *int     `json:"maxWidthCm"`
	MaxHeightCm   *int     `json:"maxHeightCm"`
	MaxLinearCm   *int     `json:"maxLinearCm"`
	OverWeightFee *float64 `json:"overWeightFee"`
	OverSizeFee   *float64 `json:"overSizeFee"`
	BasePrice     *float64 `json:"basePrice"`
	AllowExtra    *bool    `json:"allowExtra"`
}

// ClassBaggagePolicy: how many pieces of a baggage type a class includes for free
type ClassBaggagePolicy struct {
	DTO
	AirlineCode      string    `gorm:"size:2;not null;uniqueIndex:uq_baggage_class" json:"airlineCode"`
	Airline          Airline   `gorm:"foreignKey:AirlineCode" json:"-"`
	IdBaggageType    uint      `gorm:"not null;uniqueIndex:uq_baggage_class" json:"idBaggageType"`
	Baggage          Baggage   `gorm:"foreignKey:IdBaggageType" json:"baggage"`
	IdClass          uint      `gorm:"not null;uniqueIndex:uq_baggage_class" json:"idClass"`
	ClassSeat        ClassSeat `gorm:"foreignKey:IdClass" json:"classSeat"`
	QuantityIncluded int       `gorm:"not null" json:"quantityIncluded"`
}

type CreateClassBaggagePolicyInput struct {
	AirlineCode      string `json:"airlineCode" validate:"required,len=2"`
	IdBaggageType    uint   `json:"idBaggageType" validate:"required,gt=0"`
	IdClass          uint   `json:"idClass" validate:"required,gt=0"`
	QuantityIncluded int    `json:"quantityIncluded" validate:"gte=0"`
}

type EditClassBaggagePolicyInput struct {
	IdClassBaggagePolicy uint   `json:"idClassBaggagePolicy" validate:"required,gt=0"`
	AirlineCode          string `json:"airlineCode" validate:"required,len=2"`
	QuantityIncluded     int    `json:"quantityIncluded" validate:"gte=0"`
}
