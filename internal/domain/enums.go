package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// FloralSource is the controlled vocabulary for honey floral sources,
// based on the UC Davis Honey Flavor Wheel and industry standards.
type FloralSource string

const (
	FloralClover        FloralSource = "CLOVER"
	FloralWildflower    FloralSource = "WILDFLOWER"
	FloralManuka        FloralSource = "MANUKA"
	FloralOrangeBlossom FloralSource = "ORANGE_BLOSSOM"
	FloralBuckwheat     FloralSource = "BUCKWHEAT"
	FloralAcacia        FloralSource = "ACACIA"
	FloralLavender      FloralSource = "LAVENDER"
	FloralTupelo        FloralSource = "TUPELO"
	FloralSage          FloralSource = "SAGE"
	FloralSourwood      FloralSource = "SOURWOOD"
	FloralEucalyptus    FloralSource = "EUCALYPTUS"
	FloralBlueberry     FloralSource = "BLUEBERRY"
	FloralAvocado       FloralSource = "AVOCADO"
	FloralLinden        FloralSource = "LINDEN"
	FloralChestnut      FloralSource = "CHESTNUT"
	FloralHeather       FloralSource = "HEATHER"
	FloralOther         FloralSource = "OTHER"
)

// FloralSources lists every member in declaration order.
var FloralSources = []FloralSource{
	FloralClover, FloralWildflower, FloralManuka, FloralOrangeBlossom,
	FloralBuckwheat, FloralAcacia, FloralLavender, FloralTupelo,
	FloralSage, FloralSourwood, FloralEucalyptus, FloralBlueberry,
	FloralAvocado, FloralLinden, FloralChestnut, FloralHeather, FloralOther,
}

var floralSourceLabels = map[FloralSource]string{
	FloralClover:        "Clover",
	FloralWildflower:    "Wildflower",
	FloralManuka:        "Manuka",
	FloralOrangeBlossom: "Orange Blossom",
	FloralBuckwheat:     "Buckwheat",
	FloralAcacia:        "Acacia",
	FloralLavender:      "Lavender",
	FloralTupelo:        "Tupelo",
	FloralSage:          "Sage",
	FloralSourwood:      "Sourwood",
	FloralEucalyptus:    "Eucalyptus",
	FloralBlueberry:     "Blueberry",
	FloralAvocado:       "Avocado",
	FloralLinden:        "Linden",
	FloralChestnut:      "Chestnut",
	FloralHeather:       "Heather",
	FloralOther:         "Other",
}

func (v FloralSource) String() string { return string(v) }

func (v FloralSource) DisplayName() string {
	return displayLabel(floralSourceLabels, v)
}

// ParseFloralSource resolves an external code to a FloralSource member.
func ParseFloralSource(code string) (FloralSource, error) {
	v := FloralSource(code)
	if _, ok := floralSourceLabels[v]; !ok {
		return "", errors.Errorf("unknown floral source code %q", code)
	}
	return v, nil
}

// HoneyOrigin is the controlled vocabulary for honey country/region origins.
type HoneyOrigin string

const (
	OriginUSA        HoneyOrigin = "USA"
	OriginNewZealand HoneyOrigin = "NEW_ZEALAND"
	OriginAustralia  HoneyOrigin = "AUSTRALIA"
	OriginArgentina  HoneyOrigin = "ARGENTINA"
	OriginMexico     HoneyOrigin = "MEXICO"
	OriginCanada     HoneyOrigin = "CANADA"
	OriginBrazil     HoneyOrigin = "BRAZIL"
	OriginGreece     HoneyOrigin = "GREECE"
	OriginTurkey     HoneyOrigin = "TURKEY"
	OriginSpain      HoneyOrigin = "SPAIN"
	OriginFrance     HoneyOrigin = "FRANCE"
	OriginItaly      HoneyOrigin = "ITALY"
	OriginHungary    HoneyOrigin = "HUNGARY"
	OriginGermany    HoneyOrigin = "GERMANY"
	OriginUK         HoneyOrigin = "UK"
	OriginOther      HoneyOrigin = "OTHER"
)

var HoneyOrigins = []HoneyOrigin{
	OriginUSA, OriginNewZealand, OriginAustralia, OriginArgentina,
	OriginMexico, OriginCanada, OriginBrazil, OriginGreece, OriginTurkey,
	OriginSpain, OriginFrance, OriginItaly, OriginHungary, OriginGermany,
	OriginUK, OriginOther,
}

var honeyOriginLabels = map[HoneyOrigin]string{
	OriginUSA:        "USA",
	OriginNewZealand: "New Zealand",
	OriginAustralia:  "Australia",
	OriginArgentina:  "Argentina",
	OriginMexico:     "Mexico",
	OriginCanada:     "Canada",
	OriginBrazil:     "Brazil",
	OriginGreece:     "Greece",
	OriginTurkey:     "Turkey",
	OriginSpain:      "Spain",
	OriginFrance:     "France",
	OriginItaly:      "Italy",
	OriginHungary:    "Hungary",
	OriginGermany:    "Germany",
	OriginUK:         "United Kingdom",
	OriginOther:      "Other",
}

func (v HoneyOrigin) String() string { return string(v) }

func (v HoneyOrigin) DisplayName() string {
	return displayLabel(honeyOriginLabels, v)
}

func ParseHoneyOrigin(code string) (HoneyOrigin, error) {
	v := HoneyOrigin(code)
	if _, ok := honeyOriginLabels[v]; !ok {
		return "", errors.Errorf("unknown origin code %q", code)
	}
	return v, nil
}

// HoneyType is the controlled vocabulary for honey processing types.
type HoneyType string

const (
	TypeRaw         HoneyType = "RAW"
	TypeFiltered    HoneyType = "FILTERED"
	TypePasteurized HoneyType = "PASTEURIZED"
	TypeCreamed     HoneyType = "CREAMED"
	TypeComb        HoneyType = "COMB"
	TypeInfused     HoneyType = "INFUSED"
	TypeOrganic     HoneyType = "ORGANIC"
)

var HoneyTypes = []HoneyType{
	TypeRaw, TypeFiltered, TypePasteurized, TypeCreamed,
	TypeComb, TypeInfused, TypeOrganic,
}

var honeyTypeLabels = map[HoneyType]string{
	TypeRaw:         "Raw",
	TypeFiltered:    "Filtered",
	TypePasteurized: "Pasteurized",
	TypeCreamed:     "Creamed",
	TypeComb:        "Comb",
	TypeInfused:     "Infused",
	TypeOrganic:     "Organic",
}

func (v HoneyType) String() string { return string(v) }

func (v HoneyType) DisplayName() string {
	return displayLabel(honeyTypeLabels, v)
}

func ParseHoneyType(code string) (HoneyType, error) {
	v := HoneyType(code)
	if _, ok := honeyTypeLabels[v]; !ok {
		return "", errors.Errorf("unknown honey type code %q", code)
	}
	return v, nil
}

// FlavorProfile is the simplified flavor category vocabulary used for
// multi-select filtering and similar-honey matching.
type FlavorProfile string

const (
	FlavorSweet   FlavorProfile = "SWEET"
	FlavorFloral  FlavorProfile = "FLORAL"
	FlavorFruity  FlavorProfile = "FRUITY"
	FlavorEarthy  FlavorProfile = "EARTHY"
	FlavorBold    FlavorProfile = "BOLD"
	FlavorSpicy   FlavorProfile = "SPICY"
	FlavorMild    FlavorProfile = "MILD"
	FlavorComplex FlavorProfile = "COMPLEX"
)

var FlavorProfiles = []FlavorProfile{
	FlavorSweet, FlavorFloral, FlavorFruity, FlavorEarthy,
	FlavorBold, FlavorSpicy, FlavorMild, FlavorComplex,
}

var flavorProfileLabels = map[FlavorProfile]string{
	FlavorSweet:   "Sweet",
	FlavorFloral:  "Floral",
	FlavorFruity:  "Fruity",
	FlavorEarthy:  "Earthy",
	FlavorBold:    "Bold",
	FlavorSpicy:   "Spicy",
	FlavorMild:    "Mild",
	FlavorComplex: "Complex",
}

func (v FlavorProfile) String() string { return string(v) }

func (v FlavorProfile) DisplayName() string {
	return displayLabel(flavorProfileLabels, v)
}

func ParseFlavorProfile(code string) (FlavorProfile, error) {
	v := FlavorProfile(code)
	if _, ok := flavorProfileLabels[v]; !ok {
		return "", errors.Errorf("unknown flavor profile code %q", code)
	}
	return v, nil
}

// SourceType is the controlled vocabulary for local honey source types.
type SourceType string

const (
	SourceBeekeeper     SourceType = "BEEKEEPER"
	SourceFarm          SourceType = "FARM"
	SourceFarmersMarket SourceType = "FARMERS_MARKET"
	SourceStore         SourceType = "STORE"
	SourceApiary        SourceType = "APIARY"
	SourceCooperative   SourceType = "COOPERATIVE"
)

var SourceTypes = []SourceType{
	SourceBeekeeper, SourceFarm, SourceFarmersMarket,
	SourceStore, SourceApiary, SourceCooperative,
}

var sourceTypeLabels = map[SourceType]string{
	SourceBeekeeper:     "Beekeeper",
	SourceFarm:          "Farm",
	SourceFarmersMarket: "Farmers Market",
	SourceStore:         "Store",
	SourceApiary:        "Apiary",
	SourceCooperative:   "Cooperative",
}

func (v SourceType) String() string { return string(v) }

func (v SourceType) DisplayName() string {
	return displayLabel(sourceTypeLabels, v)
}

func ParseSourceType(code string) (SourceType, error) {
	v := SourceType(code)
	if _, ok := sourceTypeLabels[v]; !ok {
		return "", errors.Errorf("unknown source type code %q", code)
	}
	return v, nil
}

// EventType is the controlled vocabulary for honey related events.
type EventType string

const (
	EventFestival   EventType = "FESTIVAL"
	EventMarket     EventType = "MARKET"
	EventClass      EventType = "CLASS"
	EventTasting    EventType = "TASTING"
	EventTour       EventType = "TOUR"
	EventFair       EventType = "FAIR"
	EventExpo       EventType = "EXPO"
	EventConference EventType = "CONFERENCE"
)

var EventTypes = []EventType{
	EventFestival, EventMarket, EventClass, EventTasting,
	EventTour, EventFair, EventExpo, EventConference,
}

var eventTypeLabels = map[EventType]string{
	EventFestival:   "Festival",
	EventMarket:     "Market",
	EventClass:      "Class",
	EventTasting:    "Tasting",
	EventTour:       "Tour",
	EventFair:       "Fair",
	EventExpo:       "Expo",
	EventConference: "Conference",
}

func (v EventType) String() string { return string(v) }

func (v EventType) DisplayName() string {
	return displayLabel(eventTypeLabels, v)
}

func ParseEventType(code string) (EventType, error) {
	v := EventType(code)
	if _, ok := eventTypeLabels[v]; !ok {
		return "", errors.Errorf("unknown event type code %q", code)
	}
	return v, nil
}

// Certification is the controlled vocabulary for honey quality certifications.
type Certification string

const (
	CertUMF5Plus   Certification = "UMF_5_PLUS"
	CertUMF10Plus  Certification = "UMF_10_PLUS"
	CertUMF15Plus  Certification = "UMF_15_PLUS"
	CertUMF20Plus  Certification = "UMF_20_PLUS"
	CertUSDAGradeA Certification = "USDA_GRADE_A"
	CertUSDAOrg    Certification = "USDA_ORGANIC"
	CertTrueSource Certification = "TRUE_SOURCE"
	CertNonGMO     Certification = "NON_GMO"
)

var Certifications = []Certification{
	CertUMF5Plus, CertUMF10Plus, CertUMF15Plus, CertUMF20Plus,
	CertUSDAGradeA, CertUSDAOrg, CertTrueSource, CertNonGMO,
}

var certificationLabels = map[Certification]string{
	CertUMF5Plus:   "UMF 5+",
	CertUMF10Plus:  "UMF 10+",
	CertUMF15Plus:  "UMF 15+",
	CertUMF20Plus:  "UMF 20+",
	CertUSDAGradeA: "USDA Grade A",
	CertUSDAOrg:    "USDA Organic",
	CertTrueSource: "True Source",
	CertNonGMO:     "Non-GMO",
}

func (v Certification) String() string { return string(v) }

func (v Certification) DisplayName() string {
	return displayLabel(certificationLabels, v)
}

func ParseCertification(code string) (Certification, error) {
	v := Certification(code)
	if _, ok := certificationLabels[v]; !ok {
		return "", errors.Errorf("unknown certification code %q", code)
	}
	return v, nil
}

// displayLabel looks up the static label table. Codes without a table
// entry render with underscores replaced by spaces.
func displayLabel[K ~string](labels map[K]string, v K) string {
	if label, ok := labels[v]; ok {
		return label
	}
	return strings.ReplaceAll(string(v), "_", " ")
}
