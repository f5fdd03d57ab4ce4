// Package catalog holds the static property and service tables. Loaded once
// at package init into immutable indexed structures; lookups by validated
// index never fail, lookups by raw int are explicitly fallible.
package catalog

import (
	"errors"

	"github.com/monopolygame/monopolybot/internal/domain"
)

const (
	// MaxLevel is the highest property level.
	MaxLevel = 4
	// StarterPropertyIndex is the free non-upgradable property granted on signup.
	StarterPropertyIndex = 0
)

type Color string

const (
	Brown     Color = "brown"
	LightBlue Color = "light_blue"
	Pink      Color = "pink"
	Orange    Color = "orange"
	Red       Color = "red"
	Yellow    Color = "yellow"
	Green     Color = "green"
	DarkBlue  Color = "dark_blue"
)

// PropertyIndex is a validated position in the property table.
type PropertyIndex int

// ServiceIndex is a validated position in the service table.
type ServiceIndex int

var (
	ErrUnknownProperty = errors.New("unknown property index")
	ErrUnknownService  = errors.New("unknown service index")
)

// NewPropertyIndex validates a raw index against the property table.
func NewPropertyIndex(i int) (PropertyIndex, error) {
	if i < 0 || i >= len(properties) {
		return 0, ErrUnknownProperty
	}
	return PropertyIndex(i), nil
}

// NewServiceIndex validates a raw index against the service table.
func NewServiceIndex(i int) (ServiceIndex, error) {
	if i < 0 || i >= len(services) {
		return 0, ErrUnknownService
	}
	return ServiceIndex(i), nil
}

type Property struct {
	Index PropertyIndex
	Name  string
	Color Color
	// Costs[n-1] is the total cost of owning the property at level n.
	Costs [MaxLevel]domain.MC
	// HourlyIncome[n-1] is the base income per hour at level n.
	HourlyIncome [MaxLevel]float64
}

// CostAt returns the cumulative cost for a level in [1, MaxLevel].
func (p Property) CostAt(level int) (domain.MC, bool) {
	if level < 1 || level > MaxLevel {
		return 0, false
	}
	return p.Costs[level-1], true
}

// IncomeAt returns the base hourly income for a level in [1, MaxLevel].
func (p Property) IncomeAt(level int) (float64, bool) {
	if level < 1 || level > MaxLevel {
		return 0, false
	}
	return p.HourlyIncome[level-1], true
}

type ServiceType string

const (
	ServiceTrain      ServiceType = "train"
	ServiceUtility    ServiceType = "utility"
	ServiceCommercial ServiceType = "commercial"
)

type Service struct {
	Index ServiceIndex
	Name  string
	Type  ServiceType
	Cost  domain.MC
	// BoostPct is the flat income boost, e.g. 0.05 for +5%. Always zero for
	// trains, which use the count-based progressive bonus instead.
	BoostPct float64
}

// CompletionBonus is the extra multiplier for a fully owned color group.
// Level4 supersedes Level3, they never stack.
type CompletionBonus struct {
	Level3 float64
	Level4 float64
}

var properties = []Property{
	{0, "Granny's Lane", Brown, [MaxLevel]domain.MC{0, 500, 1500, 4000}, [MaxLevel]float64{2, 6, 15, 40}},
	{1, "Whitechapel Yard", Brown, [MaxLevel]domain.MC{600, 1200, 3000, 7500}, [MaxLevel]float64{4, 10, 24, 60}},
	{2, "Harbour Street", LightBlue, [MaxLevel]domain.MC{1000, 2000, 5000, 12000}, [MaxLevel]float64{6, 14, 34, 82}},
	{3, "Angel Crossing", LightBlue, [MaxLevel]domain.MC{1000, 2100, 5200, 12500}, [MaxLevel]float64{6, 15, 36, 86}},
	{4, "Pentonville Park", LightBlue, [MaxLevel]domain.MC{1200, 2400, 6000, 14000}, [MaxLevel]float64{8, 18, 42, 100}},
	{5, "Pall Mall Row", Pink, [MaxLevel]domain.MC{1400, 2800, 7000, 16500}, [MaxLevel]float64{10, 22, 52, 124}},
	{6, "Electric Avenue", Pink, [MaxLevel]domain.MC{1400, 2900, 7200, 17000}, [MaxLevel]float64{10, 23, 54, 128}},
	{7, "Northumberland Walk", Pink, [MaxLevel]domain.MC{1600, 3200, 8000, 19000}, [MaxLevel]float64{12, 26, 62, 146}},
	{8, "Bow Street Market", Orange, [MaxLevel]domain.MC{1800, 3600, 9000, 21000}, [MaxLevel]float64{14, 30, 70, 166}},
	{9, "Marlborough Gate", Orange, [MaxLevel]domain.MC{1800, 3700, 9200, 21500}, [MaxLevel]float64{14, 31, 72, 170}},
	{10, "Vine Street Arcade", Orange, [MaxLevel]domain.MC{2000, 4000, 10000, 23500}, [MaxLevel]float64{16, 34, 80, 190}},
	{11, "Strand Corner", Red, [MaxLevel]domain.MC{2200, 4400, 11000, 26000}, [MaxLevel]float64{18, 38, 90, 214}},
	{12, "Fleet Boulevard", Red, [MaxLevel]domain.MC{2200, 4500, 11200, 26500}, [MaxLevel]float64{18, 39, 92, 218}},
	{13, "Trafalgar Plaza", Red, [MaxLevel]domain.MC{2400, 4800, 12000, 28000}, [MaxLevel]float64{20, 42, 100, 238}},
	{14, "Leicester Lights", Yellow, [MaxLevel]domain.MC{2600, 5200, 13000, 30500}, [MaxLevel]float64{22, 46, 110, 262}},
	{15, "Coventry Court", Yellow, [MaxLevel]domain.MC{2600, 5300, 13200, 31000}, [MaxLevel]float64{22, 47, 112, 266}},
	{16, "Piccadilly Heights", Yellow, [MaxLevel]domain.MC{2800, 5600, 14000, 33000}, [MaxLevel]float64{24, 50, 120, 286}},
	{17, "Regent Quarter", Green, [MaxLevel]domain.MC{3000, 6000, 15000, 35500}, [MaxLevel]float64{26, 54, 130, 310}},
	{18, "Oxford Exchange", Green, [MaxLevel]domain.MC{3000, 6100, 15200, 36000}, [MaxLevel]float64{26, 55, 132, 314}},
	{19, "Bond Street Gallery", Green, [MaxLevel]domain.MC{3200, 6400, 16000, 38000}, [MaxLevel]float64{28, 58, 140, 334}},
	{20, "Park Lane Towers", DarkBlue, [MaxLevel]domain.MC{3600, 7200, 18000, 42500}, [MaxLevel]float64{32, 66, 160, 382}},
	{21, "Mayfair Palace", DarkBlue, [MaxLevel]domain.MC{4000, 8000, 20000, 47000}, [MaxLevel]float64{36, 74, 180, 430}},
}

var services = []Service{
	{0, "King's Cross Railway", ServiceTrain, 5000, 0},
	{1, "Marylebone Railway", ServiceTrain, 5000, 0},
	{2, "Fenchurch Railway", ServiceTrain, 5000, 0},
	{3, "Liverpool Street Railway", ServiceTrain, 5000, 0},
	{4, "Electric Company", ServiceUtility, 4000, 0.05},
	{5, "Water Works", ServiceUtility, 4000, 0.05},
	{6, "Grand Hotel", ServiceCommercial, 12000, 0.10},
	{7, "Casino Royale", ServiceCommercial, 20000, 0.15},
	{8, "Stock Exchange", ServiceCommercial, 35000, 0.20},
}

var completionBonuses = map[Color]CompletionBonus{
	Brown:     {Level3: 0.10, Level4: 0.20},
	LightBlue: {Level3: 0.10, Level4: 0.20},
	Pink:      {Level3: 0.12, Level4: 0.25},
	Orange:    {Level3: 0.12, Level4: 0.25},
	Red:       {Level3: 0.15, Level4: 0.30},
	Yellow:    {Level3: 0.15, Level4: 0.30},
	Green:     {Level3: 0.18, Level4: 0.35},
	DarkBlue:  {Level3: 0.20, Level4: 0.40},
}

// trainBoosts maps owned-train count to the progressive bonus. Owning a
// single train gives nothing; the collection is what pays.
var trainBoosts = []float64{0, 0, 0.10, 0.20, 0.35}

var propertiesByColor = func() map[Color][]Property {
	m := make(map[Color][]Property)
	for _, p := range properties {
		m[p.Color] = append(m[p.Color], p)
	}
	return m
}()

// PropertyByIndex returns the catalog entry for a validated index.
func PropertyByIndex(idx PropertyIndex) Property {
	return properties[idx]
}

// PropertyByRawIndex returns the catalog entry for an unvalidated index.
func PropertyByRawIndex(i int) (Property, bool) {
	idx, err := NewPropertyIndex(i)
	if err != nil {
		return Property{}, false
	}
	return properties[idx], true
}

// ServiceByIndex returns the catalog entry for a validated index.
func ServiceByIndex(idx ServiceIndex) Service {
	return services[idx]
}

// ServiceByRawIndex returns the catalog entry for an unvalidated index.
func ServiceByRawIndex(i int) (Service, bool) {
	idx, err := NewServiceIndex(i)
	if err != nil {
		return Service{}, false
	}
	return services[idx], true
}

// PropertiesByColor returns the members of a color group; nil for an
// unknown color.
func PropertiesByColor(c Color) []Property {
	return propertiesByColor[c]
}

// CompletionBonusFor returns the color group's completion bonuses.
func CompletionBonusFor(c Color) (CompletionBonus, bool) {
	b, ok := completionBonuses[c]
	return b, ok
}

// TrainBoost returns the progressive bonus for an owned-train count.
func TrainBoost(count int) float64 {
	if count < 0 {
		return 0
	}
	if count >= len(trainBoosts) {
		return trainBoosts[len(trainBoosts)-1]
	}
	return trainBoosts[count]
}

// Properties returns a copy of the full property table.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// Services returns a copy of the full service table.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}
