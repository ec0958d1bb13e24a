package region

import (
	"github.com/shenikar/telecom_outage_system/internal/bilingual"
	"github.com/shenikar/telecom_outage_system/internal/models"
)

type county struct {
	sv      string
	en      string
	lat     float64
	lon     float64
	aliases []string
}

// counties - 21 шведский лен, центроиды и крупные города как синонимы
var counties = []county{
	{"Stockholms län", "Stockholm County", 59.3293, 18.0686, []string{"Stockholm", "Södertälje", "Täby"}},
	{"Västra Götalands län", "Västra Götaland County", 58.0, 13.0, []string{"Göteborg", "Gothenburg", "Borås", "Trollhättan", "Uddevalla", "Skövde"}},
	{"Skåne län", "Skåne County", 55.9, 13.5, []string{"Malmö", "Helsingborg", "Lund", "Kristianstad"}},
	{"Uppsala län", "Uppsala County", 59.8586, 17.6389, []string{"Uppsala"}},
	{"Östergötlands län", "Östergötland County", 58.4108, 15.6214, []string{"Linköping", "Norrköping"}},
	{"Jönköpings län", "Jönköping County", 57.7826, 14.1618, []string{"Jönköping"}},
	{"Kronobergs län", "Kronoberg County", 56.8777, 14.8091, []string{"Växjö"}},
	{"Kalmar län", "Kalmar County", 56.6634, 16.3567, []string{"Kalmar"}},
	{"Gotlands län", "Gotland County", 57.6348, 18.2948, []string{"Gotland", "Visby"}},
	{"Blekinge län", "Blekinge County", 56.1612, 15.5869, []string{"Karlskrona"}},
	{"Hallands län", "Halland County", 56.8945, 12.8421, []string{"Halmstad"}},
	{"Värmlands län", "Värmland County", 59.4021, 13.5115, []string{"Karlstad"}},
	{"Örebro län", "Örebro County", 59.2753, 15.2134, []string{"Örebro"}},
	{"Västmanlands län", "Västmanland County", 59.6100, 16.5448, []string{"Västerås"}},
	{"Dalarnas län", "Dalarna County", 60.6749, 15.0784, []string{"Borlänge", "Falun"}},
	{"Gävleborgs län", "Gävleborg County", 61.0, 16.0, []string{"Gävle"}},
	{"Västernorrlands län", "Västernorrland County", 62.6315, 17.9386, []string{"Sundsvall"}},
	{"Jämtlands län", "Jämtland County", 63.1792, 14.6357, []string{"Östersund"}},
	{"Västerbottens län", "Västerbotten County", 64.7507, 18.0542, []string{"Umeå", "Skellefteå"}},
	{"Norrbottens län", "Norrbotten County", 66.8309, 20.3987, []string{"Luleå"}},
	{"Södermanlands län", "Södermanland County", 59.0333, 16.75, []string{"Eskilstuna"}},
}

// Seed возвращает справочник регионов без идентификаторов, в порядке списка
func Seed() []models.Region {
	out := make([]models.Region, 0, len(counties))
	for _, c := range counties {
		out = append(out, models.Region{
			Name:      bilingual.New(c.sv, c.en),
			Latitude:  c.lat,
			Longitude: c.lon,
			Aliases:   append([]string(nil), c.aliases...),
		})
	}
	return out
}

// Unspecified - имя для кластеров без региона
func Unspecified() models.BilingualText {
	return bilingual.New("Hela landet", "Everywhere")
}
