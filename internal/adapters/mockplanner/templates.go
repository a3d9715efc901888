package mockplanner

type template struct {
	Title       string
	Description string
	Kind        string
	Location    string
	Cost        [3]string // low, medium, high
}

var templates = map[string][]template{
	"general": {
		{"Tower of London", "Crown Jewels and the Beefeaters' tour of the fortress.", "attraction", "Tower of London", [3]string{"£33", "£33", "£33 + guide £25"}},
		{"Lunch at Borough Market", "Graze the street food stalls under the railway arches.", "activity", "Borough Market", [3]string{"£10", "£20", "£35"}},
		{"St Paul's Cathedral", "Climb to the Whispering Gallery for city views.", "attraction", "St Paul's Cathedral", [3]string{"£25", "£25", "£25"}},
		{"Sunset at Sky Garden", "Free public garden on the 35th floor; book ahead.", "attraction", "Sky Garden", [3]string{"Free", "Free", "Cocktails £40"}},
		{"Stroll through Hyde Park", "Serpentine lake, Speakers' Corner and the Diana memorial.", "attraction", "Hyde Park", [3]string{"Free", "Boat hire £15", "Boat hire £15"}},
		{"Dinner in Covent Garden", "Pick from the piazza's restaurants before a show.", "activity", "Covent Garden", [3]string{"£15", "£35", "£80"}},
	},
	"food": {
		{"Breakfast at Dishoom", "Bacon naan roll and house chai.", "activity", "Dishoom Shoreditch", [3]string{"£12", "£18", "£30"}},
		{"Borough Market tasting", "Cheese, oysters and pastries from the traders.", "activity", "Borough Market", [3]string{"£15", "£30", "£50"}},
		{"Afternoon tea at The Ritz", "Finger sandwiches and scones in the Palm Court.", "activity", "The Ritz", [3]string{"£35 (alternative venue)", "£75", "£95"}},
		{"Pub dinner at The Churchill Arms", "Thai kitchen inside a flower-covered Kensington pub.", "activity", "The Churchill Arms", [3]string{"£15", "£25", "£40"}},
		{"Leadenhall Market lunch", "Victorian covered market in the City.", "activity", "Leadenhall Market", [3]string{"£10", "£20", "£35"}},
	},
	"history": {
		{"Westminster Abbey", "Coronation church and Poets' Corner.", "attraction", "Westminster Abbey", [3]string{"£29", "£29", "£29 + verger tour £10"}},
		{"Tower of London", "Nine centuries of royal history.", "attraction", "Tower of London", [3]string{"£33", "£33", "£33"}},
		{"British Museum", "Rosetta Stone and the Parthenon sculptures.", "activity", "British Museum", [3]string{"Free", "Free", "Private tour £60"}},
		{"Buckingham Palace", "Changing of the Guard, or the State Rooms in summer.", "attraction", "Buckingham Palace", [3]string{"Free", "£32", "£60"}},
		{"St Paul's Cathedral", "Wren's masterpiece and the crypt.", "attraction", "St Paul's Cathedral", [3]string{"£25", "£25", "£25"}},
	},
	"art": {
		{"National Gallery", "Van Gogh's Sunflowers and Turner's Fighting Temeraire.", "attraction", "National Gallery", [3]string{"Free", "Free", "Exhibition £22"}},
		{"Tate Modern", "Turbine Hall installations and the Blavatnik viewing level.", "attraction", "Tate Modern", [3]string{"Free", "Exhibition £20", "Exhibition £20"}},
		{"Victoria and Albert Museum", "Design, fashion and the cast courts.", "activity", "Victoria and Albert Museum", [3]string{"Free", "Free", "Exhibition £25"}},
		{"Southbank Centre", "Hayward Gallery and riverside book market.", "attraction", "Southbank Centre", [3]string{"Free", "£15", "£25"}},
	},
	"culture": {
		{"Shakespeare's Globe guided tour", "Backstage at the reconstructed 1599 theatre.", "activity", "Shakespeare's Globe", [3]string{"£5 standing ticket", "£30", "£65"}},
		{"West End musical", "An evening show in Theatreland.", "activity", "West End", [3]string{"£25", "£70", "£150"}},
		{"British Museum", "Galleries of world cultures.", "activity", "British Museum", [3]string{"Free", "Free", "Free"}},
		{"Jazz at Ronnie Scott's", "Late set at Soho's legendary club.", "activity", "Ronnie Scott's", [3]string{"£20", "£45", "£90"}},
	},
	"shopping": {
		{"Camden Market", "Vintage stalls and canal-side food.", "activity", "Camden Market", [3]string{"£10", "£40", "£100"}},
		{"Liberty London", "Tudor-revival department store off Regent Street.", "activity", "Liberty London", [3]string{"Browse free", "£50", "£200"}},
		{"Columbia Road flower market", "Sunday flower market in the East End.", "activity", "Columbia Road", [3]string{"£5", "£20", "£40"}},
		{"Covent Garden boutiques", "Apple Market stalls and designer shops.", "activity", "Covent Garden", [3]string{"£10", "£60", "£200"}},
	},
	"nightlife": {
		{"Jazz at Ronnie Scott's", "Late set at Soho's legendary club.", "activity", "Ronnie Scott's", [3]string{"£20", "£45", "£90"}},
		{"Drinks at Sky Garden", "Bar with a view across the City.", "activity", "Sky Garden", [3]string{"£12", "£30", "£60"}},
		{"West End show", "Pre-theatre dinner then the curtain.", "activity", "West End", [3]string{"£25", "£70", "£150"}},
		{"Shoreditch bar crawl", "Cocktail bars around Brick Lane.", "activity", "Dishoom Shoreditch", [3]string{"£20", "£45", "£90"}},
	},
	"nature": {
		{"Kew Gardens", "Palm House and the treetop walkway.", "attraction", "Kew Gardens", [3]string{"£22", "£22", "£22"}},
		{"Hampstead Heath", "Parliament Hill views and the bathing ponds.", "attraction", "Hampstead Heath", [3]string{"Free", "Free", "Ponds £4"}},
		{"Greenwich Park", "Royal Observatory and the meridian line.", "attraction", "Greenwich Park", [3]string{"Free", "£24", "£24"}},
		{"Hyde Park", "Rowing on the Serpentine.", "attraction", "Hyde Park", [3]string{"Free", "£15", "£15"}},
	},
	"family": {
		{"Natural History Museum", "Dinosaurs and the blue whale in Hintze Hall.", "activity", "Natural History Museum", [3]string{"Free", "Free", "Free"}},
		{"Tower of London", "Ravens and armour for younger knights.", "attraction", "Tower of London", [3]string{"£33", "£33", "£33"}},
		{"Greenwich Park", "Playground, deer park and the Cutty Sark.", "attraction", "Greenwich Park", [3]string{"Free", "£20", "£40"}},
		{"Kew Gardens", "Children's Garden and the Treetop Walkway.", "attraction", "Kew Gardens", [3]string{"£22", "£22", "£22"}},
	},
}
