package mockplanner

import "london_trips/internal/domain"

// Locations are the coordinates of every place the templates mention.
var Locations = map[string]domain.Location{
	"British Museum":             {Lat: 51.5194, Lng: -0.1270},
	"Borough Market":             {Lat: 51.5055, Lng: -0.0910},
	"Buckingham Palace":          {Lat: 51.5014, Lng: -0.1419},
	"Camden Market":              {Lat: 51.5415, Lng: -0.1460},
	"Columbia Road":              {Lat: 51.5290, Lng: -0.0700},
	"Covent Garden":              {Lat: 51.5117, Lng: -0.1240},
	"Dishoom Shoreditch":         {Lat: 51.5245, Lng: -0.0768},
	"Greenwich Park":             {Lat: 51.4769, Lng: -0.0005},
	"Hampstead Heath":            {Lat: 51.5608, Lng: -0.1631},
	"Hyde Park":                  {Lat: 51.5073, Lng: -0.1657},
	"Kew Gardens":                {Lat: 51.4787, Lng: -0.2956},
	"Leadenhall Market":          {Lat: 51.5128, Lng: -0.0834},
	"Liberty London":             {Lat: 51.5140, Lng: -0.1402},
	"National Gallery":           {Lat: 51.5089, Lng: -0.1283},
	"Natural History Museum":     {Lat: 51.4967, Lng: -0.1764},
	"Ronnie Scott's":             {Lat: 51.5133, Lng: -0.1318},
	"Shakespeare's Globe":        {Lat: 51.5081, Lng: -0.0972},
	"Sky Garden":                 {Lat: 51.5111, Lng: -0.0835},
	"Southbank Centre":           {Lat: 51.5058, Lng: -0.1170},
	"St Paul's Cathedral":        {Lat: 51.5138, Lng: -0.0984},
	"Tate Modern":                {Lat: 51.5076, Lng: -0.0994},
	"The Churchill Arms":         {Lat: 51.5069, Lng: -0.1945},
	"The Ritz":                   {Lat: 51.5072, Lng: -0.1416},
	"Tower of London":            {Lat: 51.5081, Lng: -0.0759},
	"Victoria and Albert Museum": {Lat: 51.4966, Lng: -0.1722},
	"Westminster Abbey":          {Lat: 51.4994, Lng: -0.1273},
	"West End":                   {Lat: 51.5115, Lng: -0.1310},
}
