package refdata

// GlobalAverage is the world average daily footprint in kg CO2e.
const GlobalAverage = 12.7

// cityTable holds every known city in definition order. Suggest relies on
// this order.
//
//nolint:gochecknoglobals // Immutable reference table.
var cityTable = []CityData{
	// United States
	{Name: "New York", Country: "United States", AverageFootprint: 18.5},
	{Name: "Los Angeles", Country: "United States", AverageFootprint: 20.3},
	{Name: "Chicago", Country: "United States", AverageFootprint: 19.2},
	{Name: "Houston", Country: "United States", AverageFootprint: 22.7},
	{Name: "Phoenix", Country: "United States", AverageFootprint: 21.5},
	{Name: "Philadelphia", Country: "United States", AverageFootprint: 17.8},
	{Name: "San Antonio", Country: "United States", AverageFootprint: 21.9},
	{Name: "San Diego", Country: "United States", AverageFootprint: 18.6},
	{Name: "Dallas", Country: "United States", AverageFootprint: 22.1},
	{Name: "San Jose", Country: "United States", AverageFootprint: 17.4},
	{Name: "Austin", Country: "United States", AverageFootprint: 19.8},
	{Name: "Boston", Country: "United States", AverageFootprint: 16.9},
	{Name: "Seattle", Country: "United States", AverageFootprint: 15.7},
	{Name: "Denver", Country: "United States", AverageFootprint: 18.3},
	{Name: "Miami", Country: "United States", AverageFootprint: 19.5},

	// Canada
	{Name: "Toronto", Country: "Canada", AverageFootprint: 16.2},
	{Name: "Montreal", Country: "Canada", AverageFootprint: 15.5},
	{Name: "Vancouver", Country: "Canada", AverageFootprint: 14.8},
	{Name: "Calgary", Country: "Canada", AverageFootprint: 18.7},
	{Name: "Ottawa", Country: "Canada", AverageFootprint: 15.9},

	// United Kingdom
	{Name: "London", Country: "United Kingdom", AverageFootprint: 12.5},
	{Name: "Manchester", Country: "United Kingdom", AverageFootprint: 11.8},
	{Name: "Birmingham", Country: "United Kingdom", AverageFootprint: 12.1},
	{Name: "Glasgow", Country: "United Kingdom", AverageFootprint: 11.5},
	{Name: "Liverpool", Country: "United Kingdom", AverageFootprint: 11.9},

	// Australia
	{Name: "Sydney", Country: "Australia", AverageFootprint: 17.5},
	{Name: "Melbourne", Country: "Australia", AverageFootprint: 16.9},
	{Name: "Brisbane", Country: "Australia", AverageFootprint: 18.2},
	{Name: "Perth", Country: "Australia", AverageFootprint: 19.1},
	{Name: "Adelaide", Country: "Australia", AverageFootprint: 17.3},

	// Germany
	{Name: "Berlin", Country: "Germany", AverageFootprint: 10.8},
	{Name: "Munich", Country: "Germany", AverageFootprint: 11.2},
	{Name: "Hamburg", Country: "Germany", AverageFootprint: 11.5},
	{Name: "Frankfurt", Country: "Germany", AverageFootprint: 12.1},
	{Name: "Cologne", Country: "Germany", AverageFootprint: 11.7},

	// France
	{Name: "Paris", Country: "France", AverageFootprint: 10.2},
	{Name: "Marseille", Country: "France", AverageFootprint: 10.8},
	{Name: "Lyon", Country: "France", AverageFootprint: 10.5},
	{Name: "Toulouse", Country: "France", AverageFootprint: 10.3},
	{Name: "Nice", Country: "France", AverageFootprint: 10.7},

	// Japan
	{Name: "Tokyo", Country: "Japan", AverageFootprint: 9.8},
	{Name: "Osaka", Country: "Japan", AverageFootprint: 10.1},
	{Name: "Kyoto", Country: "Japan", AverageFootprint: 9.5},
	{Name: "Yokohama", Country: "Japan", AverageFootprint: 9.9},
	{Name: "Nagoya", Country: "Japan", AverageFootprint: 10.3},

	// India
	{Name: "Mumbai", Country: "India", AverageFootprint: 7.2},
	{Name: "Delhi", Country: "India", AverageFootprint: 7.8},
	{Name: "Bangalore", Country: "India", AverageFootprint: 6.9},
	{Name: "Hyderabad", Country: "India", AverageFootprint: 7.1},
	{Name: "Chennai", Country: "India", AverageFootprint: 7.4},
}

// countryTable holds country averages in definition order.
//
//nolint:gochecknoglobals // Immutable reference table.
var countryTable = []CountryData{
	{Name: "United States", AverageFootprint: 19.5},
	{Name: "Canada", AverageFootprint: 16.2},
	{Name: "United Kingdom", AverageFootprint: 12.1},
	{Name: "Australia", AverageFootprint: 17.8},
	{Name: "Germany", AverageFootprint: 11.4},
	{Name: "France", AverageFootprint: 10.5},
	{Name: "Japan", AverageFootprint: 9.9},
	{Name: "India", AverageFootprint: 7.3},
	{Name: "China", AverageFootprint: 8.5},
	{Name: "Brazil", AverageFootprint: 9.2},
	{Name: "Russia", AverageFootprint: 14.8},
	{Name: "South Africa", AverageFootprint: 13.2},
	{Name: "Mexico", AverageFootprint: 10.8},
	{Name: "Italy", AverageFootprint: 10.2},
	{Name: "Spain", AverageFootprint: 9.8},
	{Name: "South Korea", AverageFootprint: 12.7},
	{Name: "Netherlands", AverageFootprint: 11.9},
	{Name: "Sweden", AverageFootprint: 8.9},
	{Name: "Switzerland", AverageFootprint: 9.1},
	{Name: "Norway", AverageFootprint: 10.3},
}
