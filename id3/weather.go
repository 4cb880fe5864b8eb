package id3

// Feature indices of the built-in weather dataset.
const (
	FeatureWeather = iota
	FeatureTemperature
	FeatureHumidity
	FeatureWind
)

// Feature values of the built-in weather dataset.
const (
	Sunny  = 1
	Rainy  = 2
	Cloudy = 3

	Hot    = 1
	Cold   = 2
	Medium = 3

	Humid = 1
	Dry   = 2

	Windy = 1
	Calm  = 2
)

// WeatherSchema describes the four features of the built-in dataset.
func WeatherSchema() *Schema {
	return &Schema{
		Names:       []string{"Weather", "Temperature", "Humidity", "Wind"},
		Cardinality: []int{3, 3, 2, 2},
	}
}

// WeatherTraining returns the 14 labelled rows of the built-in "play
// outside?" dataset.
func WeatherTraining() *Dataset {
	rows := []struct {
		weather, temp, humidity, wind int
		label                         Label
	}{
		{Sunny, Hot, Humid, Calm, LabelNo},
		{Sunny, Hot, Humid, Windy, LabelNo},
		{Cloudy, Hot, Humid, Calm, LabelYes},
		{Rainy, Medium, Humid, Calm, LabelYes},
		{Rainy, Cold, Dry, Calm, LabelYes},
		{Rainy, Cold, Dry, Windy, LabelNo},
		{Cloudy, Cold, Dry, Windy, LabelYes},
		{Sunny, Medium, Humid, Calm, LabelNo},
		{Sunny, Cold, Dry, Calm, LabelYes},
		{Rainy, Medium, Dry, Calm, LabelYes},
		{Sunny, Medium, Dry, Windy, LabelYes},
		{Cloudy, Medium, Humid, Windy, LabelYes},
		{Cloudy, Hot, Dry, Calm, LabelYes},
		{Rainy, Medium, Humid, Windy, LabelNo},
	}
	samples := make([]Sample, len(rows))
	for i, r := range rows {
		samples[i] = Sample{
			Features: []int{r.weather, r.temp, r.humidity, r.wind},
			Label:    r.label,
		}
	}
	return &Dataset{Samples: samples, FeatureCount: 4}
}

// WeatherTest returns the 6 unlabelled rows to classify with a tree built
// from WeatherTraining.
func WeatherTest() *Dataset {
	rows := [][]int{
		{Sunny, Hot, Dry, Calm},
		{Sunny, Hot, Dry, Windy},
		{Rainy, Hot, Dry, Calm},
		{Sunny, Medium, Dry, Calm},
		{Sunny, Cold, Humid, Windy},
		{Sunny, Cold, Humid, Calm},
	}
	samples := make([]Sample, len(rows))
	for i, r := range rows {
		samples[i] = Sample{Features: r}
	}
	return &Dataset{Samples: samples, FeatureCount: 4}
}
