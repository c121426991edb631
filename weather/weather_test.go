package weather

import "testing"

func TestIcon(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Sunny", "☀️"},
		{"Clear", "☀️"},
		{"Partly cloudy", "🌤️"},
		{"Overcast", "☁️"},
		{"Light rain shower", "🌧️"},
		{"Patchy snow possible", "❄️"},
		{"Thundery outbreaks possible", "⛈️"},
		{"Mist", "🌫️"},
		{"", "🌡️"},
	}
	for _, tt := range tests {
		if got := Icon(tt.desc); got != tt.want {
			t.Errorf("Icon(%q) = %q, want %q", tt.desc, got, tt.want)
		}
	}
}

func TestBuildReport(t *testing.T) {
	raw := wttrResponse{
		CurrentCondition: []wttrCurrent{
			{TempF: "72", TempC: "22", Humidity: "40", WeatherDesc: []wttrDesc{{Value: "Sunny"}}},
		},
		Weather: []wttrDay{
			{Date: "2026-03-02", MaxTempF: "75", MinTempF: "58", Hourly: []wttrHour{
				{WeatherDesc: []wttrDesc{{Value: "Light rain"}}},
			}},
		},
	}

	report := buildReport("Tokyo", raw)
	if report.Location != "Tokyo" {
		t.Errorf("location = %q", report.Location)
	}
	if report.Current.TempF != "72" || report.Current.Icon != "☀️" {
		t.Errorf("current = %+v", report.Current)
	}
	if len(report.Forecast) != 1 {
		t.Fatalf("forecast = %v, want one day", report.Forecast)
	}
	day := report.Forecast[0]
	if day.HighF != "75" || day.LowF != "58" || day.Icon != "🌧️" {
		t.Errorf("forecast day = %+v", day)
	}
}
