package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roamly/cache"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
)

const forecastTTL = 30 * time.Minute

// Handler proxies wttr.in so the frontend never talks to it directly and
// repeat lookups for the same destination come out of the cache.
type Handler struct {
	client *http.Client
	store  cache.Store
}

func NewHandler(store cache.Store) *Handler {
	return &Handler{
		client: &http.Client{Timeout: 8 * time.Second},
		store:  store,
	}
}

// wttr.in j1 payload, trimmed to the fields we surface.
type wttrResponse struct {
	CurrentCondition []wttrCurrent `json:"current_condition"`
	Weather          []wttrDay     `json:"weather"`
}

type wttrDesc struct {
	Value string `json:"value"`
}

type wttrCurrent struct {
	TempF       string     `json:"temp_F"`
	TempC       string     `json:"temp_C"`
	Humidity    string     `json:"humidity"`
	WeatherDesc []wttrDesc `json:"weatherDesc"`
}

type wttrDay struct {
	Date     string     `json:"date"`
	MaxTempF string     `json:"maxtempF"`
	MinTempF string     `json:"mintempF"`
	Hourly   []wttrHour `json:"hourly"`
}

type wttrHour struct {
	WeatherDesc []wttrDesc `json:"weatherDesc"`
}

type Conditions struct {
	TempF       string `json:"temp_f"`
	TempC       string `json:"temp_c"`
	Humidity    string `json:"humidity,omitempty"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ForecastDay struct {
	Date        string `json:"date"`
	HighF       string `json:"high_f"`
	LowF        string `json:"low_f"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Report struct {
	Location string        `json:"location"`
	Current  Conditions    `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

// GET /api/weather?location=
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing location")
		return
	}

	key := cache.Fingerprint("weather", location)
	if h.store != nil {
		if cached, ok := h.store.Get(ctx, key); ok {
			var report Report
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				utils.RespondWithJSON(w, http.StatusOK, report)
				return
			}
		}
	}

	report, err := h.fetch(ctx, location)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Weather lookup failed")
		return
	}

	if h.store != nil {
		if raw, err := json.Marshal(report); err == nil {
			h.store.Put(ctx, key, string(raw), forecastTTL)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

func (h *Handler) fetch(ctx context.Context, location string) (Report, error) {
	endpoint := fmt.Sprintf("https://wttr.in/%s?format=j1", url.PathEscape(location))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("wttr.in status %d", resp.StatusCode)
	}

	var raw wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Report{}, err
	}
	return buildReport(location, raw), nil
}

func buildReport(location string, raw wttrResponse) Report {
	report := Report{Location: location}

	if len(raw.CurrentCondition) > 0 {
		c := raw.CurrentCondition[0]
		desc := ""
		if len(c.WeatherDesc) > 0 {
			desc = c.WeatherDesc[0].Value
		}
		report.Current = Conditions{
			TempF:       c.TempF,
			TempC:       c.TempC,
			Humidity:    c.Humidity,
			Description: desc,
			Icon:        Icon(desc),
		}
	}

	for _, day := range raw.Weather {
		desc := ""
		// midday hour is the most representative of the day
		if len(day.Hourly) > 0 {
			mid := day.Hourly[len(day.Hourly)/2]
			if len(mid.WeatherDesc) > 0 {
				desc = mid.WeatherDesc[0].Value
			}
		}
		report.Forecast = append(report.Forecast, ForecastDay{
			Date:        day.Date,
			HighF:       day.MaxTempF,
			LowF:        day.MinTempF,
			Description: desc,
			Icon:        Icon(desc),
		})
	}
	return report
}

// Icon maps a textual condition to the emoji shown on trip cards.
func Icon(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "thunder"):
		return "⛈️"
	case strings.Contains(d, "snow") || strings.Contains(d, "sleet") || strings.Contains(d, "blizzard"):
		return "❄️"
	case strings.Contains(d, "rain") || strings.Contains(d, "drizzle") || strings.Contains(d, "shower"):
		return "🌧️"
	case strings.Contains(d, "fog") || strings.Contains(d, "mist") || strings.Contains(d, "haze"):
		return "🌫️"
	case strings.Contains(d, "partly"):
		return "🌤️"
	case strings.Contains(d, "cloud") || strings.Contains(d, "overcast"):
		return "☁️"
	case strings.Contains(d, "sunny") || strings.Contains(d, "clear"):
		return "☀️"
	default:
		return "🌡️"
	}
}
