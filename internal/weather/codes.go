package weather

// WeatherInfo is a human description and icon for a WMO weather code.
type WeatherInfo struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WMO weather interpretation codes as documented by Open-Meteo.
var weatherCodeMap = map[int]WeatherInfo{
	0:  {Description: "Clear sky", Icon: "☀️"},
	1:  {Description: "Mainly clear", Icon: "🌤️"},
	2:  {Description: "Partly cloudy", Icon: "⛅"},
	3:  {Description: "Overcast", Icon: "☁️"},
	45: {Description: "Fog", Icon: "🌫️"},
	48: {Description: "Depositing rime fog", Icon: "🌫️"},
	51: {Description: "Light drizzle", Icon: "🌦️"},
	53: {Description: "Moderate drizzle", Icon: "🌦️"},
	55: {Description: "Dense drizzle", Icon: "🌧️"},
	56: {Description: "Light freezing drizzle", Icon: "🌧️"},
	57: {Description: "Dense freezing drizzle", Icon: "🌧️"},
	61: {Description: "Slight rain", Icon: "🌧️"},
	63: {Description: "Moderate rain", Icon: "🌧️"},
	65: {Description: "Heavy rain", Icon: "🌧️"},
	66: {Description: "Light freezing rain", Icon: "🌧️"},
	67: {Description: "Heavy freezing rain", Icon: "🌧️"},
	71: {Description: "Slight snow", Icon: "🌨️"},
	73: {Description: "Moderate snow", Icon: "🌨️"},
	75: {Description: "Heavy snow", Icon: "🌨️"},
	77: {Description: "Snow grains", Icon: "🌨️"},
	80: {Description: "Slight rain showers", Icon: "🌦️"},
	81: {Description: "Moderate rain showers", Icon: "🌧️"},
	82: {Description: "Violent rain showers", Icon: "🌧️"},
	85: {Description: "Slight snow showers", Icon: "🌨️"},
	86: {Description: "Heavy snow showers", Icon: "🌨️"},
	95: {Description: "Thunderstorm", Icon: "⛈️"},
	96: {Description: "Thunderstorm with slight hail", Icon: "⛈️"},
	99: {Description: "Thunderstorm with heavy hail", Icon: "⛈️"},
}

// Describe resolves a WMO weather code to its description and icon.
// Unknown codes resolve to a fixed pair; this never fails.
func Describe(code int) WeatherInfo {
	if info, ok := weatherCodeMap[code]; ok {
		return info
	}
	return WeatherInfo{Description: "Unknown", Icon: "❓"}
}
