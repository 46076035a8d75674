package classify

// Default break tables for the registered schemes. Colors follow the usual
// weather-map ramps (cold blues through warm reds, dry whites through wet
// blues). Callers supply their own tables when the defaults don't fit.

// DefaultBreaks returns the default break table for a property name, or nil
// when the property has no registered scheme.
func DefaultBreaks(property string) []Break {
	switch property {
	case PropTemperature:
		return TemperatureBreaks
	case PropPressure:
		return PressureBreaks
	case PropRelativeHumidity:
		return RelativeHumidityBreaks
	case PropWindSpeed:
		return WindSpeedBreaks
	case PropHourlyPrecip:
		return HourlyPrecipBreaks
	}
	return nil
}

// TemperatureBreaks covers -30°C to 32°C in 2° steps (buckets 0–30).
var TemperatureBreaks = []Break{
	{Label: "<=-28", Color: "#16013a"},
	{Label: "-28~-26", Color: "#1d0254"},
	{Label: "-26~-24", Color: "#24036e"},
	{Label: "-24~-22", Color: "#2a0f8a"},
	{Label: "-22~-20", Color: "#2e21a5"},
	{Label: "-20~-18", Color: "#3134bf"},
	{Label: "-18~-16", Color: "#3348d4"},
	{Label: "-16~-14", Color: "#355ce3"},
	{Label: "-14~-12", Color: "#3770ee"},
	{Label: "-12~-10", Color: "#3a85f4"},
	{Label: "-10~-8", Color: "#3f99f6"},
	{Label: "-8~-6", Color: "#48adf4"},
	{Label: "-6~-4", Color: "#56c0ee"},
	{Label: "-4~-2", Color: "#69d1e6"},
	{Label: "-2~0", Color: "#80e0da"},
	{Label: "0~2", Color: "#9aebc9"},
	{Label: "2~4", Color: "#b5f3b4"},
	{Label: "4~6", Color: "#d0f89c"},
	{Label: "6~8", Color: "#e8f884"},
	{Label: "8~10", Color: "#f9f26d"},
	{Label: "10~12", Color: "#fde35a"},
	{Label: "12~14", Color: "#fdd04b"},
	{Label: "14~16", Color: "#fbb93f"},
	{Label: "16~18", Color: "#f69f36"},
	{Label: "18~20", Color: "#ef842e"},
	{Label: "20~22", Color: "#e66927"},
	{Label: "22~24", Color: "#da4f20"},
	{Label: "24~26", Color: "#cb371a"},
	{Label: "26~28", Color: "#b92314"},
	{Label: "28~30", Color: "#a4120e"},
	{Label: ">30", Color: "#8b0000"},
}

// PressureBreaks covers 969 hPa to above 1017 hPa in 3 hPa steps
// (buckets 0–16).
var PressureBreaks = []Break{
	{Label: "<=969", Color: "#2c115f"},
	{Label: "969~972", Color: "#38186e"},
	{Label: "972~975", Color: "#44207c"},
	{Label: "975~978", Color: "#502a88"},
	{Label: "978~981", Color: "#5c3492"},
	{Label: "981~984", Color: "#683e9a"},
	{Label: "984~987", Color: "#7449a1"},
	{Label: "987~990", Color: "#8054a6"},
	{Label: "990~993", Color: "#8c60aa"},
	{Label: "993~996", Color: "#986cac"},
	{Label: "996~999", Color: "#a478ad"},
	{Label: "999~1002", Color: "#b085ad"},
	{Label: "1002~1005", Color: "#bc92ab"},
	{Label: "1005~1008", Color: "#c8a0a8"},
	{Label: "1008~1011", Color: "#d4aea4"},
	{Label: "1011~1014", Color: "#e0bd9e"},
	{Label: ">1017", Color: "#eccd97"},
}

// RelativeHumidityBreaks covers 0–100% in 10% steps (buckets 0–9).
var RelativeHumidityBreaks = []Break{
	{Label: "<=10", Color: "#8b4513"},
	{Label: "10~20", Color: "#a86121"},
	{Label: "20~30", Color: "#c47e32"},
	{Label: "30~40", Color: "#dc9e4e"},
	{Label: "40~50", Color: "#eec382"},
	{Label: "50~60", Color: "#d9e8b5"},
	{Label: "60~70", Color: "#a4d6b8"},
	{Label: "70~80", Color: "#6fbcbb"},
	{Label: "80~90", Color: "#3f97bd"},
	{Label: ">90", Color: "#1f6bb0"},
}

// WindSpeedBreaks matches the Beaufort-derived ladder (buckets 0–16).
// Bucket 2 shares its bound with bucket 1 and is retained for table
// alignment even though the scheme never selects it.
var WindSpeedBreaks = []Break{
	{Label: "0~2.5", Color: "#e8f6e3"},
	{Label: "2.5~5.5", Color: "#c3e9b4"},
	{Label: "5.5", Color: "#9bd98a"},
	{Label: "5.5~8.3", Color: "#6fc565"},
	{Label: "8.3~11.1", Color: "#48af48"},
	{Label: "11.1~13.9", Color: "#2f9637"},
	{Label: "13.9~17.4", Color: "#f7e96f"},
	{Label: "17.4~20.9", Color: "#f3cf4c"},
	{Label: "20.9~24.5", Color: "#eeb330"},
	{Label: "24.5~29", Color: "#e7931e"},
	{Label: "29~33", Color: "#dd7215"},
	{Label: "33~37", Color: "#d05312"},
	{Label: "37~42", Color: "#c03612"},
	{Label: "42~47", Color: "#ab1d14"},
	{Label: "47~51", Color: "#921017"},
	{Label: "51~67", Color: "#750b1c"},
	{Label: ">67", Color: "#540923"},
}

// HourlyPrecipBreaks covers mm of rain in the last hour (buckets 0–8).
var HourlyPrecipBreaks = []Break{
	{Label: "0~0.2", Color: "#f5f5f5"},
	{Label: "0.2~2", Color: "#c2e8c2"},
	{Label: "2~4", Color: "#8fd08f"},
	{Label: "4~6", Color: "#52b552"},
	{Label: "6~8", Color: "#3aa0d8"},
	{Label: "8~10", Color: "#1f6fd0"},
	{Label: "10~20", Color: "#9437d8"},
	{Label: "20~50", Color: "#d03ab4"},
	{Label: ">50", Color: "#8b1a4a"},
}
