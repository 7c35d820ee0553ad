package useragent

import "github.com/dmitrymomot/uagen/pkg/random"

// Market share tables circa their authorship. Order matters for
// reproducibility: a seeded source walks options in this order.
var defaultBrowserWeights = random.Table{
	{Label: BrowserChrome, Weight: 0.45132810566},
	{Label: BrowserIExplorer, Weight: 0.27477061836},
	{Label: BrowserFirefox, Weight: 0.19384170608},
	{Label: BrowserSafari, Weight: 0.06186781118},
	{Label: BrowserOpera, Weight: 0.01574236955},
}

var defaultOSWeights = map[string]random.Table{
	BrowserChrome: {
		{Label: OSWindows, Weight: 0.89},
		{Label: OSMac, Weight: 0.09},
		{Label: OSLinux, Weight: 0.02},
	},
	BrowserFirefox: {
		{Label: OSWindows, Weight: 0.83},
		{Label: OSMac, Weight: 0.16},
		{Label: OSLinux, Weight: 0.01},
	},
	BrowserOpera: {
		{Label: OSWindows, Weight: 0.91},
		{Label: OSMac, Weight: 0.03},
		{Label: OSLinux, Weight: 0.06},
	},
	BrowserSafari: {
		{Label: OSWindows, Weight: 0.04},
		{Label: OSMac, Weight: 0.96},
	},
	BrowserIExplorer: {
		{Label: OSWindows, Weight: 1},
	},
}

var defaultArchWeights = map[string]random.Table{
	OSLinux: {
		{Label: "i686", Weight: 0.50},
		{Label: "x86_64", Weight: 0.50},
	},
	OSMac: {
		{Label: "Intel", Weight: 0.48},
		{Label: "PPC", Weight: 0.01},
		{Label: "U; Intel", Weight: 0.48},
		{Label: "U; PPC", Weight: 0.01},
	},
	OSWindows: {
		{Label: "", Weight: 0.33},
		{Label: "WOW64", Weight: 0.33},
		{Label: "Win64; x64", Weight: 0.33},
	},
}

var defaultLanguages = []string{
	"AB", "AF", "AN", "AR", "AS", "AZ", "BE", "BG", "BN", "BO", "BR", "BS", "CA", "CE", "CO", "CS",
	"CU", "CY", "DA", "DE", "EL", "EN", "EO", "ES", "ET", "EU", "FA", "FI", "FJ", "FO", "FR", "FY",
	"GA", "GD", "GL", "GV", "HE", "HI", "HR", "HT", "HU", "HY", "ID", "IS", "IT", "JA", "JV", "KA",
	"KG", "KO", "KU", "KW", "KY", "LA", "LB", "LI", "LN", "LT", "LV", "MG", "MK", "MN", "MO", "MS",
	"MT", "MY", "NB", "NE", "NL", "NN", "NO", "OC", "PL", "PT", "RM", "RO", "RU", "SC", "SE", "SK",
	"SL", "SO", "SQ", "SR", "SV", "SW", "TK", "TR", "TY", "UK", "UR", "UZ", "VI", "VO", "YI", "ZH",
}

// DefaultSpec returns a copy of the compiled-in tables.
func DefaultSpec() RegistrySpec {
	return RegistrySpec{
		Browsers:  defaultBrowserWeights,
		OS:        defaultOSWeights,
		Arch:      defaultArchWeights,
		Languages: defaultLanguages,
	}.clone()
}
