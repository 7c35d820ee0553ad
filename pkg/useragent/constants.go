package useragent

// Browser family keys used by the distribution tables and the composer.
const (
	// BrowserChrome identifies Google Chrome
	BrowserChrome = "chrome"

	// BrowserIExplorer identifies Microsoft Internet Explorer
	BrowserIExplorer = "iexplorer"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox = "firefox"

	// BrowserSafari identifies Apple Safari
	BrowserSafari = "safari"

	// BrowserOpera identifies Presto-era Opera
	BrowserOpera = "opera"

	// BrowserUnknown is reported by Detect when no family matches
	BrowserUnknown = "unknown"
)

// Operating system keys. They double as keys of the architecture table.
const (
	// OSWindows identifies Microsoft Windows
	OSWindows = "win"

	// OSMac identifies Apple macOS
	OSMac = "mac"

	// OSLinux identifies desktop Linux (X11)
	OSLinux = "lin"

	// OSUnknown is reported by Detect when no OS matches
	OSUnknown = "unknown"
)
