package useragent

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Family is the browser family and OS recognised in a User-Agent string,
// expressed with the same keys the generator samples.
type Family struct {
	Browser string
	Version string
	OS      string
}

// String returns a short identifier such as "Chrome/13.0.800.0 (win)".
func (f Family) String() string {
	version := f.Version
	if version == "" {
		version = "?"
	}
	return fmt.Sprintf("%s/%s (%s)", DisplayName(f.Browser), version, f.OS)
}

// keywordSet optimizes keyword lookups using map structure
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	windowsKeywords = newKeywordSet("windows")
	macKeywords     = newKeywordSet("macintosh", "mac os x")
	linuxKeywords   = newKeywordSet("linux", "x11")
)

// BrowserPattern defines a pattern for detecting a browser family
type BrowserPattern struct {
	Name      string
	Keywords  []string
	Excludes  []string
	Regex     *regexp.Regexp
	Fixed     string
	OrderHint int
}

// Browser detection patterns in order of checking priority.
// Chrome strings carry "Safari/" so Safari comes after Chrome.
var browserPatterns = []BrowserPattern{
	{
		Name:      BrowserOpera,
		Keywords:  []string{"opera/"},
		Regex:     regexp.MustCompile(`opera/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserIExplorer,
		Keywords:  []string{"msie "},
		Regex:     regexp.MustCompile(`msie ([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserIExplorer,
		Keywords:  []string{"trident/", "rv:11.0"},
		Fixed:     "11.0",
		OrderHint: 25,
	},
	{
		Name:      BrowserChrome,
		Keywords:  []string{"chrome/"},
		Regex:     regexp.MustCompile(`chrome/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  []string{"firefox/"},
		Regex:     regexp.MustCompile(`firefox/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserSafari,
		Keywords:  []string{"safari/"},
		Excludes:  []string{"chrome/"},
		Regex:     regexp.MustCompile(`version/([\d.]+)`),
		OrderHint: 50,
	},
}

// matchPattern checks if the lowercased UA string matches a browser pattern
func matchPattern(ua string, pattern BrowserPattern) bool {
	for _, keyword := range pattern.Keywords {
		if !strings.Contains(ua, keyword) {
			return false
		}
	}
	for _, exclude := range pattern.Excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

func extractVersion(ua string, pattern BrowserPattern) string {
	if pattern.Regex == nil {
		return pattern.Fixed
	}
	matches := pattern.Regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		return matches[1]
	}
	return pattern.Fixed
}

// DetectOS returns the OS key of a lowercased UA string.
func DetectOS(lowerUA string) string {
	switch {
	case windowsKeywords.contains(lowerUA):
		return OSWindows
	case macKeywords.contains(lowerUA):
		return OSMac
	case linuxKeywords.contains(lowerUA):
		return OSLinux
	default:
		return OSUnknown
	}
}

// Detect classifies a User-Agent string into the generator's browser and
// OS keys. Unrecognised parts are reported as BrowserUnknown / OSUnknown.
func Detect(ua string) Family {
	lowerUA := strings.ToLower(ua)
	f := Family{Browser: BrowserUnknown, OS: DetectOS(lowerUA)}
	if lowerUA == "" {
		return f
	}

	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			f.Browser = pattern.Name
			f.Version = extractVersion(lowerUA, pattern)
			break
		}
	}
	return f
}

var displayNames = map[string]string{
	BrowserIExplorer: "Internet Explorer",
	OSWindows:        "Windows",
	OSMac:            "macOS",
	OSLinux:          "Linux",
}

// DisplayName returns a human-readable name for a browser or OS key.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	if key == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(key)
}
