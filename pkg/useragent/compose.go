package useragent

import (
	"strconv"

	"github.com/dmitrymomot/uagen/pkg/random"
)

type templateFunc func(g *Generator, os string) string

var templates = map[string]templateFunc{
	BrowserFirefox:   firefoxAgent,
	BrowserChrome:    chromeAgent,
	BrowserOpera:     operaAgent,
	BrowserSafari:    safariAgent,
	BrowserIExplorer: iexplorerAgent,
}

func firefoxAgent(g *Generator, os string) string {
	ver := strconv.Itoa(g.src.Number(5, 15)) + RevisionSuffix(g.src, 2)
	proc := g.proc(os)

	var platform string
	switch os {
	case OSWindows:
		platform = "(Windows NT " + g.version(KindNT)
		if proc != "" {
			platform += "; " + proc
		}
	case OSMac:
		platform = "(Macintosh; " + proc + " Mac OS X " + g.version(KindOSX)
	default:
		platform = "(X11; Linux " + proc
	}

	// rv: drops the last revision group
	return "Mozilla/5.0 " + platform + "; rv:" + ver[:len(ver)-2] + ") Gecko/20100101 Firefox/" + ver
}

func chromeAgent(g *Generator, os string) string {
	webkit := g.version(KindSafari)

	var platform string
	switch os {
	case OSMac:
		platform = "(Macintosh; " + g.proc(OSMac) + " Mac OS X " + FormatVersionDelim(g.src, KindOSX, "_") + ") "
	case OSWindows:
		platform = "(Windows; U; Windows NT " + g.version(KindNT) + ")"
	default:
		// no closing parenthesis, kept for output parity
		platform = "(X11; Linux " + g.proc(os)
	}

	chrome := g.version(KindChrome)
	return "Mozilla/5.0 " + platform + " AppleWebKit/" + webkit + " (KHTML, like Gecko) Chrome/" + chrome + " Safari/" + webkit
}

func operaAgent(g *Generator, os string) string {
	presto := g.version(KindPresto)
	presto2 := g.version(KindPresto2)
	engine := " Presto/" + presto + " Version/" + presto2 + ")"

	var platform string
	switch os {
	case OSWindows:
		nt := g.version(KindNT)
		platform = "(Windows NT " + nt + "; U; " + g.PickLanguage() + engine
	case OSLinux:
		proc := g.proc(OSLinux)
		platform = "(X11; Linux " + proc + "; U; " + g.PickLanguage() + engine
	default:
		// the mac form draws its own engine versions
		osx := g.version(KindOSX)
		lang := g.PickLanguage()
		macPresto := g.version(KindPresto)
		macPresto2 := g.version(KindPresto2)
		platform = "(Macintosh; Intel Mac OS X " + osx + " U; " + lang + " Presto/" + macPresto + " Version/" + macPresto2 + ")"
	}

	major := g.src.Number(9, 14)
	minor := g.src.Number(0, 99)
	return "Opera/" + strconv.Itoa(major) + "." + strconv.Itoa(minor) + " " + platform
}

func safariAgent(g *Generator, os string) string {
	webkit := g.version(KindSafari)

	major := g.src.Number(4, 7)
	minor := g.src.Number(0, 1)
	patch := g.src.Number(0, 10)
	ver := strconv.Itoa(major) + "." + strconv.Itoa(minor) + "." + strconv.Itoa(patch)

	var platform string
	if os == OSMac {
		proc := g.proc(OSMac)
		osx := FormatVersionDelim(g.src, KindOSX, "_")
		rv := g.src.Number(2, 6)
		// trailing space stands in for the separator before AppleWebKit
		platform = "(Macintosh; " + proc + " Mac OS X " + osx + " rv:" + strconv.Itoa(rv) + ".0; " + g.PickLanguage() + ") "
	} else {
		platform = "(Windows; U; Windows NT " + g.version(KindNT) + ")"
	}

	return "Mozilla/5.0 " + platform + "AppleWebKit/" + webkit + " (KHTML, like Gecko) Version/" + ver + " Safari/" + webkit
}

var ieTouch = []string{"Touch; ", ""}

func iexplorerAgent(g *Generator, _ string) string {
	ver := g.src.Number(7, 11)

	if ver >= 11 {
		// IE11 dropped the MSIE token
		nt := g.src.Number(1, 3)
		return "Mozilla/5.0 (Windows NT 6." + strconv.Itoa(nt) + "; Trident/7.0; " + random.Pick(g.src, ieTouch) + "rv:11.0) like Gecko"
	}

	nt := g.version(KindNT)
	trident := g.version(KindTrident)
	var clr string
	if random.Bool(g.src) {
		clr = "; .NET CLR " + g.version(KindNet)
	}
	return "Mozilla/5.0 (compatible; MSIE " + strconv.Itoa(ver) + ".0; Windows NT " + nt + "; Trident/" + trident + clr + ")"
}
