package roadmap

import "regexp"

// All patterns are compiled once at package init and never mutated.

// Structure markers a validator looks for before parsing is attempted.
var structureMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)day\s*\d+`),
	regexp.MustCompile(`(?i)week\s*\d+`),
	regexp.MustCompile(`(?i)lesson\s*\d+`),
	regexp.MustCompile(`(?i)step\s*\d+`),
	regexp.MustCompile(`(?i)phase\s*\d+`),
	regexp.MustCompile(`(?i)module\s*\d+`),
	regexp.MustCompile(`(?i)learning\s*path`),
	regexp.MustCompile(`(?i)roadmap`),
	regexp.MustCompile(`(?i)curriculum`),
	regexp.MustCompile(`(?i)course\s*outline`),
}

// Title extraction, strategy 1: explicit indicator lines.
var titleIndicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:title|course|program|curriculum|roadmap)[:\s]*(.+)`),
	regexp.MustCompile(`(?i)(?:learning|training|study)[:\s]+(.+)`),
	regexp.MustCompile(`(?i)(?:complete|comprehensive|master)[:\s]+(.+)`),
}

// Title extraction, strategy 2: keyword-bearing prominent lines.
var titleKeywords = []string{
	"roadmap", "plan", "course", "learning", "guide",
	"curriculum", "syllabus", "program", "training", "tutorial",
}

var pageChapterPrefix = regexp.MustCompile(`(?i)^(page|chapter|section|part)\s*\d+`)

// Title extraction, strategy 3: lines starting with these are metadata, not titles.
var titleSkipPrefixes = []string{
	"page", "chapter", "section", "date", "author", "version", "©", "copyright",
}

// Description extraction, strategy 1: explicit indicator lines.
var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:description|overview|about|introduction)[:\s]*(.+)`),
	regexp.MustCompile(`(?i)(?:this course|this program|this guide)[:\s]*(.+)`),
	regexp.MustCompile(`(?i)(?:you will learn|learn how to|master)[:\s]*(.+)`),
}

// Description extraction, strategy 2: lines scoring on instructional vocabulary.
var descriptionKeywords = []string{
	"learn", "master", "understand", "develop", "build",
	"create", "course", "comprehensive", "complete",
}

// lessonTemplate pairs a header pattern with the boundary pattern that ends a
// lesson's content. RE2 has no lookahead, so instead of a lazy group with a
// lookahead terminator the content span runs from the header match end to the
// next boundary match (or end of text).
type lessonTemplate struct {
	name     string
	header   *regexp.Regexp
	boundary *regexp.Regexp
}

const sepClass = `[:\-\s` + "–—" + `]*`

// Templates are tried in fixed order; the first one producing at least two
// valid lessons wins.
// Headers and boundaries are line-anchored: a keyword mentioned mid-sentence
// ("review of day 1") neither opens a lesson nor ends the previous one.
var lessonTemplates = []lessonTemplate{
	{
		name:     "day",
		header:   regexp.MustCompile(`(?im)^\s*day\s*(\d+)` + sepClass),
		boundary: regexp.MustCompile(`(?im)^\s*(?:day|lesson|step|week|module|chapter)\s*\d+`),
	},
	{
		name:     "lesson",
		header:   regexp.MustCompile(`(?im)^\s*lesson\s*(\d+)` + sepClass),
		boundary: regexp.MustCompile(`(?im)^\s*(?:day|lesson|step|week|module|chapter)\s*\d+`),
	},
	{
		name:     "step",
		header:   regexp.MustCompile(`(?im)^\s*step\s*(\d+)` + sepClass),
		boundary: regexp.MustCompile(`(?im)^\s*(?:day|lesson|step|week|module|chapter)\s*\d+`),
	},
	{
		name:     "week",
		header:   regexp.MustCompile(`(?im)^\s*week\s*(\d+)` + sepClass),
		boundary: regexp.MustCompile(`(?im)^\s*(?:week|day|lesson)\s*\d+`),
	},
	{
		name:     "module",
		header:   regexp.MustCompile(`(?im)^\s*module\s*(\d+)` + sepClass),
		boundary: regexp.MustCompile(`(?im)^\s*(?:module|lesson|chapter)\s*\d+`),
	},
	{
		name:     "chapter",
		header:   regexp.MustCompile(`(?im)^\s*chapter\s*(\d+)` + sepClass),
		boundary: regexp.MustCompile(`(?im)^\s*(?:chapter|lesson)\s*\d+`),
	},
	{
		name:     "numbered",
		header:   regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s*`),
		boundary: regexp.MustCompile(`(?m)^\s*\d+[.)]`),
	},
}

// Strategy B: bullet and enumeration markers that open a new lesson.
var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[` + "•▪▫▬◦‣⁃" + `]\s*(.+)$`),
	regexp.MustCompile(`^\s*[-*+]\s+(.+)$`),
	regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`),
	regexp.MustCompile(`^\s*[a-zA-Z][.)]\s+(.+)$`),
	regexp.MustCompile(`^\s*[IVX]+[.)]\s+(.+)$`),
}

// Segment splitting for Strategy C.
var blankLineSplit = regexp.MustCompile(`\n\s*\n+`)

// Topic extraction patterns.
var topicMarkers = []string{"•", "-", "▪", "▫", "◦", "‣", "⁃", "→", "✓", "*"}

var topicVerbPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:learn|understand|master|build|create|develop|implement|practice|study|explore|discover)\s+(.+)`),
	regexp.MustCompile(`(?i)(?:how to|introduction to|overview of|basics of)\s+(.+)`),
}

var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

var topicStopwords = map[string]bool{
	"the": true, "this": true, "that": true, "with": true, "for": true, "and": true,
}

var quotedPhrase = regexp.MustCompile(`["'](.*?)["']`)
var colonPhrase = regexp.MustCompile(`:\s*([^.\n]+)`)

// Duration parsing: each unit contributes value*minutes to the total.
type durationUnit struct {
	pattern *regexp.Regexp
	minutes float64
}

var durationUnits = []durationUnit{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)`), 60},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)`), 1},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*days?`), 480},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*weeks?`), 2400},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*months?`), 9600},
}

// Leading/trailing junk stripped from lesson titles.
var leadingTitleJunk = regexp.MustCompile(`^[#*:\-\s` + "–—" + `.,;]+`)
var trailingTitleJunk = regexp.MustCompile(`[:\-\s` + "–—" + `.,;]+$`)
