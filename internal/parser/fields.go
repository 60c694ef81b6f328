package parser

import "strings"

// fieldTable lists each field's accepted label spellings. Order matters
// twice over: the first key whose label matches a line claims it, and
// within a key the first matching label wins, so this is a slice and not
// a map. Blurb is deliberately absent — it collects whatever no label
// claims.
var fieldTable = []struct {
	key    string
	labels []string
}{
	{"location", []string{"location"}},
	{"relocate", []string{"willing to relocate", "relocate"}},
	{"type", []string{"type"}},
	{"notice_period", []string{"notice period", "np"}},
	{"experience", []string{"total years of experience", "experience", "yoe"}},
	{"cv_link", []string{"résumé/cv link", "cv", "resume"}},
}

// Fields is the labeled-field view of one comment body, plus the two
// scalars derived from it.
type Fields struct {
	Location        string
	Relocate        string
	JobType         string
	NoticePeriod    string
	Experience      string
	CVLink          string
	Blurb           string
	ExperienceYears float64
	CVIsLink        bool
}

// ExtractFields splits a comment body into labeled fields. A line claims a
// field when it starts with "<label>:" (case-insensitive); the value is
// everything after the first colon, trimmed, later colons included. Lines
// matching no label pile up into the blurb in original order. Missing
// fields stay empty — malformed input is never an error here.
func ExtractFields(body string) Fields {
	values := make(map[string]string, len(fieldTable))
	var blurbLines []string

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		matched := false
		for _, ft := range fieldTable {
			for _, label := range ft.labels {
				if strings.HasPrefix(lower, label+":") {
					_, value, _ := strings.Cut(line, ":")
					values[ft.key] = strings.TrimSpace(value)
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			blurbLines = append(blurbLines, line)
		}
	}

	f := Fields{
		Location:     values["location"],
		Relocate:     values["relocate"],
		JobType:      values["type"],
		NoticePeriod: values["notice_period"],
		Experience:   values["experience"],
		CVLink:       values["cv_link"],
		Blurb:        strings.TrimSpace(strings.Join(blurbLines, "\n")),
	}

	f.ExperienceYears = NormalizeExperience(f.Experience)
	f.Location = NormalizeLocation(f.Location)

	cv := strings.ToLower(strings.TrimSpace(f.CVLink))
	f.CVIsLink = strings.HasPrefix(cv, "http://") || strings.HasPrefix(cv, "https://")

	return f
}
