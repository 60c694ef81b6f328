package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFieldsLabeled(t *testing.T) {
	body := "Location: Bangalore\n" +
		"Willing to relocate: Yes\n" +
		"Type: Full-time\n" +
		"NP: 30 days\n" +
		"YOE: 3 years\n" +
		"CV: https://example.com/cv\n" +
		"I build backends."

	f := ExtractFields(body)

	assert.Equal(t, "Bengaluru", f.Location)
	assert.Equal(t, "Yes", f.Relocate)
	assert.Equal(t, "Full-time", f.JobType)
	assert.Equal(t, "30 days", f.NoticePeriod)
	assert.Equal(t, "3 years", f.Experience)
	assert.Equal(t, 3.0, f.ExperienceYears)
	assert.Equal(t, "https://example.com/cv", f.CVLink)
	assert.True(t, f.CVIsLink)
	assert.Equal(t, "I build backends.", f.Blurb)
}

func TestExtractFieldsLabelsAreCaseInsensitive(t *testing.T) {
	f := ExtractFields("LOCATION: pune\nexperience: 2 yrs")
	assert.Equal(t, "Pune", f.Location)
	assert.Equal(t, 2.0, f.ExperienceYears)
}

// The value keeps everything after the first colon, later colons included.
func TestExtractFieldsFirstColonOnly(t *testing.T) {
	f := ExtractFields("CV: https://example.com:8443/cv")
	assert.Equal(t, "https://example.com:8443/cv", f.CVLink)
	assert.True(t, f.CVIsLink)
}

func TestExtractFieldsMissingFieldsStayEmpty(t *testing.T) {
	f := ExtractFields("just a blurb line")
	assert.Empty(t, f.Relocate)
	assert.Empty(t, f.NoticePeriod)
	assert.Empty(t, f.CVLink)
	assert.False(t, f.CVIsLink)
	assert.Equal(t, 0.0, f.ExperienceYears)
	assert.Equal(t, "just a blurb line", f.Blurb)
}

func TestExtractFieldsUnmatchedLinesBecomeBlurb(t *testing.T) {
	body := "Hi all!\nLocation: Delhi\nLooking for backend roles.\n\nPing me."
	f := ExtractFields(body)
	assert.Equal(t, "Delhi", f.Location)
	assert.Equal(t, "Hi all!\nLooking for backend roles.\n\nPing me.", f.Blurb)
}

// "Experience" must win over "yoe" only by declaration order within its own
// key; across keys the first matching key claims the line, so a line
// starting "Notice period:" never lands in the blurb.
func TestExtractFieldsLabelSynonyms(t *testing.T) {
	f := ExtractFields("Total years of experience: 4+ years\nNotice period: immediate\nResume: see profile")
	assert.Equal(t, "4+ years", f.Experience)
	assert.Equal(t, 4.0, f.ExperienceYears)
	assert.Equal(t, "immediate", f.NoticePeriod)
	assert.Equal(t, "see profile", f.CVLink)
	assert.False(t, f.CVIsLink)
	assert.Empty(t, f.Blurb)
}

func TestExtractFieldsCVLinkDetection(t *testing.T) {
	tests := []struct {
		name   string
		cv     string
		isLink bool
	}{
		{"https", "https://x.com/cv", true},
		{"http", "http://x.com/cv", true},
		{"mixed case scheme", "HTTPS://x.com/cv", true},
		{"bare text", "ask me", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFields("CV: " + tt.cv)
			assert.Equal(t, tt.isLink, f.CVIsLink)
		})
	}
}
