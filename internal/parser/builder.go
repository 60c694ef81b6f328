package parser

import "github.com/Traverser25/GetCoditer/internal/models"

// Build turns one raw comment into a structured candidate. Skills are
// detected over the extracted blurb, not the full body, so labeled lines
// never pollute the stack. The sole admission rule: a comment with neither
// a blurb nor any detected skill carries nothing worth storing, and ok
// comes back false. Every other missing field is tolerated.
func Build(comment models.RawComment) (models.Candidate, bool) {
	fields := ExtractFields(comment.Body)
	stack := DetectSkills(fields.Blurb)

	if fields.Blurb == "" && len(stack) == 0 {
		return models.Candidate{}, false
	}

	author := comment.Author
	if author == "" {
		author = models.UnknownAuthor
	}

	return models.Candidate{
		Author:          author,
		Score:           comment.Score,
		Location:        fields.Location,
		Relocate:        fields.Relocate,
		JobType:         fields.JobType,
		NoticePeriod:    fields.NoticePeriod,
		ExperienceYears: fields.ExperienceYears,
		CVLink:          fields.CVLink,
		CVIsLink:        fields.CVIsLink,
		Blurb:           fields.Blurb,
		TechStack:       stack,
	}, true
}
