package request

import (
	"encoding/json"
	"errors"
	"strings"
)

// SkillList accepts either a delimited string ("js, go") or a JSON array of
// strings, and normalizes both into a list of trimmed entries.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = splitSkills(single)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		out := make(SkillList, 0, len(list))
		for _, item := range list {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*s = out
		return nil
	}
	return errors.New("skills must be a string or an array of strings")
}

func splitSkills(raw string) SkillList {
	parts := strings.Split(raw, ",")
	out := make(SkillList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type UpsertProfileRequest struct {
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Status         string    `json:"status" binding:"required"`
	Skills         SkillList `json:"skills" binding:"required,min=1"`
	Bio            string    `json:"bio"`
	GithubUsername string    `json:"githubusername"`
	Youtube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Facebook       string    `json:"facebook"`
	Linkedin       string    `json:"linkedin"`
	Instagram      string    `json:"instagram"`
}

// Entry dates arrive as "YYYY-MM-DD" strings; the service parses them and
// enforces that from precedes to.

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required,datetime=2006-01-02"`
	To          string `json:"to" binding:"omitempty,datetime=2006-01-02"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required,datetime=2006-01-02"`
	To           string `json:"to" binding:"omitempty,datetime=2006-01-02"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}
