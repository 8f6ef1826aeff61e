package service

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"devconnect/api/v1/request"
	"devconnect/dao"
	"devconnect/internal/apperr"
	"devconnect/model"

	"gorm.io/gorm"
)

// ProfileService owns the profile document: the atomic upsert, the ordered
// experience/education sub-lists, and the account-wide cascade delete.
type ProfileService struct {
	dao   *dao.ProfileDAO
	users *dao.UserDAO
}

// NewProfileService 创建一个新的 ProfileService 实例
func NewProfileService(dao *dao.ProfileDAO, users *dao.UserDAO) *ProfileService {
	return &ProfileService{dao: dao, users: users}
}

// profileField enumerates one recognized optional field: its column, the
// submitted value, whether it is URL-normalized, and how it lands on the
// model for the insert path. Unrecognized request content never reaches
// the store.
type profileField struct {
	column string
	value  string
	isURL  bool
	label  string
	assign func(p *model.Profile, v string)
}

// Upsert validates and normalizes the submitted fields, then performs a
// single atomic insert-or-update keyed on the owner id. Empty optional
// fields are omitted, not stored as empty strings.
func (s *ProfileService) Upsert(userID uint64, req *request.UpsertProfileRequest) (*model.Profile, error) {
	if req.Status == "" || len(req.Skills) == 0 {
		var msgs []string
		if req.Status == "" {
			msgs = append(msgs, "Status is required")
		}
		if len(req.Skills) == 0 {
			msgs = append(msgs, "Skills is required")
		}
		return nil, apperr.Validation(msgs...)
	}

	profile := &model.Profile{
		UserID: userID,
		Status: req.Status,
		Skills: model.StringList(req.Skills),
	}
	assignments := map[string]interface{}{
		"status": req.Status,
		"skills": model.StringList(req.Skills),
	}

	fields := []profileField{
		{column: "company", value: req.Company,
			assign: func(p *model.Profile, v string) { p.Company = v }},
		{column: "website", value: req.Website, isURL: true, label: "Website must be a valid URL",
			assign: func(p *model.Profile, v string) { p.Website = v }},
		{column: "location", value: req.Location,
			assign: func(p *model.Profile, v string) { p.Location = v }},
		{column: "bio", value: req.Bio,
			assign: func(p *model.Profile, v string) { p.Bio = v }},
		{column: "github_username", value: req.GithubUsername,
			assign: func(p *model.Profile, v string) { p.GithubUsername = v }},
		{column: "social_youtube", value: req.Youtube, isURL: true, label: "Youtube must be a valid URL",
			assign: func(p *model.Profile, v string) { p.Social.Youtube = v }},
		{column: "social_twitter", value: req.Twitter, isURL: true, label: "Twitter must be a valid URL",
			assign: func(p *model.Profile, v string) { p.Social.Twitter = v }},
		{column: "social_facebook", value: req.Facebook, isURL: true, label: "Facebook must be a valid URL",
			assign: func(p *model.Profile, v string) { p.Social.Facebook = v }},
		{column: "social_linkedin", value: req.Linkedin, isURL: true, label: "Linkedin must be a valid URL",
			assign: func(p *model.Profile, v string) { p.Social.Linkedin = v }},
		{column: "social_instagram", value: req.Instagram, isURL: true, label: "Instagram must be a valid URL",
			assign: func(p *model.Profile, v string) { p.Social.Instagram = v }},
	}

	var violations []string
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" {
			continue
		}
		if f.isURL {
			normalized, err := normalizeURL(v)
			if err != nil {
				violations = append(violations, f.label)
				continue
			}
			v = normalized
		}
		f.assign(profile, v)
		assignments[f.column] = v
	}
	if len(violations) > 0 {
		return nil, apperr.Validation(violations...)
	}

	if err := s.dao.Upsert(profile, assignments); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetMe(userID)
}

// GetMe 获取当前用户的档案
func (s *ProfileService) GetMe(userID uint64) (*model.Profile, error) {
	profile, err := s.dao.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("There is no profile for this user", http.StatusBadRequest)
		}
		return nil, apperr.Internal(err)
	}
	return profile, nil
}

// GetByUserID 根据用户 ID 获取档案 (公共)
func (s *ProfileService) GetByUserID(userID uint64) (*model.Profile, error) {
	profile, err := s.dao.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Profile not found", http.StatusBadRequest)
		}
		return nil, apperr.Internal(err)
	}
	return profile, nil
}

// List 获取全部档案 (公共)
func (s *ProfileService) List() ([]model.Profile, error) {
	profiles, err := s.dao.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return profiles, nil
}

// AddExperience prepends a new entry to the caller's experience list and
// returns the full updated profile.
func (s *ProfileService) AddExperience(userID uint64, req *request.ExperienceRequest) (*model.Profile, error) {
	from, to, err := entryDates(req.From, req.To)
	if err != nil {
		return nil, err
	}
	profile, err := s.GetMe(userID)
	if err != nil {
		return nil, err
	}
	exp := &model.Experience{
		ProfileID:   profile.ID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	}
	if err := s.dao.AddExperience(exp); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetMe(userID)
}

// RemoveExperience deletes the entry by id. A missing id is an accepted
// idempotent no-op; the caller still gets the current profile back.
func (s *ProfileService) RemoveExperience(userID, expID uint64) (*model.Profile, error) {
	profile, err := s.GetMe(userID)
	if err != nil {
		return nil, err
	}
	if err := s.dao.DeleteExperience(profile.ID, expID); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetMe(userID)
}

// AddEducation 在教育经历列表头部插入新条目并返回完整档案
func (s *ProfileService) AddEducation(userID uint64, req *request.EducationRequest) (*model.Profile, error) {
	from, to, err := entryDates(req.From, req.To)
	if err != nil {
		return nil, err
	}
	profile, err := s.GetMe(userID)
	if err != nil {
		return nil, err
	}
	edu := &model.Education{
		ProfileID:    profile.ID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	}
	if err := s.dao.AddEducation(edu); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetMe(userID)
}

// RemoveEducation 按 ID 删除教育经历; 不存在时为幂等空操作
func (s *ProfileService) RemoveEducation(userID, eduID uint64) (*model.Profile, error) {
	profile, err := s.GetMe(userID)
	if err != nil {
		return nil, err
	}
	if err := s.dao.DeleteEducation(profile.ID, eduID); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetMe(userID)
}

// DeleteAccount removes the caller's posts, profile and user record as one
// transaction; a partial failure rolls back rather than leaving the store
// inconsistent.
func (s *ProfileService) DeleteAccount(userID uint64) error {
	if err := s.users.DeleteAccount(userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// entryDates parses the from/to pair and enforces that from precedes to
// when to is present.
func entryDates(fromRaw, toRaw string) (time.Time, *time.Time, error) {
	from, err := parseDate(fromRaw)
	if err != nil {
		return time.Time{}, nil, apperr.Validation("From date is required")
	}
	if toRaw == "" {
		return from, nil, nil
	}
	to, err := parseDate(toRaw)
	if err != nil {
		return time.Time{}, nil, apperr.Validation("To date must be a valid date")
	}
	if !from.Before(to) {
		return time.Time{}, nil, apperr.Validation("From date must be before to date")
	}
	return from, &to, nil
}
