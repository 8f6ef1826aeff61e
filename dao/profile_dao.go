package dao

import (
	"devconnect/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileDAO struct {
	db *gorm.DB
}

// NewProfileDAO 创建一个新的 ProfileDAO 实例
func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{db: db}
}

// subListOrder presents experience/education newest-insertion-first, the
// unshift contract. Ordering is by insertion (id), not by entry dates.
func subListOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

// Upsert performs a single atomic insert-or-update keyed on user_id. The
// assignments map enumerates exactly the columns to overwrite on conflict,
// so fields absent from the request are left untouched.
func (dao *ProfileDAO) Upsert(profile *model.Profile, assignments map[string]interface{}) error {
	return dao.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(profile).Error
}

// GetByUserID 根据用户 ID 获取档案, 含用户信息与经历列表
func (dao *ProfileDAO) GetByUserID(userID uint64) (*model.Profile, error) {
	var profile model.Profile
	err := dao.db.Preload("User").
		Preload("Experience", subListOrder).
		Preload("Education", subListOrder).
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List 获取全部档案
func (dao *ProfileDAO) List() ([]model.Profile, error) {
	var profiles []model.Profile
	err := dao.db.Preload("User").
		Preload("Experience", subListOrder).
		Preload("Education", subListOrder).
		Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

// AddExperience 新增一条工作经历
func (dao *ProfileDAO) AddExperience(exp *model.Experience) error {
	return dao.db.Create(exp).Error
}

// DeleteExperience removes the entry with the given id from the profile's
// list. Deleting an id that is not present is a no-op, not an error.
func (dao *ProfileDAO) DeleteExperience(profileID, expID uint64) error {
	return dao.db.Where("profile_id = ? AND id = ?", profileID, expID).
		Delete(&model.Experience{}).Error
}

// AddEducation 新增一条教育经历
func (dao *ProfileDAO) AddEducation(edu *model.Education) error {
	return dao.db.Create(edu).Error
}

// DeleteEducation 按 ID 删除教育经历; 不存在时为幂等空操作
func (dao *ProfileDAO) DeleteEducation(profileID, eduID uint64) error {
	return dao.db.Where("profile_id = ? AND id = ?", profileID, eduID).
		Delete(&model.Education{}).Error
}
