package dao

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"devconnect/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testDB *gorm.DB

// DAO tests run against a real MySQL instance. Point TEST_MYSQL_DSN at one
// to enable them; without it the package exits cleanly.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		log.Println("DAO tests skipped: TEST_MYSQL_DSN not set")
		os.Exit(0)
	}
	var err error
	testDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("DAO tests skipped: test database unavailable: %v", err)
		os.Exit(0)
	}
	if err := testDB.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Experience{}, &model.Education{},
		&model.Post{}, &model.Like{}, &model.Comment{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	os.Exit(m.Run())
}

func createTestUser(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("dao-%d@test.local", time.Now().UnixNano()),
		Password: "hashed",
	}
	if err := NewUserDAO(testDB).CreateUser(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func upsertTestProfile(t *testing.T, userID uint64) *model.Profile {
	t.Helper()
	d := NewProfileDAO(testDB)
	profile := &model.Profile{
		UserID: userID,
		Status: "Developer",
		Skills: model.StringList{"js", "go"},
	}
	assignments := map[string]interface{}{
		"status": "Developer",
		"skills": model.StringList{"js", "go"},
	}
	if err := d.Upsert(profile, assignments); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	stored, err := d.GetByUserID(userID)
	if err != nil {
		t.Fatalf("fetch after upsert failed: %v", err)
	}
	return stored
}

func TestProfileUpsertIsIdempotent(t *testing.T) {
	user := createTestUser(t)
	first := upsertTestProfile(t, user.ID)
	second := upsertTestProfile(t, user.ID)

	if first.ID != second.ID {
		t.Fatalf("upsert created a second profile: %d vs %d", first.ID, second.ID)
	}
	var count int64
	testDB.Model(&model.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one profile, found %d", count)
	}
}

func TestProfileUpsertMergesWithoutClearing(t *testing.T) {
	user := createTestUser(t)
	d := NewProfileDAO(testDB)
	upsertTestProfile(t, user.ID)

	// Second submission sets company; website stays untouched because the
	// assignment map only carries submitted fields.
	profile := &model.Profile{
		UserID:  user.ID,
		Status:  "Senior Developer",
		Skills:  model.StringList{"go"},
		Company: "Acme",
	}
	err := d.Upsert(profile, map[string]interface{}{
		"status":  "Senior Developer",
		"skills":  model.StringList{"go"},
		"company": "Acme",
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	stored, err := d.GetByUserID(user.ID)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if stored.Status != "Senior Developer" || stored.Company != "Acme" {
		t.Fatalf("merge did not apply: %+v", stored)
	}
}

func TestExperienceOrderingAndRemoval(t *testing.T) {
	user := createTestUser(t)
	profile := upsertTestProfile(t, user.ID)
	d := NewProfileDAO(testDB)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	first := &model.Experience{ProfileID: profile.ID, Title: "Junior", Company: "Acme", From: from}
	second := &model.Experience{ProfileID: profile.ID, Title: "Senior", Company: "Acme", From: from}
	if err := d.AddExperience(first); err != nil {
		t.Fatalf("add experience failed: %v", err)
	}
	if err := d.AddExperience(second); err != nil {
		t.Fatalf("add experience failed: %v", err)
	}

	stored, err := d.GetByUserID(user.ID)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(stored.Experience) != 2 || stored.Experience[0].Title != "Senior" {
		t.Fatalf("newest entry must be first: %+v", stored.Experience)
	}

	if err := d.DeleteExperience(profile.ID, first.ID); err != nil {
		t.Fatalf("delete experience failed: %v", err)
	}
	stored, _ = d.GetByUserID(user.ID)
	if len(stored.Experience) != 1 || stored.Experience[0].ID != second.ID {
		t.Fatalf("wrong entry removed: %+v", stored.Experience)
	}
}

func TestDeleteExperienceMissingIDIsNoop(t *testing.T) {
	user := createTestUser(t)
	profile := upsertTestProfile(t, user.ID)
	d := NewProfileDAO(testDB)

	exp := &model.Experience{
		ProfileID: profile.ID, Title: "Eng", Company: "Acme",
		From: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := d.AddExperience(exp); err != nil {
		t.Fatalf("add experience failed: %v", err)
	}
	if err := d.DeleteExperience(profile.ID, 999999999); err != nil {
		t.Fatalf("deleting a missing id must not fail: %v", err)
	}
	stored, _ := d.GetByUserID(user.ID)
	if len(stored.Experience) != 1 {
		t.Fatalf("noop delete corrupted the list: %+v", stored.Experience)
	}
}

func TestDuplicateLikeViolatesUniqueIndex(t *testing.T) {
	author := createTestUser(t)
	liker := createTestUser(t)
	d := NewPostDAO(testDB)

	post := &model.Post{UserID: author.ID, Text: "hello", Name: author.Name}
	if err := d.CreatePost(post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if err := d.AddLike(&model.Like{PostID: post.ID, UserID: liker.ID}); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	if err := d.AddLike(&model.Like{PostID: post.ID, UserID: liker.ID}); err == nil {
		t.Fatal("expected duplicate like to violate the unique index")
	}
	likes, err := d.ListLikes(post.ID)
	if err != nil {
		t.Fatalf("list likes failed: %v", err)
	}
	if len(likes) != 1 {
		t.Fatalf("like list corrupted: %+v", likes)
	}
}

// Regression: removal must be keyed by the comment's own id. Keying it by
// the requester id (the historical behavior) removes the author's first
// comment in presentation order instead of the addressed one.
func TestDeleteCommentTargetsAddressedComment(t *testing.T) {
	author := createTestUser(t)
	d := NewPostDAO(testDB)

	post := &model.Post{UserID: author.ID, Text: "hello", Name: author.Name}
	if err := d.CreatePost(post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	older := &model.Comment{PostID: post.ID, UserID: author.ID, Text: "first"}
	newer := &model.Comment{PostID: post.ID, UserID: author.ID, Text: "second"}
	for _, c := range []*model.Comment{older, newer} {
		if err := d.AddComment(c); err != nil {
			t.Fatalf("add comment failed: %v", err)
		}
	}

	// Author-keyed removal would select `newer` here (first in the
	// newest-first list); the contract requires `older` to go.
	if err := d.DeleteComment(post.ID, older.ID); err != nil {
		t.Fatalf("delete comment failed: %v", err)
	}
	comments, err := d.ListComments(post.ID)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != newer.ID {
		t.Fatalf("wrong comment removed: %+v", comments)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	user := createTestUser(t)
	other := createTestUser(t)
	userDAO := NewUserDAO(testDB)
	postDAO := NewPostDAO(testDB)
	profile := upsertTestProfile(t, user.ID)

	exp := &model.Experience{
		ProfileID: profile.ID, Title: "Eng", Company: "Acme",
		From: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := NewProfileDAO(testDB).AddExperience(exp); err != nil {
		t.Fatalf("add experience failed: %v", err)
	}
	post := &model.Post{UserID: user.ID, Text: "mine", Name: user.Name}
	if err := postDAO.CreatePost(post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if err := postDAO.AddLike(&model.Like{PostID: post.ID, UserID: other.ID}); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	theirPost := &model.Post{UserID: other.ID, Text: "theirs", Name: other.Name}
	if err := postDAO.CreatePost(theirPost); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if err := postDAO.AddComment(&model.Comment{PostID: theirPost.ID, UserID: user.ID, Text: "hi"}); err != nil {
		t.Fatalf("comment failed: %v", err)
	}

	if err := userDAO.DeleteAccount(user.ID); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}

	var count int64
	testDB.Model(&model.User{}).Where("id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatal("user row survived the cascade")
	}
	testDB.Model(&model.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatal("profile survived the cascade")
	}
	testDB.Model(&model.Post{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatal("posts survived the cascade")
	}
	testDB.Model(&model.Comment{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatal("authored comments survived the cascade")
	}
	testDB.Model(&model.Post{}).Where("id = ?", theirPost.ID).Count(&count)
	if count != 1 {
		t.Fatal("other users' posts must survive")
	}
}
