package services

import (
	"fmt"
	"testing"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Vote{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPost(t *testing.T, db *gorm.DB, owner string) models.Post {
	t.Helper()
	post := models.Post{Title: "seed", Content: "seed content", Published: true}
	if owner != "" {
		post.Email = &owner
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}
