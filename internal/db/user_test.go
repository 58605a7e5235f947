package db

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:db-user-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestEnsureUser_CreatesHashedAdmin(t *testing.T) {
	gdb := setupUserTestDB(t)

	if err := EnsureUser(gdb, "admin", "correct horse"); err != nil {
		t.Fatalf("ensure user: %v", err)
	}

	var user User
	if err := gdb.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Password == "correct horse" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestEnsureUser_SkipsExistingAccount(t *testing.T) {
	gdb := setupUserTestDB(t)

	if err := EnsureUser(gdb, "admin", "first secret"); err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	var original User
	if err := gdb.Where("username = ?", "admin").First(&original).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	// 二次引导不得覆盖既有密码
	if err := EnsureUser(gdb, "admin", "second secret"); err != nil {
		t.Fatalf("ensure user again: %v", err)
	}
	var after User
	if err := gdb.Where("username = ?", "admin").First(&after).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if after.Password != original.Password {
		t.Fatalf("existing account must be left untouched")
	}
}

func TestEnsureUser_IgnoresBlankCredentials(t *testing.T) {
	gdb := setupUserTestDB(t)

	if err := EnsureUser(gdb, "  ", "secret"); err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if err := EnsureUser(gdb, "admin", "  "); err != nil {
		t.Fatalf("ensure user: %v", err)
	}

	var count int64
	gdb.Model(&User{}).Count(&count)
	if count != 0 {
		t.Fatalf("blank credentials must not create an account, found %d rows", count)
	}
}
