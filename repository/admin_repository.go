package repository

import (
	"ShopAdmin/apperr"
	"ShopAdmin/models"
	"context"
	"errors"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MySQL duplicate entry錯誤代碼
const errDuplicateEntry = 1062

const maxPasswordBytes = 72

// AdminRepository 負責管理員密碼的雜湊與驗證，不發行任何session或token
type AdminRepository struct {
	db   *gorm.DB
	cost int
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db, cost: bcrypt.DefaultCost}
}

// WithCost 調整bcrypt成本，測試時用來加速
func (r *AdminRepository) WithCost(cost int) *AdminRepository {
	return &AdminRepository{db: r.db, cost: cost}
}

// 檢查Email是否已被註冊
func (r *AdminRepository) IsEmailExists(ctx context.Context, email string) (bool, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperr.Storage("check admin email", err)
	}
	return true, nil
}

// Register 註冊管理員並回傳其Email
func (r *AdminRepository) Register(ctx context.Context, name, email, password string) (string, error) {
	//bcrypt只使用前72個位元組，拒絕較長的密碼而不是截斷
	if len(password) > maxPasswordBytes {
		return "", apperr.Validation("Invalid password: password length exceeds %d bytes", maxPasswordBytes)
	}

	exists, err := r.IsEmailExists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperr.Conflict("Admin with email %s already exists", email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return "", apperr.Validation("Invalid password: %v", err)
	}

	admin := models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	err = r.db.WithContext(ctx).Create(&admin).Error
	if err != nil {
		//檢查與新增之間被搶先註冊
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return "", apperr.Conflict("Admin with email %s already exists", email)
		}
		return "", apperr.Storage("create admin", err)
	}

	return admin.Email, nil
}

// Authenticate 驗證管理員密碼，成功時回傳nil
func (r *AdminRepository) Authenticate(ctx context.Context, email, password string) error {
	var admin models.Admin
	err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Admin not found")
		}
		return apperr.Storage("find admin", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return apperr.InvalidCredentials("Invalid password")
	}
	return nil
}
