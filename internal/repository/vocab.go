package repository

import (
	"context"

	"github.com/phanduy2004/english-for-community/internal/database"
	"github.com/phanduy2004/english-for-community/internal/models"

	"gorm.io/gorm"
)

func CreateVocabItem(ctx context.Context, item *models.VocabItem) error {
	return database.DB.WithContext(ctx).Create(item).Error
}

func GetVocabItem(ctx context.Context, userID, itemID uint) (*models.VocabItem, error) {
	var item models.VocabItem
	err := database.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ReviewVocabItem bumps the review counter and returns the updated item.
func ReviewVocabItem(ctx context.Context, userID, itemID uint) (*models.VocabItem, error) {
	res := database.DB.WithContext(ctx).
		Model(&models.VocabItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("reviews", gorm.Expr("reviews + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetVocabItem(ctx, userID, itemID)
}

func ListVocabItems(ctx context.Context, userID uint) ([]models.VocabItem, error) {
	var items []models.VocabItem
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func DeleteVocabItem(ctx context.Context, userID, itemID uint) error {
	return database.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.VocabItem{}).Error
}
