package services

import (
	"github.com/Vijay-C-S/zenzone-sub001/config"
	"github.com/Vijay-C-S/zenzone-sub001/models"
)

func GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	return user, err
}

func UpdateUserProfile(id uint, fullName string, mfaEnabled *bool) (models.User, error) {
	user, err := GetUserByID(id)
	if err != nil {
		return user, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if mfaEnabled != nil {
		user.MFAEnabled = *mfaEnabled
	}
	err = config.DB.Save(&user).Error
	return user, err
}
