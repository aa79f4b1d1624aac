package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
)

// OwnerID is the fixed platform identity of the shop owner, set at startup
// from configuration. The owner is always an admin and cannot be removed.
var OwnerID int64

func IsOwner(id int64) bool {
	return id != 0 && id == OwnerID
}

// IsAdmin reports whether id is the owner or an appointed admin. Membership
// is read fresh on every call so a just-revoked admin loses access
// immediately.
func IsAdmin(id int64) bool {
	if IsOwner(id) {
		return true
	}
	var count int64
	if err := database.DB.Model(&models.Admin{}).Where("telegram_id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// IsAuthorized reports whether id may use the shop at all: the authorized
// user set plus the owner.
func IsAuthorized(id int64) bool {
	if IsOwner(id) {
		return true
	}
	var count int64
	if err := database.DB.Model(&models.AuthorizedUser{}).Where("telegram_id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// AddAdmin appoints an admin. Owner only. Returns false with a nil error
// when the target is already an admin; that is informational, not a
// failure.
func AddAdmin(actorID, targetID int64) (bool, error) {
	if !IsOwner(actorID) {
		return false, ErrPermissionDenied
	}
	if targetID == OwnerID {
		return false, nil
	}

	var existing models.Admin
	err := database.DB.Where("telegram_id = ?", targetID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := database.DB.Create(&models.Admin{TelegramID: targetID, AddedBy: actorID}).Error; err != nil {
		return false, err
	}
	notify(notifier.Request{RecipientID: targetID, Text: "You have been appointed as an admin."})
	return true, nil
}

// RemoveAdmin revokes an admin appointment. Owner only; the owner id itself
// cannot be removed.
func RemoveAdmin(actorID, targetID int64) (bool, error) {
	if !IsOwner(actorID) {
		return false, ErrPermissionDenied
	}
	if targetID == OwnerID {
		return false, ErrPermissionDenied
	}

	res := database.DB.Where("telegram_id = ?", targetID).Delete(&models.Admin{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	notify(notifier.Request{RecipientID: targetID, Text: "Your admin appointment has been revoked."})
	return true, nil
}

// AdminIDs returns the owner followed by appointed admins in appointment
// order, for fan-out notifications.
func AdminIDs() ([]int64, error) {
	var admins []models.Admin
	if err := database.DB.Order("id").Find(&admins).Error; err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(admins)+1)
	ids = append(ids, OwnerID)
	for _, a := range admins {
		ids = append(ids, a.TelegramID)
	}
	return ids, nil
}

// Authorize grants shop access. Admin only. Returns false with a nil error
// when the target is already authorized (informational no-op).
func Authorize(actorID, targetID int64) (bool, error) {
	if !IsAdmin(actorID) {
		return false, ErrPermissionDenied
	}

	var existing models.AuthorizedUser
	err := database.DB.Where("telegram_id = ?", targetID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := database.DB.Create(&models.AuthorizedUser{TelegramID: targetID, AddedBy: actorID}).Error; err != nil {
		return false, err
	}
	notify(notifier.Request{RecipientID: targetID, Text: "You have been granted access to the shop. Send /start to begin."})
	return true, nil
}

// Unauthorize revokes shop access. Admin only.
func Unauthorize(actorID, targetID int64) (bool, error) {
	if !IsAdmin(actorID) {
		return false, ErrPermissionDenied
	}

	res := database.DB.Where("telegram_id = ?", targetID).Delete(&models.AuthorizedUser{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	notify(notifier.Request{RecipientID: targetID, Text: "Your shop access has been revoked. Contact the owner to regain it."})
	return true, nil
}

// AuthorizedIDs lists every authorized user id, for broadcasts.
func AuthorizedIDs() ([]int64, error) {
	var users []models.AuthorizedUser
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.TelegramID)
	}
	return ids, nil
}
