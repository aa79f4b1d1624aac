package services

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
)

var ErrChannelNotFound = errors.New("payment channel not found")

// SeedPaymentChannels creates the built-in channels when the table is
// empty. Numbers and holder names are placeholders until the owner sets
// real ones.
func SeedPaymentChannels() error {
	var count int64
	if err := database.DB.Model(&models.PaymentChannel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	channels := []models.PaymentChannel{
		{UUID: uuid.New().String(), Code: "kpay", Number: "09xxxxxxxxx", HolderName: "Not Set", Enabled: true},
		{UUID: uuid.New().String(), Code: "wave", Number: "09xxxxxxxxx", HolderName: "Not Set", Enabled: true},
	}
	return database.DB.Create(&channels).Error
}

// PaymentChannels lists enabled channels for the topup instructions screen.
func PaymentChannels() ([]models.PaymentChannel, error) {
	var channels []models.PaymentChannel
	err := database.DB.Where("enabled = ?", true).Order("id").Find(&channels).Error
	return channels, err
}

func findChannel(code string) (*models.PaymentChannel, error) {
	var ch models.PaymentChannel
	if err := database.DB.Where("code = ?", code).First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	return &ch, nil
}

// SetChannelNumber updates the receiving account number. Admin only.
func SetChannelNumber(actorID int64, code, number string) (*models.PaymentChannel, error) {
	if !IsAdmin(actorID) {
		return nil, ErrPermissionDenied
	}
	if number == "" {
		return nil, &ValidationError{Field: "number", Reason: "must not be empty"}
	}

	ch, err := findChannel(code)
	if err != nil {
		return nil, err
	}
	if err := database.DB.Model(ch).Update("number", number).Error; err != nil {
		return nil, err
	}
	ch.Number = number
	return ch, nil
}

// SetChannelHolder updates the account holder name. Admin only.
func SetChannelHolder(actorID int64, code, holder string) (*models.PaymentChannel, error) {
	if !IsAdmin(actorID) {
		return nil, ErrPermissionDenied
	}
	if holder == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	ch, err := findChannel(code)
	if err != nil {
		return nil, err
	}
	if err := database.DB.Model(ch).Update("holder_name", holder).Error; err != nil {
		return nil, err
	}
	ch.HolderName = holder
	return ch, nil
}

// SetChannelQR stores the QR image reference in the channel metadata.
// Owner only.
func SetChannelQR(actorID int64, code, fileID string) (*models.PaymentChannel, error) {
	if !IsOwner(actorID) {
		return nil, ErrPermissionDenied
	}
	if fileID == "" {
		return nil, &ValidationError{Field: "file_id", Reason: "must not be empty"}
	}

	ch, err := findChannel(code)
	if err != nil {
		return nil, err
	}

	meta := map[string]string{}
	if len(ch.Meta) > 0 {
		json.Unmarshal(ch.Meta, &meta)
	}
	meta["qr_file_id"] = fileID
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	if err := database.DB.Model(ch).Update("meta", datatypes.JSON(data)).Error; err != nil {
		return nil, err
	}
	ch.Meta = datatypes.JSON(data)
	return ch, nil
}

// RemoveChannelQR deletes the QR reference. Owner only.
func RemoveChannelQR(actorID int64, code string) (*models.PaymentChannel, error) {
	if !IsOwner(actorID) {
		return nil, ErrPermissionDenied
	}

	ch, err := findChannel(code)
	if err != nil {
		return nil, err
	}

	meta := map[string]string{}
	if len(ch.Meta) > 0 {
		json.Unmarshal(ch.Meta, &meta)
	}
	delete(meta, "qr_file_id")
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	if err := database.DB.Model(ch).Update("meta", datatypes.JSON(data)).Error; err != nil {
		return nil, err
	}
	ch.Meta = datatypes.JSON(data)
	return ch, nil
}
