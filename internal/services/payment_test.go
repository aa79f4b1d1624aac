package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
)

func TestSeedPaymentChannels(t *testing.T) {
	setupTestDB()

	assert.NoError(t, services.SeedPaymentChannels())

	channels, err := services.PaymentChannels()
	assert.NoError(t, err)
	assert.Len(t, channels, 2)
	assert.Equal(t, "kpay", channels[0].Code)
	assert.Equal(t, "wave", channels[1].Code)
	assert.NotEmpty(t, channels[0].UUID)

	// Seeding again is a no-op
	assert.NoError(t, services.SeedPaymentChannels())
	channels, _ = services.PaymentChannels()
	assert.Len(t, channels, 2)
}

func TestSetChannelNumberAndHolder(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	assert.NoError(t, services.SeedPaymentChannels())

	ch, err := services.SetChannelNumber(testAdminID, "kpay", "09770000001")
	assert.NoError(t, err)
	assert.Equal(t, "09770000001", ch.Number)

	ch, err = services.SetChannelHolder(testAdminID, "kpay", "Ma Hla")
	assert.NoError(t, err)
	assert.Equal(t, "Ma Hla", ch.HolderName)

	_, err = services.SetChannelNumber(testUserID, "kpay", "1")
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	_, err = services.SetChannelNumber(testAdminID, "paypal", "1")
	assert.ErrorIs(t, err, services.ErrChannelNotFound)
}

func TestChannelQRIsOwnerOnly(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	assert.NoError(t, services.SeedPaymentChannels())

	_, err := services.SetChannelQR(testAdminID, "wave", "file123")
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	ch, err := services.SetChannelQR(testOwnerID, "wave", "file123")
	assert.NoError(t, err)

	meta := map[string]string{}
	assert.NoError(t, json.Unmarshal(ch.Meta, &meta))
	assert.Equal(t, "file123", meta["qr_file_id"])

	ch, err = services.RemoveChannelQR(testOwnerID, "wave")
	assert.NoError(t, err)
	meta = map[string]string{}
	assert.NoError(t, json.Unmarshal(ch.Meta, &meta))
	assert.NotContains(t, meta, "qr_file_id")
}
