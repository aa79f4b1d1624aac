package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
)

// Weekly pass family: wp1..wp10 at n * weeklyPassUnit unless overridden.
const weeklyPassUnit = 6000

// Default price table in MMK. Admin overrides shadow these entries.
var defaultPrices = map[string]int64{
	// Regular diamonds
	"11": 950, "22": 1900, "33": 2850, "56": 4200, "86": 5100, "112": 8200,
	"172": 10200, "257": 15300, "343": 20400, "429": 25500, "514": 30600,
	"600": 35700, "706": 40800, "878": 51000, "963": 56100, "1049": 61200,
	"1135": 66300, "1412": 81600, "2195": 122400, "3688": 204000,
	"5532": 306000, "9288": 510000, "12976": 714000,
	// 2X diamond pass
	"55": 3500, "165": 10000, "275": 16000, "565": 33000,
}

func defaultPrice(code string) (int64, bool) {
	if p, ok := defaultPrices[code]; ok {
		return p, true
	}
	if suffix, ok := strings.CutPrefix(code, "wp"); ok {
		if n, err := strconv.Atoi(suffix); err == nil && n >= 1 && n <= 10 {
			return int64(n) * weeklyPassUnit, true
		}
	}
	return 0, false
}

// ResolvePrice resolves a product code to its current price: the override
// table first, then the static defaults. The result is snapshotted onto
// orders at creation time; later changes never touch existing orders.
func ResolvePrice(code string) (int64, error) {
	var override models.PriceOverride
	err := database.DB.Where("code = ?", code).First(&override).Error
	if err == nil {
		return override.Price, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if p, ok := defaultPrice(code); ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrPriceUnknown, code)
}

// CurrentPrices returns the full merged table (defaults plus the weekly
// pass family, shadowed by overrides) for price listings.
func CurrentPrices() (map[string]int64, error) {
	merged := make(map[string]int64, len(defaultPrices)+10)
	for code, price := range defaultPrices {
		merged[code] = price
	}
	for n := 1; n <= 10; n++ {
		merged["wp"+strconv.Itoa(n)] = int64(n) * weeklyPassUnit
	}

	var overrides []models.PriceOverride
	if err := database.DB.Find(&overrides).Error; err != nil {
		return nil, err
	}
	for _, o := range overrides {
		merged[o.Code] = o.Price
	}
	return merged, nil
}

// SetPriceOverride upserts an admin price override. Takes effect for
// subsequent resolutions only.
func SetPriceOverride(actorID int64, code string, price int64) error {
	if !IsAdmin(actorID) {
		return ErrPermissionDenied
	}
	if code == "" {
		return &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if price <= 0 {
		return &ValidationError{Field: "price", Reason: "must be positive"}
	}

	override := models.PriceOverride{Code: code, Price: price, SetBy: actorID}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "set_by", "updated_at"}),
	}).Create(&override).Error
}

// ClearPriceOverride removes an override, restoring the default price.
func ClearPriceOverride(actorID int64, code string) error {
	if !IsAdmin(actorID) {
		return ErrPermissionDenied
	}

	res := database.DB.Where("code = ?", code).Delete(&models.PriceOverride{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
