// internal/services/consult_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okaimono/shotengai-backend/internal/models"
)

type stubShopFinder struct {
	shops map[string]*models.Shop
}

func newStubShopFinder(names ...string) *stubShopFinder {
	finder := &stubShopFinder{shops: map[string]*models.Shop{}}
	for _, name := range names {
		finder.shops[name] = &models.Shop{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      name,
		}
	}
	return finder
}

func (f *stubShopFinder) ShopByName(name string) (*models.Shop, error) {
	if s, ok := f.shops[name]; ok {
		return s, nil
	}
	return nil, ErrShopNotFound
}

func (f *stubShopFinder) GetShop(id uuid.UUID) (*models.Shop, error) {
	for _, s := range f.shops {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrShopNotFound
}

func TestResolvePresetRoutesToShop(t *testing.T) {
	svc := NewConsultService(newStubShopFinder("魚竹鮮魚店"))

	resolved, err := svc.Resolve("sashimi")
	require.NoError(t, err)
	assert.Equal(t, "sashimi", resolved.Preset.Key)
	assert.Equal(t, "魚竹鮮魚店", resolved.Shop.Name)
}

func TestResolveUnknownKeyNotRouted(t *testing.T) {
	svc := NewConsultService(newStubShopFinder("魚竹鮮魚店"))

	_, err := svc.Resolve("fugu")
	assert.ErrorIs(t, err, ErrPresetNotRouted)
}

func TestResolveMissingShopNotRouted(t *testing.T) {
	// The preset exists but its shop does not.
	svc := NewConsultService(newStubShopFinder())

	_, err := svc.Resolve("sashimi")
	assert.ErrorIs(t, err, ErrPresetNotRouted)
}

func TestComposeWithPresetAndContext(t *testing.T) {
	finder := newStubShopFinder("魚竹鮮魚店")
	svc := NewConsultService(finder)
	shop := finder.shops["魚竹鮮魚店"]

	composed, err := svc.Compose(&ComposeRequest{
		ShopID:      shop.ID,
		PresetKey:   "sashimi",
		ProductName: "刺身盛り合わせ",
		Quantity:    2,
		Note:        "えび抜きでお願いします",
	})
	require.NoError(t, err)
	assert.Equal(t, shop.ID, composed.Shop.ID)

	msg := composed.Message
	assert.True(t, strings.HasPrefix(msg, "魚竹鮮魚店さん、こんにちは！"))
	assert.Contains(t, msg, "【刺身盛り、予算で作れます】")
	assert.Contains(t, msg, "商品：刺身盛り合わせ")
	assert.Contains(t, msg, "数量：2")
	assert.Contains(t, msg, "メモ：えび抜きでお願いします")
	assert.Contains(t, msg, "以下を埋めてお送りください")
	assert.Contains(t, msg, "・何人前ですか？：")
}

func TestComposeWithoutPresetIsBareGreeting(t *testing.T) {
	finder := newStubShopFinder("八百辰")
	svc := NewConsultService(finder)
	shop := finder.shops["八百辰"]

	composed, err := svc.Compose(&ComposeRequest{ShopID: shop.ID})
	require.NoError(t, err)

	assert.Contains(t, composed.Message, "八百辰さん、こんにちは！")
	assert.NotContains(t, composed.Message, "【")
	assert.NotContains(t, composed.Message, "以下を埋めてお送りください")
}

func TestComposeUnknownShop(t *testing.T) {
	svc := NewConsultService(newStubShopFinder())

	_, err := svc.Compose(&ComposeRequest{ShopID: uuid.New()})
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestEveryPresetRoutesToSeededShop(t *testing.T) {
	finder := newStubShopFinder(
		"魚竹鮮魚店", "肉のマルフク", "八百辰",
		"やおや青木", "惣菜こばやし", "フルーツパーラー山田",
	)
	svc := NewConsultService(finder)

	for _, preset := range svc.Presets() {
		resolved, err := svc.Resolve(preset.Key)
		require.NoError(t, err, "preset %s", preset.Key)
		assert.Equal(t, preset.ShopName, resolved.Shop.Name)
		assert.NotEmpty(t, preset.Questions)
	}
}
